// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/rebuildmap/blobstore"
	"github.com/katalvlaran/rebuildmap/distgeom"
)

// ReadFile reads a matrix from path, decompressing by extension.
func ReadFile(path string, opts ...distgeom.Option) (*distgeom.DistanceMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := decode(f, CompressionFor(path), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// WriteFile writes d to path, compressing by extension.
func WriteFile(path string, d *distgeom.DistanceMatrix) error {
	return writeFileWith(path, func(w io.Writer) error { return Write(w, d) })
}

// ReadPointsFile reads a point set from path, decompressing by extension.
func ReadPointsFile(path string) ([]distgeom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := NewReader(f, CompressionFor(path))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return ReadPoints(zr)
}

// WritePointsFile writes points to path, compressing by extension.
func WritePointsFile(path string, points []distgeom.Point) error {
	return writeFileWith(path, func(w io.Writer) error { return WritePoints(w, points) })
}

func writeFileWith(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return encodeTo(f, CompressionFor(path), encode)
}

// Load reads the matrix stored under name, decompressing by extension.
func Load(ctx context.Context, store blobstore.Store, name string, opts ...distgeom.Option) (*distgeom.DistanceMatrix, error) {
	rc, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	d, err := decode(rc, CompressionFor(name), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return d, nil
}

// Save stores d under name, compressing by extension.
func Save(ctx context.Context, store blobstore.Store, name string, d *distgeom.DistanceMatrix) error {
	var buf bytes.Buffer
	if err := encodeTo(&buf, CompressionFor(name), func(w io.Writer) error { return Write(w, d) }); err != nil {
		return err
	}

	return store.Put(ctx, name, &buf, int64(buf.Len()))
}

func decode(r io.Reader, c Compression, opts []distgeom.Option) (*distgeom.DistanceMatrix, error) {
	zr, err := NewReader(r, c)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return Read(zr, opts...)
}

func encodeTo(w io.Writer, c Compression, encode func(io.Writer) error) error {
	zw, err := NewWriter(w, c)
	if err != nil {
		return err
	}
	if err = encode(zw); err != nil {
		_ = zw.Close()
		return err
	}

	return zw.Close()
}
