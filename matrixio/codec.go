// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/rebuildmap/distgeom"
)

// maxLineBytes bounds a single row; a 10k×10k matrix row fits comfortably.
const maxLineBytes = 64 << 20

// Write encodes d as tab-separated rows.
// Complexity: O(N²).
func Write(w io.Writer, d *distgeom.DistanceMatrix) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, row := range d.Rows() {
		buf = appendRow(buf[:0], row)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read decodes tab- or space-separated rows into a validated DistanceMatrix.
// opts are passed to distgeom.NewDistanceMatrix.
//
// Errors:
//   - ErrEmpty, ErrParse, ErrRaggedRow (tagged with line and column);
//   - the matrix validation errors of distgeom.NewDistanceMatrix.
func Read(r io.Reader, opts ...distgeom.Option) (*distgeom.DistanceMatrix, error) {
	rows, err := readRows(r, 0)
	if err != nil {
		return nil, err
	}

	return distgeom.NewDistanceMatrix(rows, opts...)
}

// WritePoints encodes points as "x<TAB>y" lines.
func WritePoints(w io.Writer, points []distgeom.Point) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, p := range points {
		buf = appendRow(buf[:0], []float64{p.X, p.Y})
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadPoints decodes "x y" lines. Every line must have exactly two cells.
func ReadPoints(r io.Reader) ([]distgeom.Point, error) {
	rows, err := readRows(r, 2)
	if err != nil {
		return nil, err
	}
	pts := make([]distgeom.Point, len(rows))
	for i, row := range rows {
		pts[i] = distgeom.Point{X: row[0], Y: row[1]}
	}

	return pts, nil
}

func appendRow(buf []byte, row []float64) []byte {
	for j, v := range row {
		if j > 0 {
			buf = append(buf, '\t')
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}

	return append(buf, '\n')
}

// readRows parses every non-blank line. width > 0 fixes the cell count,
// otherwise the first row sets it.
func readRows(r io.Reader, width int) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows [][]float64
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if width == 0 {
			width = len(fields)
		}
		if len(fields) != width {
			return nil, lineErrorf(line, 0, fmt.Errorf("%d cells, want %d: %w", len(fields), width, ErrRaggedRow))
		}
		row := make([]float64, width)
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, lineErrorf(line, j+1, fmt.Errorf("%q: %w", f, ErrParse))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return rows, nil
}
