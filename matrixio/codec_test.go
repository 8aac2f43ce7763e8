package matrixio_test

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rebuildmap/blobstore"
	"github.com/katalvlaran/rebuildmap/distgeom"
	"github.com/katalvlaran/rebuildmap/matrix"
	"github.com/katalvlaran/rebuildmap/matrixio"
	"github.com/stretchr/testify/require"
)

func randomMatrix(t *testing.T, n int) (*distgeom.DistanceMatrix, []distgeom.Point) {
	t.Helper()

	rng := rand.New(rand.NewSource(int64(n)))
	pts := make([]distgeom.Point, n)
	for i := range pts {
		pts[i] = distgeom.Pt(rng.NormFloat64()*50, rng.NormFloat64()*50)
	}

	return distgeom.ComputeDistances(pts), pts
}

// TestRoundTrip_Exact: the text form reproduces every float64 bit-for-bit.
func TestRoundTrip_Exact(t *testing.T) {
	t.Parallel()

	d, _ := randomMatrix(t, 17)
	var buf bytes.Buffer
	require.NoError(t, matrixio.Write(&buf, d))

	got, err := matrixio.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, d.Rows(), got.Rows())
}

func TestRead_Format(t *testing.T) {
	t.Parallel()

	in := "\n0  3\t4\n\n3 0 5\n  4\t5   0  \n\n"
	d, err := matrixio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 3, 4}, {3, 0, 5}, {4, 5, 0}}, d.Rows())

	// Upper-triangular supply.
	d, err = matrixio.Read(strings.NewReader("0 3 4\n0 0 5\n0 0 0\n"))
	require.NoError(t, err)
	require.Equal(t, 5.0, d.At(2, 1))
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, in string
		want     error
	}{
		{"empty", "", matrixio.ErrEmpty},
		{"blank", "\n \n\t\n", matrixio.ErrEmpty},
		{"parse", "0 x\n1 0\n", matrixio.ErrParse},
		{"ragged", "0 1\n1 0 2\n", matrixio.ErrRaggedRow},
		{"asymmetric", "0 1 2\n1 0 3\n2 4 0\n", matrix.ErrAsymmetry},
		{"non-square", "0 1 2\n1 0 3\n", matrix.ErrNonSquare},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrixio.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := matrixio.Read(strings.NewReader("0 1\n1 zz\n"))
	require.ErrorContains(t, err, "line 2, column 2")
}

func TestPoints_RoundTrip(t *testing.T) {
	t.Parallel()

	_, pts := randomMatrix(t, 9)
	var buf bytes.Buffer
	require.NoError(t, matrixio.WritePoints(&buf, pts))

	got, err := matrixio.ReadPoints(&buf)
	require.NoError(t, err)
	require.Equal(t, pts, got)

	_, err = matrixio.ReadPoints(strings.NewReader("1 2 3\n"))
	require.ErrorIs(t, err, matrixio.ErrRaggedRow)
}

// TestFile_Compressions round-trips through every extension-selected codec.
func TestFile_Compressions(t *testing.T) {
	t.Parallel()

	d, pts := randomMatrix(t, 12)
	dir := t.TempDir()
	for _, name := range []string{"m.tsv", "m.tsv.gz", "m.tsv.zst", "m.tsv.lz4"} {
		path := filepath.Join(dir, name)
		require.NoError(t, matrixio.WriteFile(path, d), name)

		got, err := matrixio.ReadFile(path)
		require.NoError(t, err, name)
		require.Equal(t, d.Rows(), got.Rows(), name)

		ppath := path + ".points" + filepath.Ext(name)
		require.NoError(t, matrixio.WritePointsFile(ppath, pts))
		gotPts, err := matrixio.ReadPointsFile(ppath)
		require.NoError(t, err)
		require.Equal(t, pts, gotPts)
	}

	_, err := matrixio.ReadFile(filepath.Join(dir, "absent.tsv"))
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestCompressionFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrixio.Gzip, matrixio.CompressionFor("a/b.TSV.GZ"))
	require.Equal(t, matrixio.Zstd, matrixio.CompressionFor("b.zst"))
	require.Equal(t, matrixio.LZ4, matrixio.CompressionFor("b.lz4"))
	require.Equal(t, matrixio.None, matrixio.CompressionFor("b.tsv"))
	require.Equal(t, "zstd", matrixio.Zstd.String())
}

func TestBlob_LoadSave(t *testing.T) {
	t.Parallel()

	d, _ := randomMatrix(t, 6)
	store := blobstore.NewMemory()
	ctx := context.Background()

	for _, name := range []string{"runs/a.tsv", "runs/a.tsv.zst"} {
		require.NoError(t, matrixio.Save(ctx, store, name, d))
		got, err := matrixio.Load(ctx, store, name)
		require.NoError(t, err)
		require.Equal(t, d.Rows(), got.Rows())
	}

	_, err := matrixio.Load(ctx, store, "nope.tsv")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
