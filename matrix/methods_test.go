package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rebuildmap/matrix"
	"github.com/stretchr/testify/require"
)

// gridMatrix is a tiny non-Dense Matrix used to exercise generic fallbacks.
type gridMatrix struct{ a [][]float64 }

var _ matrix.Matrix = gridMatrix{}

func (g gridMatrix) Rows() int { return len(g.a) }
func (g gridMatrix) Cols() int {
	if len(g.a) == 0 {
		return 0
	}

	return len(g.a[0])
}
func (g gridMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= g.Rows() || j < 0 || j >= g.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return g.a[i][j], nil
}
func (g gridMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= g.Rows() || j < 0 || j >= g.Cols() {
		return matrix.ErrOutOfRange
	}
	g.a[i][j] = v

	return nil
}
func (g gridMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(g.a))
	for i := range g.a {
		cp[i] = append([]float64(nil), g.a[i]...)
	}

	return gridMatrix{a: cp}
}

// TestSubAbsMean checks the element-wise kernels on Dense and generic operands.
func TestSubAbsMean(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := gridMatrix{a: [][]float64{{2, 2}, {1, 8}}}

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, 0}, {2, -4}}, diff.(*matrix.Dense).ToRows())

	abs, err := matrix.Abs(diff)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {2, 4}}, abs.(*matrix.Dense).ToRows())

	mean, err := matrix.Mean(abs)
	require.NoError(t, err)
	require.InDelta(t, 7.0/4.0, mean, 1e-15)

	fused, err := matrix.MeanAbsDiff(a, b)
	require.NoError(t, err)
	require.InDelta(t, mean, fused, 1e-15)
}

// TestKernelShapeErrors ensures mismatched operands are rejected, not truncated.
func TestKernelShapeErrors(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MeanAbsDiff(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MeanAbsDiff(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMeanEmpty confirms reductions over empty matrices return 0.
func TestMeanEmpty(t *testing.T) {
	e, err := matrix.NewSquare(0)
	require.NoError(t, err)

	mean, err := matrix.Mean(e)
	require.NoError(t, err)
	require.Zero(t, mean)

	dev, err := matrix.MeanAbsDiff(e, e)
	require.NoError(t, err)
	require.Zero(t, dev)
}

// TestMirrorUpper checks that the lower triangle is rebuilt from the upper one.
func TestMirrorUpper(t *testing.T) {
	up := mustDense(t, [][]float64{{0, 3, 4}, {0, 0, 5}, {0, 0, 0}})

	full, err := matrix.MirrorUpper(up)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 3, 4}, {3, 0, 5}, {4, 5, 0}}, full.ToRows())
	require.NoError(t, matrix.ValidateSymmetric(full, 0))

	_, err = matrix.MirrorUpper(mustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
