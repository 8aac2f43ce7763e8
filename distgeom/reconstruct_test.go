package distgeom_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rebuildmap/distgeom"
	"github.com/katalvlaran/rebuildmap/matrix"
	"github.com/stretchr/testify/require"
)

// TestReconstruct_ExactTriangle: a triangle already in the canonical frame is
// returned unchanged.
func TestReconstruct_ExactTriangle(t *testing.T) {
	t.Parallel()

	want := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(3, 2)}
	res, err := distgeom.Reconstruct(distgeom.ComputeDistances(want))
	require.NoError(t, err)
	require.True(t, res.Complete())
	requirePointsNear(t, want, res.Points, 1e-9)
}

// TestReconstruct_SquareSignSelection: index 3 of the square is resolved via
// its distance to index 2.
func TestReconstruct_SquareSignSelection(t *testing.T) {
	t.Parallel()

	want := squarePoints()
	d := distgeom.ComputeDistances(want)
	res, err := distgeom.Reconstruct(d)
	require.NoError(t, err)
	requirePointsNear(t, want, res.Points, 1e-9)

	dev, err := distgeom.Deviation(d, distgeom.ComputeDistances(res.Points))
	require.NoError(t, err)
	require.Less(t, dev, 1e-9)
}

// TestReconstruct_CoincidentAnchors: indices 0 and 1 at the same place.
func TestReconstruct_CoincidentAnchors(t *testing.T) {
	t.Parallel()

	d := distgeom.ComputeDistances([]distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(0, 0), distgeom.Pt(1, 1)})
	res, err := distgeom.Reconstruct(d)
	require.Nil(t, res)
	require.ErrorIs(t, err, distgeom.ErrDegenerateAnchor)

	var pe *distgeom.PointError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 1, pe.Index)
}

// TestReconstruct_CorruptedRow: a bad d(2,4) leaves index 4 unresolved while
// the result keeps all five slots.
func TestReconstruct_CorruptedRow(t *testing.T) {
	t.Parallel()

	pts := append(squarePoints(), distgeom.Pt(2, 1))
	d := corrupted(t, pts, 2, 4, 10)

	res, err := distgeom.Reconstruct(d)
	require.ErrorIs(t, err, distgeom.ErrUnresolvedPoint)
	require.NotNil(t, res)
	require.Equal(t, 5, res.Len())

	var pe *distgeom.PointError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 4, pe.Index)

	require.False(t, res.Resolved(4))
	require.ErrorIs(t, res.Err(4), distgeom.ErrUnresolvedPoint)
	require.Equal(t, []int{0, 1, 2, 3}, res.ResolvedIndices())
	require.Equal(t, []int{4}, res.UnresolvedIndices())
	require.Equal(t, distgeom.Point{}, res.Points[4])
	requirePointsNear(t, pts[:4], res.ResolvedPoints(), 1e-9)
}

// TestReconstruct_FailFast returns the first per-index failure alone.
func TestReconstruct_FailFast(t *testing.T) {
	t.Parallel()

	pts := append(squarePoints(), distgeom.Pt(2, 1))
	d := corrupted(t, pts, 2, 4, 10)

	res, err := distgeom.Reconstruct(d, distgeom.WithFailFast())
	require.Nil(t, res)

	var pe *distgeom.PointError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 4, pe.Index)
	require.ErrorIs(t, err, distgeom.ErrUnresolvedPoint)
}

// TestReconstruct_Hooks observes placement order and unresolved reports.
func TestReconstruct_Hooks(t *testing.T) {
	t.Parallel()

	pts := append(squarePoints(), distgeom.Pt(2, 1))
	d := corrupted(t, pts, 2, 4, 10)

	var placed, unresolved []int
	_, err := distgeom.Reconstruct(d,
		distgeom.WithOnPlaced(func(i int, _ distgeom.Point) { placed = append(placed, i) }),
		distgeom.WithOnUnresolved(func(i int, _ error) { unresolved = append(unresolved, i) }),
	)
	require.Error(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, placed)
	require.Equal(t, []int{4}, unresolved)
}

// TestReconstruct_Preconditions covers nil and too-small inputs.
func TestReconstruct_Preconditions(t *testing.T) {
	t.Parallel()

	_, err := distgeom.Reconstruct(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	for _, n := range []int{0, 1, 2} {
		pts := make([]distgeom.Point, n)
		for i := range pts {
			pts[i] = distgeom.Pt(float64(i), 0)
		}
		res, err := distgeom.Reconstruct(distgeom.ComputeDistances(pts))
		require.Nil(t, res)
		require.ErrorIs(t, err, distgeom.ErrTooFewPoints)
	}
}

// TestReconstruct_NonRealizableThirdAnchor: a triangle-inequality violation
// on index 2 is fatal.
func TestReconstruct_NonRealizableThirdAnchor(t *testing.T) {
	t.Parallel()

	d := mustMatrix(t, [][]float64{{0, 1, 1}, {1, 0, 5}, {1, 5, 0}})
	res, err := distgeom.Reconstruct(d)
	require.Nil(t, res)
	require.ErrorIs(t, err, distgeom.ErrNonRealizable)

	var pe *distgeom.PointError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Index)
}

// TestReconstruct_NonRealizableLaterIndex: the failure stays local to index 3.
func TestReconstruct_NonRealizableLaterIndex(t *testing.T) {
	t.Parallel()

	rows := distgeom.ComputeDistances(squarePoints()).Rows()
	rows[0][3], rows[3][0] = 1, 1
	rows[1][3], rows[3][1] = 10, 10

	res, err := distgeom.Reconstruct(mustMatrix(t, rows))
	require.ErrorIs(t, err, distgeom.ErrNonRealizable)
	require.NotErrorIs(t, err, distgeom.ErrUnresolvedPoint)
	require.NotNil(t, res)
	require.Equal(t, []int{3}, res.UnresolvedIndices())
	require.True(t, res.Resolved(2))
}

// TestReconstruct_ThirdAnchorBehindOrigin keeps d(1,2) when index 2 projects
// onto the negative x-axis.
func TestReconstruct_ThirdAnchorBehindOrigin(t *testing.T) {
	t.Parallel()

	want := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(-3, 2), distgeom.Pt(1, -5)}
	res, err := distgeom.Reconstruct(distgeom.ComputeDistances(want))
	require.NoError(t, err)
	requirePointsNear(t, want, res.Points, 1e-9)
}

// TestReconstruct_MirrorImage: an input in the lower half-plane comes back
// reflected across the x-axis.
func TestReconstruct_MirrorImage(t *testing.T) {
	t.Parallel()

	in := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(3, -2), distgeom.Pt(1, 3)}
	want := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(3, 2), distgeom.Pt(1, -3)}
	res, err := distgeom.Reconstruct(distgeom.ComputeDistances(in))
	require.NoError(t, err)
	requirePointsNear(t, want, res.Points, 1e-9)
}

// TestReconstruct_CollinearAnchors: with indices 0..2 on one line only points
// on that line can be placed.
func TestReconstruct_CollinearAnchors(t *testing.T) {
	t.Parallel()

	pts := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(8, 0), distgeom.Pt(6, 0), distgeom.Pt(2, 3)}
	res, err := distgeom.Reconstruct(distgeom.ComputeDistances(pts))
	require.ErrorIs(t, err, distgeom.ErrUnresolvedPoint)
	require.Equal(t, []int{4}, res.UnresolvedIndices())
	requirePointsNear(t, pts[:4], res.Points[:4], 1e-9)
}

// TestReconstruct_RandomRoundTrip: distances of the reconstruction match the
// input for random point sets.
func TestReconstruct_RandomRoundTrip(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3, 42} {
		pts := randomPoints(t, 60, seed)
		d := distgeom.ComputeDistances(pts)

		res, err := distgeom.Reconstruct(d)
		require.NoErrorf(t, err, "seed %d", seed)
		require.True(t, res.Complete())

		dev, err := distgeom.Deviation(d, distgeom.ComputeDistances(res.Points))
		require.NoError(t, err)
		require.Lessf(t, dev, 1e-6, "seed %d", seed)
	}
}

// TestReconstruct_ScaledInput: relative tolerance keeps large coordinates
// reconstructible.
func TestReconstruct_ScaledInput(t *testing.T) {
	t.Parallel()

	pts := randomPoints(t, 20, 5)
	for i := range pts {
		pts[i] = distgeom.Pt(pts[i].X*1e5, pts[i].Y*1e5)
	}
	d := distgeom.ComputeDistances(pts)

	res, err := distgeom.Reconstruct(d)
	require.NoError(t, err)

	dev, err := distgeom.Deviation(d, distgeom.ComputeDistances(res.Points))
	require.NoError(t, err)
	require.Less(t, dev/d.MaxDistance(), 1e-9)
}

// TestReconstruct_SmallScaleInput: the tolerance shrinks with the input, so
// sub-unit sets keep the correct mirror image.
func TestReconstruct_SmallScaleInput(t *testing.T) {
	t.Parallel()

	const s = 1e-6
	in := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4*s, 0), distgeom.Pt(3*s, 2*s), distgeom.Pt(1*s, -3*s)}
	res, err := distgeom.Reconstruct(distgeom.ComputeDistances(in))
	require.NoError(t, err)
	requirePointsNear(t, in, res.Points, 1e-15)

	for _, seed := range []int64{1, 2, 3, 42} {
		pts := randomPoints(t, 60, seed)
		for i := range pts {
			pts[i] = distgeom.Pt(pts[i].X*1e-6, pts[i].Y*1e-6)
		}
		d := distgeom.ComputeDistances(pts)

		res, err = distgeom.Reconstruct(d)
		require.NoErrorf(t, err, "seed %d", seed)

		dev, err := distgeom.Deviation(d, distgeom.ComputeDistances(res.Points))
		require.NoError(t, err)
		require.Lessf(t, dev/d.MaxDistance(), 1e-9, "seed %d", seed)
	}
}

// TestReconstruct_AmbiguousMirror: with index 2 barely off the axis, a point
// close to the axis fits on both sides and is flagged; a point far from it is not.
func TestReconstruct_AmbiguousMirror(t *testing.T) {
	t.Parallel()

	pts := []distgeom.Point{
		distgeom.Pt(0, 0), distgeom.Pt(100, 0), distgeom.Pt(50, 1e-3),
		distgeom.Pt(30, 2), distgeom.Pt(30, 40),
	}

	var flagged []int
	res, err := distgeom.Reconstruct(distgeom.ComputeDistances(pts),
		distgeom.WithEpsilon(1e-6),
		distgeom.WithOnAmbiguous(func(i int, _ distgeom.Point) { flagged = append(flagged, i) }),
	)
	require.NoError(t, err)
	require.True(t, res.Complete())
	require.Equal(t, []int{3}, res.AmbiguousIndices())
	require.Equal(t, []int{3}, flagged)
	requirePointsNear(t, pts, res.Points, 1e-6)

	res, err = distgeom.Reconstruct(distgeom.ComputeDistances(squarePoints()))
	require.NoError(t, err)
	require.Empty(t, res.AmbiguousIndices())
}
