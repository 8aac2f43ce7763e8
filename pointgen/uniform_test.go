package pointgen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rebuildmap/distgeom"
	"github.com/katalvlaran/rebuildmap/pointgen"
	"github.com/stretchr/testify/require"
)

// TestUniform_SeedDeterminism: equal seeds give equal sets, seed 0 maps to the default.
func TestUniform_SeedDeterminism(t *testing.T) {
	t.Parallel()

	a, err := pointgen.New(pointgen.WithSeed(42)).Generate(30)
	require.NoError(t, err)
	b, err := pointgen.New(pointgen.WithSeed(42)).Generate(30)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := pointgen.New(pointgen.WithSeed(43)).Generate(30)
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	z, err := pointgen.New(pointgen.WithSeed(0)).Generate(5)
	require.NoError(t, err)
	d, err := pointgen.New().Generate(5)
	require.NoError(t, err)
	require.Equal(t, z, d)
}

// TestUniform_RangeAndDistinct checks bounds and uniqueness.
func TestUniform_RangeAndDistinct(t *testing.T) {
	t.Parallel()

	pts, err := pointgen.New(pointgen.WithRange(-1, 1), pointgen.WithRand(rand.New(rand.NewSource(9)))).Generate(500)
	require.NoError(t, err)
	require.Len(t, pts, 500)

	seen := make(map[distgeom.Point]bool, len(pts))
	for _, p := range pts {
		require.GreaterOrEqual(t, p.X, -1.0)
		require.Less(t, p.X, 1.0)
		require.GreaterOrEqual(t, p.Y, -1.0)
		require.Less(t, p.Y, 1.0)
		require.False(t, seen[p])
		seen[p] = true
	}
}

// TestUniform_OrientationAnchors: seeded anchors keep the reconstruction in
// the original orientation.
func TestUniform_OrientationAnchors(t *testing.T) {
	t.Parallel()

	d, pts, err := pointgen.GenerateMatrix(25, pointgen.WithSeed(7), pointgen.WithOrientationAnchors())
	require.NoError(t, err)
	require.Equal(t, pointgen.OrientationAnchors[:], pts[:3])

	res, err := distgeom.Reconstruct(d)
	require.NoError(t, err)
	for i := range pts {
		require.InDelta(t, pts[i].X, res.Points[i].X, 1e-6)
		require.InDelta(t, pts[i].Y, res.Points[i].Y, 1e-6)
	}
}

func TestUniform_Errors(t *testing.T) {
	t.Parallel()

	_, err := pointgen.New().Generate(-1)
	require.ErrorIs(t, err, pointgen.ErrTooFewPoints)

	_, err = pointgen.New(pointgen.WithOrientationAnchors()).Generate(2)
	require.ErrorIs(t, err, pointgen.ErrTooFewPoints)

	_, err = pointgen.New(pointgen.WithAnchors(distgeom.Pt(1, 1), distgeom.Pt(1, 1))).Generate(3)
	require.ErrorIs(t, err, pointgen.ErrDuplicateAnchor)

	_, _, err = pointgen.GenerateMatrix(-3)
	require.ErrorIs(t, err, pointgen.ErrTooFewPoints)

	pts, err := pointgen.New().Generate(0)
	require.NoError(t, err)
	require.Empty(t, pts)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { pointgen.WithRand(nil) })
	require.Panics(t, func() { pointgen.WithRange(1, 1) })
	require.Panics(t, func() { pointgen.WithRange(0, math.Inf(1)) })
}
