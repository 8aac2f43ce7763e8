package distgeom_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rebuildmap/distgeom"
	"github.com/stretchr/testify/require"
)

// randomPoints draws n points uniformly from [-100, 100)² with a fixed seed.
func randomPoints(t *testing.T, n int, seed int64) []distgeom.Point {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	pts := make([]distgeom.Point, n)
	for i := range pts {
		pts[i] = distgeom.Pt(rng.Float64()*200-100, rng.Float64()*200-100)
	}

	return pts
}

// mustMatrix builds a DistanceMatrix or fails the test.
func mustMatrix(t *testing.T, rows [][]float64) *distgeom.DistanceMatrix {
	t.Helper()

	d, err := distgeom.NewDistanceMatrix(rows)
	require.NoError(t, err)

	return d
}

// corrupted returns the distances of pts with the symmetric cell (i,j) set to v.
func corrupted(t *testing.T, pts []distgeom.Point, i, j int, v float64) *distgeom.DistanceMatrix {
	t.Helper()

	rows := distgeom.ComputeDistances(pts).Rows()
	rows[i][j], rows[j][i] = v, v

	return mustMatrix(t, rows)
}

// requirePointsNear compares two point slices coordinate-wise.
func requirePointsNear(t *testing.T, want, got []distgeom.Point, delta float64) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i].X, got[i].X, delta, "x of index %d", i)
		require.InDeltaf(t, want[i].Y, got[i].Y, delta, "y of index %d", i)
	}
}

// squarePoints is the 4x4 square used by the sign-selection scenarios.
func squarePoints() []distgeom.Point {
	return []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(4, 4), distgeom.Pt(0, 4)}
}
