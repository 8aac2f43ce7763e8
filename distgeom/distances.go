// SPDX-License-Identifier: MIT

package distgeom

import "github.com/katalvlaran/rebuildmap/matrix"

// ComputeDistances builds the pairwise Euclidean distance matrix of points.
//
// Implementation:
//   - Stage 1: allocate an N×N Dense with NaN/Inf validation disabled, so
//     non-finite coordinates propagate into the affected cells instead of
//     failing the whole call.
//   - Stage 2: compute the strict upper triangle once and write each value to
//     both (i,j) and (j,i); the diagonal stays exactly 0.
//
// Behavior highlights:
//   - N=0 yields an empty matrix; the function never fails.
//   - Symmetry is exact (bit-for-bit), not merely within tolerance.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func ComputeDistances(points []Point) *DistanceMatrix {
	n := len(points)
	dense, _ := matrix.NewSquare(n, matrix.WithNoValidateNaNInf()) // n ≥ 0 always

	var (
		i, j    int
		v, best float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = points[i].Dist(points[j])
			_ = dense.Set(i, j, v)
			_ = dense.Set(j, i, v)
			if v > best {
				best = v
			}
		}
	}

	return &DistanceMatrix{m: dense, maxDist: best}
}
