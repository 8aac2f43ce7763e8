// SPDX-License-Identifier: MIT

// Package distgeom reconstructs 2D point coordinates from pairwise distances.
//
// The package provides three pure, synchronous components:
//
//   - ComputeDistances: builds the symmetric, zero-diagonal N×N Euclidean
//     distance matrix of an ordered point set.
//
//   - Complexity: O(N²) time and memory.
//
//   - Reconstruct: trilateration in a canonical frame: index 0 at the
//     origin, index 1 on the positive x-axis, index 2 in the upper half-plane.
//     Later indices are resolved among four sign candidates using index 2.
//
//   - Complexity: O(N).
//
//   - Deviation: mean absolute per-cell difference of two distance matrices.
//
//   - Complexity: O(N²).
//
// Rebuild chains them: reconstruct, recompute distances, compare.
//
// Reconstruction never drops an index. Result.Points always has N entries;
// indices that could not be placed are listed in Result.Unresolved and
// explained by a *PointError (errors.As) wrapping ErrNonRealizable or
// ErrUnresolvedPoint (errors.Is).
//
// Tolerance: a single epsilon (WithEpsilon), relative to the largest input
// distance by default, governs radicand clamping, diagonal and symmetry
// checks and candidate matching. WithAbsoluteTolerance uses it verbatim.
//
// The reconstructed set matches the original up to a rigid motion and a
// reflection. Orientation is preserved only when the original indices 0, 1
// and 2 already sit in the canonical frame (see pointgen.WithOrientationAnchors).
package distgeom
