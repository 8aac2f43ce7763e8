// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage underneath rebuildmap.
//
// The matrix package provides:
//   - Matrix: the minimal mutable 2D contract (Rows, Cols, At, Set, Clone).
//   - Dense: a row-major float64 implementation with bounds-checked accessors
//     and an opt-in finite-only numeric policy.
//   - Validators: shape, finiteness, non-negativity, zero diagonal, symmetry.
//   - Kernels: Sub, Abs, Mean, MeanAbsDiff, MirrorUpper.
//
// Errors are package-level sentinels (errors.go). Public functions never panic
// on user input.
//
// Quick example:
//
//	d, _ := matrix.NewDenseFromRows([][]float64{{0, 5}, {5, 0}})
//	_ = matrix.ValidateSymmetric(d, 1e-9) // nil
package matrix
