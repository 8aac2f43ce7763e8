// SPDX-License-Identifier: MIT

package distgeom

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rebuildmap/matrix"
)

const (
	methodDeviation   = "Deviation"
	methodDeviationOf = "DeviationOf"
)

// Deviation returns the mean of |a[i][j] - b[i][j]| over all N² cells.
// The diagonal is included and contributes 0. Two empty matrices yield 0.
//
// Errors:
//   - ErrShapeMismatch (also matching matrix.ErrDimensionMismatch) when the
//     orders differ.
//   - matrix.ErrNilMatrix when either argument is nil.
//
// Complexity:
//   - Time O(N²), Space O(1).
func Deviation(a, b *DistanceMatrix) (float64, error) {
	if a == nil || b == nil {
		return 0, distgeomErrorf(methodDeviation, matrix.ErrNilMatrix)
	}
	if a.Len() != b.Len() {
		return 0, shapeMismatch(methodDeviation, a.Len(), a.Len(), b.Len(), b.Len())
	}
	if a.Len() == 0 {
		return 0, nil
	}

	v, err := matrix.MeanAbsDiff(a.m, b.m)
	if err != nil {
		return 0, distgeomErrorf(methodDeviation, err)
	}

	return v, nil
}

// DeviationOf is Deviation over raw matrices that need not be validated
// distance matrices. It materializes |a-b| via matrix.Sub and matrix.Abs
// before averaging with matrix.Mean.
//
// Complexity:
//   - Time O(r·c), Space O(r·c).
func DeviationOf(a, b matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, distgeomErrorf(methodDeviationOf, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return 0, distgeomErrorf(methodDeviationOf, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, shapeMismatch(methodDeviationOf, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	diff, err := matrix.Sub(a, b)
	if err != nil {
		return 0, distgeomErrorf(methodDeviationOf, err)
	}
	abs, err := matrix.Abs(diff)
	if err != nil {
		return 0, distgeomErrorf(methodDeviationOf, err)
	}
	mean, err := matrix.Mean(abs)
	if err != nil {
		return 0, distgeomErrorf(methodDeviationOf, err)
	}

	return mean, nil
}

// shapeMismatch carries both the package sentinel and the matrix one.
func shapeMismatch(method string, ar, ac, br, bc int) error {
	return fmt.Errorf("distgeom: %s: %dx%d vs %dx%d: %w",
		method, ar, ac, br, bc, errors.Join(ErrShapeMismatch, matrix.ErrDimensionMismatch))
}
