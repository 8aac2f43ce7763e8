// SPDX-License-Identifier: MIT

// Package matrix - element-wise kernels and reductions.
//
// Every kernel follows the same staging:
//   - Stage 1 (Validate): nil-checks and shape match via validators.go.
//   - Stage 2 (Prepare): allocate the result (never mutate inputs).
//   - Stage 3 (Execute): fast-path over flat slices when all operands are *Dense,
//     otherwise a bounds-safe generic loop via At/Set.
//   - Stage 4 (Finalize): return result.
package matrix

import (
	"fmt"
	"math"
)

const (
	opSub         = "Sub"
	opAbs         = "Abs"
	opMean        = "Mean"
	opMeanAbsDiff = "MeanAbsDiff"
	opMirror      = "MirrorUpper"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newResultLike allocates an r×c result that never rejects values, so
// NaN/Inf carried by inputs propagate instead of failing mid-kernel.
func newResultLike(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newResultLike(rows, cols)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// Abs returns a new Matrix with |m[i,j]| in every cell.
// Complexity: O(r·c) time and memory.
func Abs(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAbs, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newResultLike(rows, cols)

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = math.Abs(v)
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[i*cols+j] = math.Abs(v)
		}
	}

	return res, nil
}

// Mean returns the arithmetic mean over all r·c cells; an empty matrix has mean 0.
// Complexity: O(r·c) time, O(1) memory.
func Mean(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	rows, cols := m.Rows(), m.Cols()
	if rows*cols == 0 {
		return 0, nil
	}

	var sum float64
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			sum += v
		}

		return sum / float64(rows*cols), nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			sum += v
		}
	}

	return sum / float64(rows*cols), nil
}

// MeanAbsDiff returns mean(|a-b|) over all cells without materializing the
// intermediate matrices. Empty operands yield 0.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time, O(1) memory.
func MeanAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMeanAbsDiff, err)
	}

	rows, cols := a.Rows(), a.Cols()
	if rows*cols == 0 {
		return 0, nil
	}

	var sum float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				sum += math.Abs(da.data[idx] - db.data[idx])
			}

			return sum / float64(rows*cols), nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			sum += math.Abs(av - bv)
		}
	}

	return sum / float64(rows*cols), nil
}

// MirrorUpper returns a copy of square m whose strict lower triangle is
// replaced by the transposed strict upper triangle (A[j,i] = A[i,j], i<j).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func MirrorUpper(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMirror, err)
	}

	n := m.Rows()
	res := newResultLike(n, n)
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
	} else {
		res.validateNaNInf = DefaultValidateNaNInf
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v, _ = m.At(i, j)
			res.data[i*n+j] = v
			res.data[j*n+i] = v
		}
	}

	return res, nil
}
