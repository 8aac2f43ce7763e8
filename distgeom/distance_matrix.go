// SPDX-License-Identifier: MIT

// Package distgeom - DistanceMatrix: validated, immutable N×N distances.
//
// Ingestion contract:
//   - square, finite, non-negative, zero diagonal (within tolerance);
//   - either symmetric within tolerance, or an upper-triangular supply (every
//     strict-lower cell exactly 0). In both cases the stored matrix is
//     canonicalized from the upper triangle, so reads are symmetric by
//     construction: At(i, j) == At(j, i) always.
package distgeom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rebuildmap/matrix"
)

const (
	methodNewDistanceMatrix = "NewDistanceMatrix"
	methodFromMatrix        = "FromMatrix"
	methodInduced           = "DistanceMatrix.Induced"
)

// DistanceMatrix is an immutable, symmetric N×N matrix of pairwise distances.
// The zero value is an empty (N=0) matrix.
type DistanceMatrix struct {
	m       *matrix.Dense // canonical symmetric storage; nil only for the zero value
	maxDist float64       // largest finite entry, cached for tolerance scaling
}

// NewDistanceMatrix validates rows and returns an immutable DistanceMatrix.
// Implementation:
//   - Stage 1: copy rows into Dense (ragged → matrix.ErrRagged).
//   - Stage 2: validate via FromMatrix.
//
// Errors:
//   - matrix.ErrRagged, matrix.ErrNonSquare, matrix.ErrNaNInf,
//     matrix.ErrNegativeEntry, matrix.ErrNonZeroDiagonal, matrix.ErrAsymmetry.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func NewDistanceMatrix(rows [][]float64, opts ...Option) (*DistanceMatrix, error) {
	// NaN/Inf are reported by ValidateFinite with coordinates, not by ingestion.
	dense, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, distgeomErrorf(methodNewDistanceMatrix, err)
	}

	return fromDense(methodNewDistanceMatrix, dense, gatherOptions(opts...))
}

// FromMatrix validates an arbitrary matrix.Matrix and returns an immutable copy.
// The argument is never retained or mutated.
func FromMatrix(m matrix.Matrix, opts ...Option) (*DistanceMatrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, distgeomErrorf(methodFromMatrix, err)
	}
	n := m.Rows()
	dense, err := matrix.NewSquare(n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, distgeomErrorf(methodFromMatrix, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, distgeomErrorf(methodFromMatrix, err)
			}
			_ = dense.Set(i, j, v) // policy off, bounds ensured
		}
	}

	return fromDense(methodFromMatrix, dense, gatherOptions(opts...))
}

// fromDense runs the ingestion checks in fixed priority order and
// canonicalizes storage from the upper triangle.
func fromDense(method string, dense *matrix.Dense, o Options) (*DistanceMatrix, error) {
	// Stage 1: shape, finiteness, sign. These do not depend on tolerance.
	if err := matrix.ValidateSquare(dense); err != nil {
		return nil, distgeomErrorf(method, err)
	}
	if err := matrix.ValidateFinite(dense); err != nil {
		return nil, distgeomErrorf(method, err)
	}
	if err := matrix.ValidateNonNegative(dense); err != nil {
		return nil, distgeomErrorf(method, err)
	}

	// Stage 2: tolerance-dependent checks scaled by the largest entry.
	maxDist := maxEntry(dense)
	tol := o.toleranceFor(maxDist)
	if err := matrix.ValidateZeroDiagonal(dense, tol.lin); err != nil {
		return nil, distgeomErrorf(method, err)
	}
	upper, err := matrix.IsStrictLowerZero(dense)
	if err != nil {
		return nil, distgeomErrorf(method, err)
	}
	if !upper {
		if err = matrix.ValidateSymmetric(dense, tol.lin); err != nil {
			return nil, distgeomErrorf(method, err)
		}
	}

	// Stage 3: canonical symmetric storage with an exact zero diagonal.
	canon, err := matrix.MirrorUpper(dense)
	if err != nil {
		return nil, distgeomErrorf(method, err)
	}
	var i int
	for i = 0; i < canon.Rows(); i++ {
		_ = canon.Set(i, i, 0)
	}

	return &DistanceMatrix{m: canon, maxDist: maxDist}, nil
}

// maxEntry returns the largest finite cell (0 for empty matrices).
func maxEntry(m *matrix.Dense) float64 {
	var best float64
	m.Do(func(_, _ int, v float64) bool {
		if v > best && !math.IsInf(v, 0) {
			best = v
		}
		return true
	})

	return best
}

// Len returns N, the number of indices.
func (d *DistanceMatrix) Len() int {
	if d == nil || d.m == nil {
		return 0
	}

	return d.m.Rows()
}

// At returns the distance between indices i and j.
// Panics on out-of-range indices like slice indexing does; callers iterate
// over [0, Len()).
func (d *DistanceMatrix) At(i, j int) float64 {
	v, err := d.m.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("distgeom: DistanceMatrix.At(%d,%d) with N=%d", i, j, d.Len()))
	}

	return v
}

// MaxDistance returns the largest finite distance in the matrix.
func (d *DistanceMatrix) MaxDistance() float64 {
	if d == nil {
		return 0
	}

	return d.maxDist
}

// Row returns an independent copy of row i.
func (d *DistanceMatrix) Row(i int) ([]float64, error) {
	if d.Len() == 0 {
		return nil, matrix.ErrOutOfRange
	}

	return d.m.RowCopy(i)
}

// Rows materializes the matrix as an independent [][]float64.
func (d *DistanceMatrix) Rows() [][]float64 {
	if d.Len() == 0 {
		return [][]float64{}
	}

	return d.m.ToRows()
}

// Matrix returns an independent copy as a matrix.Matrix.
func (d *DistanceMatrix) Matrix() matrix.Matrix {
	if d.Len() == 0 {
		empty, _ := matrix.NewSquare(0)
		return empty
	}

	return d.m.Clone()
}

// Induced returns the distances among the given indices, in the given order.
// Errors: matrix.ErrOutOfRange on invalid indices.
func (d *DistanceMatrix) Induced(idx []int) (*DistanceMatrix, error) {
	if d.Len() == 0 {
		if len(idx) == 0 {
			return &DistanceMatrix{}, nil
		}
		return nil, distgeomErrorf(methodInduced, matrix.ErrOutOfRange)
	}
	sub, err := d.m.Induced(idx, idx)
	if err != nil {
		return nil, distgeomErrorf(methodInduced, err)
	}

	return &DistanceMatrix{m: sub, maxDist: maxEntry(sub)}, nil
}

// String renders the matrix row by row for diagnostics.
func (d *DistanceMatrix) String() string {
	if d.Len() == 0 {
		return ""
	}

	return d.m.String()
}
