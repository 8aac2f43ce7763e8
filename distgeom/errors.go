// SPDX-License-Identifier: MIT
// Package: rebuildmap/distgeom
//
// errors.go: sentinel errors and the index-tagged PointError.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) classify failures.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics and
//     errors.As(err, &*PointError) to recover the failing index.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//   • Nothing is retried internally: retry with another tolerance or another
//     anchor ordering is a caller decision.

package distgeom

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints is the precondition failure: fewer than three indices were
// supplied, so no 2D frame (origin, axis, side) can be fixed.
var ErrTooFewPoints = errors.New("distgeom: at least 3 points required")

// ErrDegenerateAnchor indicates that the two frame anchors (indices 0 and 1)
// coincide within tolerance, so the frame axis is undefined.
var ErrDegenerateAnchor = errors.New("distgeom: degenerate anchor")

// ErrNonRealizable indicates a negative radicand beyond tolerance: the
// distances supplied for an index cannot be met by any point in the plane.
var ErrNonRealizable = errors.New("distgeom: non-realizable geometry")

// ErrUnresolvedPoint indicates that no sign candidate for an index matched
// its reference distances within tolerance.
var ErrUnresolvedPoint = errors.New("distgeom: unresolved point")

// ErrShapeMismatch indicates that two distance matrices of different orders
// were compared.
var ErrShapeMismatch = errors.New("distgeom: shape mismatch")

// PointError tags a failure with the matrix index it belongs to.
type PointError struct {
	Index  int    // row/column of the input matrix
	Err    error  // one of the package sentinels
	Detail string // optional human-readable context
}

// Error implements error.
func (e *PointError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("index %d: %v", e.Index, e.Err)
	}

	return fmt.Sprintf("index %d: %v (%s)", e.Index, e.Err, e.Detail)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *PointError) Unwrap() error { return e.Err }

// pointErrorf builds a *PointError with a formatted detail.
func pointErrorf(index int, sentinel error, format string, args ...any) *PointError {
	return &PointError{Index: index, Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// distgeomErrorf wraps an inner error with method context.
func distgeomErrorf(method string, err error) error {
	return fmt.Errorf("distgeom: %s: %w", method, err)
}
