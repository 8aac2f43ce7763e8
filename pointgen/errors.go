// SPDX-License-Identifier: MIT
// Package: rebuildmap/pointgen
//
// errors.go: sentinel errors for point-set generation.
//
// Error policy:
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Generators never panic at runtime; option constructors (WithX) panic on
//     meaningless inputs.

package pointgen

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a requested size that is negative or smaller than
// the number of seeded anchors.
var ErrTooFewPoints = errors.New("pointgen: too few points")

// ErrDuplicateAnchor indicates that two seeded anchors coincide.
var ErrDuplicateAnchor = errors.New("pointgen: duplicate anchor")

// ErrExhausted indicates that the range could not supply enough distinct
// points within the retry budget.
var ErrExhausted = errors.New("pointgen: could not draw distinct points")

// pointgenErrorf wraps an inner error with method context.
func pointgenErrorf(method, format string, args ...any) error {
	return fmt.Errorf("pointgen: %s: %w", method, fmt.Errorf(format, args...))
}
