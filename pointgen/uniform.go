// SPDX-License-Identifier: MIT

// Package pointgen produces seeded, reproducible 2D point sets.
//
// Sets consist of distinct points: optional seeded anchors first, then points
// drawn uniformly from a square range. The same options and seed always give
// the same set.
package pointgen

import (
	"math/rand"

	"github.com/katalvlaran/rebuildmap/distgeom"
)

const (
	methodGenerate       = "Generate"
	methodGenerateMatrix = "GenerateMatrix"
)

// Generator supplies ordered sets of distinct points.
type Generator interface {
	Generate(n int) ([]distgeom.Point, error)
}

// Uniform draws coordinates uniformly from [lo, hi)².
// A Uniform is not safe for concurrent use; it owns its RNG.
type Uniform struct {
	rng     *rand.Rand
	lo, hi  float64
	anchors []distgeom.Point
}

var _ Generator = (*Uniform)(nil)

// New returns a Uniform configured by opts.
func New(opts ...Option) *Uniform {
	c := gatherOptions(opts...)

	return &Uniform{rng: c.rng, lo: c.lo, hi: c.hi, anchors: c.anchors}
}

// Generate returns n distinct points; anchors (if any) occupy indices
// 0..len(anchors)-1 and are returned verbatim.
//
// Errors:
//   - ErrTooFewPoints when n < 0 or n < len(anchors).
//   - ErrDuplicateAnchor when two anchors coincide.
//   - ErrExhausted when the range cannot supply distinct points.
//
// Complexity:
//   - Expected time O(n), space O(n).
func (u *Uniform) Generate(n int) ([]distgeom.Point, error) {
	if n < 0 || n < len(u.anchors) {
		return nil, pointgenErrorf(methodGenerate, "n=%d with %d anchors: %w", n, len(u.anchors), ErrTooFewPoints)
	}

	seen := make(map[distgeom.Point]struct{}, n)
	out := make([]distgeom.Point, 0, n)
	for i, a := range u.anchors {
		if _, dup := seen[a]; dup {
			return nil, pointgenErrorf(methodGenerate, "anchor %d %v: %w", i, a, ErrDuplicateAnchor)
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	var (
		p     distgeom.Point
		tries int
	)
	for len(out) < n {
		p = u.draw()
		if _, dup := seen[p]; dup {
			tries++
			if tries > maxRedrawsPerPoint {
				return nil, pointgenErrorf(methodGenerate, "after %d points: %w", len(out), ErrExhausted)
			}
			continue
		}
		tries = 0
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}

func (u *Uniform) draw() distgeom.Point {
	span := u.hi - u.lo

	return distgeom.Point{X: u.lo + u.rng.Float64()*span, Y: u.lo + u.rng.Float64()*span}
}

// GenerateMatrix draws n points with a fresh Uniform and returns them along
// with their distance matrix.
func GenerateMatrix(n int, opts ...Option) (*distgeom.DistanceMatrix, []distgeom.Point, error) {
	pts, err := New(opts...).Generate(n)
	if err != nil {
		return nil, nil, pointgenErrorf(methodGenerateMatrix, "%w", err)
	}

	return distgeom.ComputeDistances(pts), pts, nil
}
