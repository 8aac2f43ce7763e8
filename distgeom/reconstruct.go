// SPDX-License-Identifier: MIT

// Package distgeom - Reconstruct: trilateration with sign disambiguation.
//
// Canonical frame:
//   - index 0 at the origin;
//   - index 1 on the positive x-axis at (n, 0), n = d(0,1);
//   - index 2 in the upper half-plane (y ≥ 0), preferring x ≥ 0.
//
// Every later index k is located from its distances to indices 0 and 1 (two
// circle equations), which leaves a mirror ambiguity across the x-axis. The
// distance to index 2, which lies off that axis, breaks it.
package distgeom

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rebuildmap/matrix"
)

const methodReconstruct = "Reconstruct"

// minPoints is the smallest N that fixes a 2D frame (origin, axis, side).
const minPoints = 3

// Reconstruct derives one coordinate per index of d in the canonical frame.
//
// Implementation:
//   - Stage 1: preconditions (non-nil, N ≥ 3) and tolerance derivation.
//   - Stage 2: anchor frame for indices 0 and 1 (degenerate when n ≈ 0).
//   - Stage 3: third anchor from the two-circle solution, y forced ≥ 0.
//   - Stage 4: for k ≥ 3, try (r,s), (r,-s), (-r,s), (-r,-s) in that order
//     and accept the first candidate whose squared distances to indices 1
//     and 2 match the input within tolerance.
//
// Behavior highlights:
//   - The result always has N slots; an index that cannot be placed is flagged
//     in Result.Unresolved and described by a *PointError in Result.Errors.
//   - Radicands in [-tol, 0) are clamped to 0; below -tol the index is
//     non-realizable.
//   - When indices 0, 1 and 2 are collinear the mirror ambiguity cannot be
//     broken, so any later index off the x-axis is reported unresolved.
//   - When index 2 is only barely off the axis, a later index and its mirror
//     image may both match; the first candidate is kept and the index is
//     listed in Result.Ambiguous (and passed to the WithOnAmbiguous hook).
//
// Returns:
//   - (nil, err) on fatal conditions: nil matrix, N < 3, degenerate anchor,
//     non-realizable third anchor.
//   - (res, nil) when every index was placed.
//   - (res, errors.Join(*PointError...)) when some indices were not placed.
//   - (nil, *PointError) on the first per-index failure under WithFailFast.
//
// Complexity:
//   - Time O(N), Space O(N).
func Reconstruct(d *DistanceMatrix, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, distgeomErrorf(methodReconstruct, matrix.ErrNilMatrix)
	}
	n := d.Len()
	if n < minPoints {
		return nil, fmt.Errorf("distgeom: %s: N=%d: %w", methodReconstruct, n, ErrTooFewPoints)
	}
	o := gatherOptions(opts...)
	tol := o.toleranceFor(d.MaxDistance())

	// Stage 2: anchor frame. The negated test also rejects NaN.
	axis := d.At(0, 1)
	if !(axis > tol.lin) {
		return nil, pointErrorf(1, ErrDegenerateAnchor, "d(0,1)=%g", axis)
	}
	res := newResult(n)
	res.Points[0] = Point{}
	res.Points[1] = Point{X: axis}

	// Stage 3: third anchor.
	p2, err := placeThirdAnchor(d, axis, tol)
	if err != nil {
		return nil, err
	}
	res.Points[2] = p2
	if o.onPlaced != nil {
		o.onPlaced(0, res.Points[0])
		o.onPlaced(1, res.Points[1])
		o.onPlaced(2, p2)
	}
	collinear := p2.Y <= tol.lin

	// Stage 4: remaining indices, strictly ascending.
	var (
		failures  []error
		k         int
		p         Point
		ambiguous bool
		perr      *PointError
	)
	for k = minPoints; k < n; k++ {
		p, ambiguous, perr = placePoint(d, k, axis, p2, collinear, tol)
		if perr != nil {
			if o.failFast {
				return nil, perr
			}
			res.markUnresolved(k, perr)
			failures = append(failures, perr)
			if o.onUnresolved != nil {
				o.onUnresolved(k, perr)
			}
			continue
		}
		res.Points[k] = p
		if o.onPlaced != nil {
			o.onPlaced(k, p)
		}
		if ambiguous {
			res.Ambiguous.Add(uint32(k))
			if o.onAmbiguous != nil {
				o.onAmbiguous(k, p)
			}
		}
	}

	if len(failures) > 0 {
		return res, errors.Join(failures...)
	}

	return res, nil
}

// twoCircle solves x² + y² = alpha, (x-axis)² + y² = beta for x and y² ≥ 0.
// ok is false when y² is below -tol.sq (or NaN).
func twoCircle(alpha, beta, axis float64, tol tolerance) (x, y float64, ok bool) {
	x = (axis*axis + alpha - beta) / (2 * axis)
	ySq := alpha - x*x
	if math.IsNaN(ySq) || ySq < -tol.sq {
		return x, ySq, false
	}
	if ySq < 0 {
		ySq = 0
	}

	return x, math.Sqrt(ySq), true
}

// matches reports whether a squared distance agrees with want within tol.
func matches(gotSq, want float64, tol tolerance) bool {
	return math.Abs(gotSq-want*want) <= tol.sq
}

// placeThirdAnchor returns index 2 in the canonical half-plane.
// (|r|, |s|) is preferred; (-|r|, |s|) is used when only it satisfies d(1,2),
// i.e. when index 2 projects behind the origin.
func placeThirdAnchor(d *DistanceMatrix, axis float64, tol tolerance) (Point, error) {
	d02, d12 := d.At(0, 2), d.At(1, 2)
	x, s, ok := twoCircle(d02*d02, d12*d12, axis, tol)
	if !ok {
		return Point{}, pointErrorf(2, ErrNonRealizable, "radicand %g", s)
	}
	r := math.Abs(x)
	p1 := Point{X: axis}
	for _, c := range [2]Point{{X: r, Y: s}, {X: -r, Y: s}} {
		if matches(c.DistSq(p1), d12, tol) {
			return c, nil
		}
	}

	// Unreachable for finite input: x carries the sign that satisfies d(1,2).
	return Point{}, pointErrorf(2, ErrNonRealizable, "no half-plane solution")
}

// placePoint locates index k ≥ 3, or explains why it cannot be placed.
// ambiguous is true when the mirror of the accepted point matches as well.
func placePoint(d *DistanceMatrix, k int, axis float64, p2 Point, collinear bool, tol tolerance) (p Point, ambiguous bool, perr *PointError) {
	d0, d1, d2 := d.At(0, k), d.At(1, k), d.At(2, k)
	x, s, ok := twoCircle(d0*d0, d1*d1, axis, tol)
	if !ok {
		return Point{}, false, pointErrorf(k, ErrNonRealizable, "radicand %g", s)
	}
	if collinear && s > tol.lin {
		return Point{}, false, pointErrorf(k, ErrUnresolvedPoint, "anchors 0, 1, 2 are collinear")
	}

	r := math.Abs(x)
	p1 := Point{X: axis}
	fits := func(c Point) bool {
		return matches(c.DistSq(p2), d2, tol) && matches(c.DistSq(p1), d1, tol)
	}
	candidates := [4]Point{{X: r, Y: s}, {X: r, Y: -s}, {X: -r, Y: s}, {X: -r, Y: -s}}
	for _, c := range candidates {
		if fits(c) {
			return c, s > tol.lin && fits(Point{X: c.X, Y: -c.Y}), nil
		}
	}

	return Point{}, false, pointErrorf(k, ErrUnresolvedPoint, "no sign candidate matches d(2,%d)=%g", k, d2)
}
