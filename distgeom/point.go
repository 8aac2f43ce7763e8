// SPDX-License-Identifier: MIT

package distgeom

import (
	"math"
	"strconv"
)

// Point is a 2D coordinate. It is a plain value: copies are independent and
// nothing in this package mutates a Point after producing it.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y

	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
// math.Hypot avoids intermediate overflow for very distant points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String renders the point as "(x, y)" using the shortest exact representation.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
