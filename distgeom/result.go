// SPDX-License-Identifier: MIT

package distgeom

import "github.com/RoaringBitmap/roaring/v2"

// Result is the outcome of a reconstruction.
//
// Points is index-aligned with the input matrix and always has length N.
// Slots listed in Unresolved hold the zero Point and carry a *PointError in
// Errors; every other slot holds a placed coordinate. Ambiguous lists placed
// indices whose mirror image across the x-axis also fit every distance within
// tolerance; their side was taken from the first matching candidate.
type Result struct {
	Points     []Point
	Unresolved *roaring.Bitmap
	Ambiguous  *roaring.Bitmap
	Errors     map[int]error
}

func newResult(n int) *Result {
	return &Result{
		Points:     make([]Point, n),
		Unresolved: roaring.New(),
		Ambiguous:  roaring.New(),
		Errors:     make(map[int]error),
	}
}

// markUnresolved records err for index i and zeroes its slot.
func (r *Result) markUnresolved(i int, err error) {
	r.Points[i] = Point{}
	r.Unresolved.Add(uint32(i))
	r.Errors[i] = err
}

// Len returns N.
func (r *Result) Len() int { return len(r.Points) }

// Resolved reports whether index i holds a placed point.
func (r *Result) Resolved(i int) bool {
	if i < 0 || i >= len(r.Points) {
		return false
	}

	return !r.Unresolved.Contains(uint32(i))
}

// Err returns the error recorded for index i, or nil when i was placed.
func (r *Result) Err(i int) error { return r.Errors[i] }

// Complete reports whether every index was placed.
func (r *Result) Complete() bool { return r.Unresolved.IsEmpty() }

// ResolvedIndices lists placed indices in ascending order.
func (r *Result) ResolvedIndices() []int {
	out := make([]int, 0, len(r.Points)-int(r.Unresolved.GetCardinality()))
	for i := range r.Points {
		if !r.Unresolved.Contains(uint32(i)) {
			out = append(out, i)
		}
	}

	return out
}

// UnresolvedIndices lists unresolved indices in ascending order.
func (r *Result) UnresolvedIndices() []int {
	return toInts(r.Unresolved)
}

func toInts(b *roaring.Bitmap) []int {
	out := make([]int, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// AmbiguousIndices lists placed indices whose side could not be told apart
// from its mirror image, in ascending order.
func (r *Result) AmbiguousIndices() []int {
	return toInts(r.Ambiguous)
}

// ResolvedPoints returns the placed points in ascending index order.
func (r *Result) ResolvedPoints() []Point {
	idx := r.ResolvedIndices()
	out := make([]Point, len(idx))
	for k, i := range idx {
		out[k] = r.Points[i]
	}

	return out
}
