package distgeom_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rebuildmap/distgeom"
)

// ExampleReconstruct recovers a triangle that already sits in the canonical frame.
func ExampleReconstruct() {
	pts := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(3, 2)}
	res, err := distgeom.Reconstruct(distgeom.ComputeDistances(pts))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, p := range res.Points {
		fmt.Printf("%d: (%.3f, %.3f)\n", i, p.X, p.Y)
	}
	// Output:
	// 0: (0.000, 0.000)
	// 1: (4.000, 0.000)
	// 2: (3.000, 2.000)
}

// ExampleReconstruct_unresolved shows per-index reporting for a corrupted row.
func ExampleReconstruct_unresolved() {
	d, _ := distgeom.NewDistanceMatrix([][]float64{
		{0, 4, 5.656854249492381, 4, 2.23606797749979},
		{4, 0, 4, 5.656854249492381, 2.23606797749979},
		{5.656854249492381, 4, 0, 4, 10},
		{4, 5.656854249492381, 4, 0, 3.605551275463989},
		{2.23606797749979, 2.23606797749979, 10, 3.605551275463989, 0},
	})
	res, err := distgeom.Reconstruct(d)

	var pe *distgeom.PointError
	fmt.Println(errors.As(err, &pe), pe.Index, errors.Is(err, distgeom.ErrUnresolvedPoint))
	fmt.Println(res.Len(), res.ResolvedIndices())
	// Output:
	// true 4 true
	// 5 [0 1 2 3]
}

// ExampleRebuild runs the full round trip and reports the fidelity.
func ExampleRebuild() {
	pts := []distgeom.Point{distgeom.Pt(0, 0), distgeom.Pt(4, 0), distgeom.Pt(4, 4), distgeom.Pt(0, 4), distgeom.Pt(2, 1)}
	rep, err := distgeom.Rebuild(distgeom.ComputeDistances(pts))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("compared=%d deviation<1e-9: %v\n", rep.Compared, rep.Deviation < 1e-9)
	// Output:
	// compared=5 deviation<1e-9: true
}
