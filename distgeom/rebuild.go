// SPDX-License-Identifier: MIT

package distgeom

const methodRebuild = "Rebuild"

// Report bundles a reconstruction with its fidelity check.
type Report struct {
	Result    *Result
	Input     *DistanceMatrix // distances the reconstruction was derived from
	Rebuilt   *DistanceMatrix // distances recomputed from the resolved points
	Deviation float64         // Deviation(Input restricted to resolved indices, Rebuilt)
	Compared  int             // number of indices taking part in the comparison
}

// Rebuild reconstructs d, recomputes the distances of the result and
// compares them with d.
//
// When some indices are unresolved, both sides of the comparison are
// restricted to the resolved indices (in ascending order), so Rebuilt row r
// corresponds to Result.ResolvedIndices()[r]. The joined per-index error is
// returned together with the report in that case.
//
// Errors:
//   - every fatal error of Reconstruct, returned with a nil report.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func Rebuild(d *DistanceMatrix, opts ...Option) (*Report, error) {
	res, recErr := Reconstruct(d, opts...)
	if res == nil {
		return nil, recErr
	}

	input := d
	idx := res.ResolvedIndices()
	if !res.Complete() {
		sub, err := d.Induced(idx)
		if err != nil {
			return nil, distgeomErrorf(methodRebuild, err)
		}
		input = sub
	}

	rebuilt := ComputeDistances(res.ResolvedPoints())
	dev, err := Deviation(input, rebuilt)
	if err != nil {
		return nil, distgeomErrorf(methodRebuild, err)
	}

	return &Report{
		Result:    res,
		Input:     d,
		Rebuilt:   rebuilt,
		Deviation: dev,
		Compared:  len(idx),
	}, recErr
}

// RebuildPoints runs the full round trip for a known point set: distances,
// reconstruction and comparison.
func RebuildPoints(points []Point, opts ...Option) (*Report, error) {
	return Rebuild(ComputeDistances(points), opts...)
}
