// Package rebuildmap is your toolkit for turning a table of pairwise
// distances back into a map of points in the plane.
//
// What is inside?
//
//	• Distance tables: validated, symmetric, zero-diagonal matrices
//	• Reconstruction: trilateration against three anchors with sign selection
//	• Fidelity: mean absolute deviation between input and rebuilt tables
//	• Test data: seeded uniform point sets, optionally in the canonical frame
//	• Storage: plain or compressed TSV on disk, in memory or in S3-compatible buckets
//	• Figures: scatter plots of original and reconstructed sets
//
// Everything is organized under these subpackages:
//
//	matrix/     dense float64 matrices, validators and element-wise statistics
//	distgeom/   DistanceMatrix, Reconstruct, Deviation and Rebuild
//	pointgen/   reproducible random point sets
//	matrixio/   TSV codec with gzip, zstd and lz4 framing
//	blobstore/  local, in-memory and MinIO blob stores
//	scatter/    gonum/plot rendering
//	cmd/rebuildmap the command-line front end
//
// Quick ASCII example:
//
//	    3───2
//	    │ 4 │      d(i,j) for all pairs  ──►  the same square,
//	    0───1                                 anchored at 0 with 1 on +x
//
// The reconstruction is unique up to a rigid motion, so results come back
// in the frame where index 0 is the origin, index 1 lies on the positive
// x-axis and index 2 lies in the upper half-plane.
//
//	go install github.com/katalvlaran/rebuildmap/cmd/rebuildmap@latest
package rebuildmap
