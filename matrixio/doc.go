// SPDX-License-Identifier: MIT

// Package matrixio persists distance matrices and point sets as text.
//
// Format: one matrix row per line, cells separated by a tab. Values are
// written with the shortest representation that parses back to the same
// float64, so a Write/Read round trip is exact. Readers accept any run of
// spaces or tabs as a separator and skip blank lines; an upper-triangular
// file (zeros below the diagonal) is accepted and mirrored.
//
// Files and blobs whose names end in .gz, .zst or .lz4 are transparently
// compressed with gzip, zstd or lz4 respectively.
package matrixio
