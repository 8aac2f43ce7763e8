// SPDX-License-Identifier: MIT
// Package: rebuildmap/pointgen
//
// options.go: functional options for Uniform.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: WithSeed or WithRand. Without either, the fixed
//     default seed is used, so two unconfigured generators agree.

package pointgen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/rebuildmap/distgeom"
)

const (
	// DefaultLo and DefaultHi bound both coordinates: [DefaultLo, DefaultHi).
	DefaultLo = -100.0
	DefaultHi = 100.0

	// defaultRNGSeed is used when callers pass seed == 0 or no seed at all.
	defaultRNGSeed int64 = 1

	// maxRedrawsPerPoint bounds rejection sampling of duplicates.
	maxRedrawsPerPoint = 64
)

// OrientationAnchors are the canonical-frame anchors seeded by
// WithOrientationAnchors: a triangle whose reconstruction is itself.
var OrientationAnchors = [3]distgeom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 2}}

// Option customizes a Uniform generator.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	lo, hi  float64
	anchors []distgeom.Point
}

// WithSeed seeds a private *rand.Rand. seed == 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand supplies an explicit RNG. Panics on nil.
// The generator takes ownership: *rand.Rand is not goroutine-safe.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithRange bounds both coordinates to [lo, hi). Panics unless lo < hi and
// both are finite.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic("pointgen: WithRange requires finite lo < hi")
	}

	return func(c *config) { c.lo, c.hi = lo, hi }
}

// WithOrientationAnchors seeds OrientationAnchors as indices 0..2, so that
// a reconstruction keeps the original orientation.
func WithOrientationAnchors() Option {
	return func(c *config) { c.anchors = OrientationAnchors[:] }
}

// WithAnchors seeds custom points as the first indices of every set.
// Anchors are validated at generation time (ErrDuplicateAnchor).
func WithAnchors(anchors ...distgeom.Point) Option {
	cp := append([]distgeom.Point(nil), anchors...)

	return func(c *config) { c.anchors = cp }
}

func gatherOptions(opts ...Option) config {
	c := config{lo: DefaultLo, hi: DefaultHi}
	for _, set := range opts {
		if set != nil {
			set(&c)
		}
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 uses defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
