// SPDX-License-Identifier: MIT

// Package distgeom: functional configuration for ingestion and reconstruction.
//
// A single epsilon drives every comparison in the package. By default it is
// RELATIVE to the magnitude of the input: with scale = largest distance,
// squared-distance comparisons use eps·scale² and linear ones use eps·scale.
// An all-zero (or non-finite) input falls back to scale = 1.
// WithAbsoluteTolerance switches both to the raw eps.
package distgeom

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative tolerance applied to squared distances.
	DefaultEpsilon = 1e-9

	// DefaultRelativeTolerance scales eps by the input magnitude.
	DefaultRelativeTolerance = true

	// DefaultFailFast keeps reconstructing after a per-index failure.
	DefaultFailFast = false
)

const panicEpsilonInvalid = "distgeom: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps          float64
	relative     bool
	failFast     bool
	onPlaced     func(i int, p Point)
	onUnresolved func(i int, err error)
	onAmbiguous  func(i int, p Point)
}

// Epsilon returns the resolved epsilon.
func (o Options) Epsilon() float64 { return o.eps }

// Relative reports whether eps is scaled by the input magnitude.
func (o Options) Relative() bool { return o.relative }

// FailFast reports whether reconstruction stops at the first per-index failure.
func (o Options) FailFast() bool { return o.failFast }

// WithEpsilon sets the tolerance used for every comparison.
// Panics with a stable message when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithAbsoluteTolerance uses eps verbatim, independent of input magnitude.
func WithAbsoluteTolerance() Option {
	return func(o *Options) { o.relative = false }
}

// WithRelativeTolerance scales eps by the largest input distance (the default).
func WithRelativeTolerance() Option {
	return func(o *Options) { o.relative = true }
}

// WithFailFast makes Reconstruct return on the first unresolved index instead
// of reporting every failing index.
func WithFailFast() Option {
	return func(o *Options) { o.failFast = true }
}

// WithOnPlaced registers a hook invoked once per placed index, in ascending
// index order. A nil hook is ignored.
func WithOnPlaced(fn func(i int, p Point)) Option {
	return func(o *Options) { o.onPlaced = fn }
}

// WithOnUnresolved registers a hook invoked once per unresolved index, with
// the *PointError describing it. A nil hook is ignored.
func WithOnUnresolved(fn func(i int, err error)) Option {
	return func(o *Options) { o.onUnresolved = fn }
}

// WithOnAmbiguous registers a hook invoked for a placed index whose mirror
// image across the x-axis matches its distances equally well, which happens
// when index 2 lies barely off the axis. p is the point that was kept.
// A nil hook is ignored.
func WithOnAmbiguous(fn func(i int, p Point)) Option {
	return func(o *Options) { o.onAmbiguous = fn }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		relative: DefaultRelativeTolerance,
		failFast: DefaultFailFast,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// tolerance holds the two derived thresholds for one input.
type tolerance struct {
	sq  float64 // for squared quantities (radicands, squared distances)
	lin float64 // for plain distances and coordinates
}

// toleranceFor derives thresholds for an input whose largest distance is maxDist.
func (o Options) toleranceFor(maxDist float64) tolerance {
	if !o.relative {
		return tolerance{sq: o.eps, lin: o.eps}
	}
	scale := 1.0
	if maxDist > 0 && !math.IsInf(maxDist, 0) {
		scale = maxDist
	}

	return tolerance{sq: o.eps * scale * scale, lin: o.eps * scale}
}
