// Package config defines CLI configuration structures and loading hooks.
//
// Conventions:
// - New() returns a Config holding every default.
// - Load layers a YAML file and REBUILDMAP_* environment variables on top.
// - Validation errors wrap ErrInvalidConfig, loading errors wrap ErrLoadConfig.
package config

import (
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/rebuildmap/distgeom"
	"github.com/katalvlaran/rebuildmap/internal/logger"
	"github.com/katalvlaran/rebuildmap/pointgen"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Epsilon is the reconstruction tolerance.
	Epsilon float64 `koanf:"epsilon"`

	// AbsoluteTolerance disables scaling Epsilon by the largest distance.
	AbsoluteTolerance bool `koanf:"absolute_tolerance"`

	// FailFast stops a reconstruction at the first unresolved index.
	FailFast bool `koanf:"fail_fast"`

	// Points is the default set size for generate and demo.
	Points int `koanf:"points"`

	// Seed drives point generation; 0 selects the fixed default seed.
	Seed int64 `koanf:"seed"`

	// KeepOrientation seeds the canonical anchors into generated sets.
	KeepOrientation bool `koanf:"keep_orientation"`

	// RangeLo and RangeHi bound generated coordinates.
	RangeLo float64 `koanf:"range_lo"`
	RangeHi float64 `koanf:"range_hi"`

	// Workers bounds concurrent rebuilds of several inputs.
	Workers int `koanf:"workers"`

	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string `koanf:"metrics_file"`

	// PlotWidth and PlotHeight size rendered figures, in inches.
	PlotWidth  float64 `koanf:"plot_width"`
	PlotHeight float64 `koanf:"plot_height"`

	// Blob configures the optional S3-compatible store behind blob:// names.
	Blob Blob `koanf:"blob"`
}

// Blob holds MinIO/S3 connection settings.
type Blob struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	Prefix    string `koanf:"prefix"`
	Secure    bool   `koanf:"secure"`
}

// Enabled reports whether a blob store is configured.
func (b Blob) Enabled() bool { return b.Endpoint != "" && b.Bucket != "" }

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		Epsilon:    distgeom.DefaultEpsilon,
		Points:     50,
		RangeLo:    pointgen.DefaultLo,
		RangeHi:    pointgen.DefaultHi,
		Workers:    runtime.NumCPU(),
		PlotWidth:  12,
		PlotHeight: 6,
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon must be finite and non-negative, got %g", ErrInvalidConfig, c.Epsilon)
	}
	if c.Points < 3 {
		return fmt.Errorf("%w: points must be at least 3, got %d", ErrInvalidConfig, c.Points)
	}
	if math.IsNaN(c.RangeLo) || math.IsNaN(c.RangeHi) || math.IsInf(c.RangeLo, 0) ||
		math.IsInf(c.RangeHi, 0) || c.RangeLo >= c.RangeHi {
		return fmt.Errorf("%w: range_lo must be below range_hi", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if !(c.PlotWidth > 0) || !(c.PlotHeight > 0) {
		return fmt.Errorf("%w: plot size must be positive", ErrInvalidConfig)
	}
	if (c.Blob.Endpoint == "") != (c.Blob.Bucket == "") {
		return fmt.Errorf("%w: blob.endpoint and blob.bucket go together", ErrInvalidConfig)
	}
	return nil
}
