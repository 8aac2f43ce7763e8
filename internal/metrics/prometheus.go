// Package metrics provides Prometheus metrics for reconstruction runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for reconstructions_total.
const (
	OutcomeComplete = "complete" // every index placed
	OutcomePartial  = "partial"  // some indices unresolved
	OutcomeFailed   = "failed"   // fatal error, no result
)

// Manager owns the collectors of one process.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         *prometheus.Registry

	reconstructions  *prometheus.CounterVec
	unresolvedPoints prometheus.Counter
	deviation        *prometheus.GaugeVec
	duration         prometheus.Histogram
	points           *prometheus.GaugeVec
}

// NewManager creates a Manager on a private registry unless one is supplied.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rebuildmap",
		histogramBuckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reconstructions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "reconstructions_total",
		Help:        "Reconstructions by outcome (complete, partial, failed)",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.unresolvedPoints = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "unresolved_points_total",
		Help:        "Indices that could not be placed",
		ConstLabels: m.constLabels,
	})

	m.deviation = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Name:        "deviation",
		Help:        "Mean absolute deviation of the latest reconstruction of each input",
		ConstLabels: m.constLabels,
	}, []string{"input"})

	m.duration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Name:        "reconstruct_seconds",
		Help:        "Wall time of reconstruction plus fidelity check",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.points = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Name:        "points",
		Help:        "Size N of the latest reconstructed matrix of each input",
		ConstLabels: m.constLabels,
	}, []string{"input"})
}

// Registry exposes the underlying registry (for HTTP exposition or tests).
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// Run summarizes one reconstruction for RecordRun.
type Run struct {
	Input      string // labels the per-input gauges
	Points     int
	Unresolved int
	Deviation  float64
	Elapsed    time.Duration
	Failed     bool
}

// Outcome classifies the run.
func (r Run) Outcome() string {
	switch {
	case r.Failed:
		return OutcomeFailed
	case r.Unresolved > 0:
		return OutcomePartial
	default:
		return OutcomeComplete
	}
}

// RecordRun updates every collector from r. Deviation is not recorded for failed runs.
func (m *Manager) RecordRun(r Run) {
	m.reconstructions.WithLabelValues(r.Outcome()).Inc()
	m.duration.Observe(r.Elapsed.Seconds())
	m.points.WithLabelValues(r.Input).Set(float64(r.Points))
	if r.Failed {
		return
	}
	m.unresolvedPoints.Add(float64(r.Unresolved))
	m.deviation.WithLabelValues(r.Input).Set(r.Deviation)
}

// WriteTextfile writes all metrics in the node_exporter textfile format.
func (m *Manager) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
