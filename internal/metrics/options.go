package metrics

import "github.com/prometheus/client_golang/prometheus"

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace sets the metric namespace (default "rebuildmap").
func WithNamespace(namespace string) Option {
	return func(m *Manager) { m.namespace = namespace }
}

// WithHistogramBuckets overrides the duration histogram buckets (seconds).
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) { m.histogramBuckets = buckets }
}

// WithPrometheusRegistry registers collectors on registry instead of a fresh private one.
func WithPrometheusRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) { m.registry = registry }
}

// WithConstLabels attaches constant labels (e.g. run_id) to every collector.
func WithConstLabels(labels map[string]string) Option {
	return func(m *Manager) {
		m.constLabels = make(prometheus.Labels, len(labels))
		for k, v := range labels {
			m.constLabels[k] = v
		}
	}
}
