// Package metrics exposes Prometheus instruments for the lookup path.
// All methods are nil-safe so callers can run without a registry, as
// tests do.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the counters and histograms recorded per lookup.
type Metrics struct {
	// LookupOutcome counts finished lookups by identifier kind and
	// outcome (ok, not_found, invalid, error, batch_too_large).
	LookupOutcome *prometheus.CounterVec
	// QueryLatency observes executor round-trip time by predicate mode.
	QueryLatency *prometheus.HistogramVec
	// IntegrityAnomalies counts unique lookups that matched more than
	// one row.
	IntegrityAnomalies *prometheus.CounterVec
}

// New registers the lookup instruments with the default registry.
// Call it once per process.
func New() *Metrics {
	return &Metrics{
		LookupOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "business_lookup_outcomes_total",
			Help: "Lookups by identifier kind and outcome.",
		}, []string{"kind", "outcome"}),
		QueryLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "business_query_duration_seconds",
			Help:    "Store round-trip latency by predicate mode.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"mode"}),
		IntegrityAnomalies: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "business_integrity_anomalies_total",
			Help: "Unique lookups that matched more than one row.",
		}, []string{"kind"}),
	}
}

// IncrementLookup records one finished lookup.
func (m *Metrics) IncrementLookup(kind, outcome string) {
	if m == nil || m.LookupOutcome == nil {
		return
	}
	m.LookupOutcome.WithLabelValues(kind, outcome).Inc()
}

// ObserveQueryLatency records one executor round trip.
func (m *Metrics) ObserveQueryLatency(mode string, seconds float64) {
	if m == nil || m.QueryLatency == nil {
		return
	}
	m.QueryLatency.WithLabelValues(mode).Observe(seconds)
}

// IncrementAnomaly records a unique lookup that matched multiple rows.
func (m *Metrics) IncrementAnomaly(kind string) {
	if m == nil || m.IntegrityAnomalies == nil {
		return
	}
	m.IntegrityAnomalies.WithLabelValues(kind).Inc()
}
