// Package obs provides Prometheus metrics and read-only diagnostics for a
// validated container, grounded on the teacher's internal/obs/metrics.go
// (promauto counters/histograms) and internal/obs/health.go (a trimmed,
// read-only health snapshot rather than a pollable checker with retries —
// spec.md §7 forbids automatic retries here).
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms exposed by a reading process.
type Metrics struct {
	ValidationsOK       prometheus.Counter
	ValidationsRejected *prometheus.CounterVec
	ValidationLatency   prometheus.Histogram
	ReaderGets          prometheus.Counter
	ReaderVisits        prometheus.Counter
	DomNodesLoaded      prometheus.Counter
}

// NewMetrics registers and returns a fresh Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		ValidationsOK: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ifc_validations_ok_total",
			Help: "Total containers that reached State::Validated",
		}),
		ValidationsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ifc_validations_rejected_total",
			Help: "Total containers rejected, labeled by error kind",
		}, []string{"kind"}),
		ValidationLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ifc_validation_latency_seconds",
			Help:    "Time spent in container.Open",
			Buckets: prometheus.DefBuckets,
		}),
		ReaderGets: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ifc_reader_get_total",
			Help: "Total Reader.GetX entity lookups",
		}),
		ReaderVisits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ifc_reader_visit_total",
			Help: "Total Reader.VisitX dispatches",
		}),
		DomNodesLoaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ifc_dom_nodes_loaded_total",
			Help: "Total DOM nodes materialized by Loader.Get",
		}),
	}
}

// RejectedKind increments ValidationsRejected for the given error kind name;
// a no-op on a nil Metrics so callers can wire it unconditionally.
func (m *Metrics) RejectedKind(kind string) {
	if m == nil {
		return
	}
	m.ValidationsRejected.WithLabelValues(kind).Inc()
}

// Ok increments ValidationsOK; a no-op on a nil Metrics.
func (m *Metrics) Ok() {
	if m == nil {
		return
	}
	m.ValidationsOK.Inc()
}

// ObserveValidationLatency records how long one Open/validate call took; a
// no-op on a nil Metrics.
func (m *Metrics) ObserveValidationLatency(seconds float64) {
	if m == nil {
		return
	}
	m.ValidationLatency.Observe(seconds)
}

// IncReaderGet increments ReaderGets; a no-op on a nil Metrics. Called from
// every Reader.GetX/TryGetX entity lookup.
func (m *Metrics) IncReaderGet() {
	if m == nil {
		return
	}
	m.ReaderGets.Inc()
}

// IncReaderVisit increments ReaderVisits; a no-op on a nil Metrics. Called
// from every Reader.VisitXWithIndex dispatch.
func (m *Metrics) IncReaderVisit() {
	if m == nil {
		return
	}
	m.ReaderVisits.Inc()
}

// IncDomNodeLoaded increments DomNodesLoaded; a no-op on a nil Metrics.
// Called once per distinct NodeKey the DOM loader materializes.
func (m *Metrics) IncDomNodeLoaded() {
	if m == nil {
		return
	}
	m.DomNodesLoaded.Inc()
}
