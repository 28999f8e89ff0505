// Package metrics exposes Prometheus instruments for outbound Places calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PlacesMetrics records counts and latency for calls to the Places API.
type PlacesMetrics struct {
	duration *prometheus.HistogramVec
	calls    *prometheus.CounterVec
}

// NewPlacesMetrics registers the Places call metrics on the provided registerer.
func NewPlacesMetrics(reg prometheus.Registerer) *PlacesMetrics {
	if reg == nil {
		return &PlacesMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "places_request_duration_seconds",
		Help:    "Duration of Places API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "places_requests_total",
		Help: "Places API requests by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(duration, calls)
	return &PlacesMetrics{
		duration: duration,
		calls:    calls,
	}
}

// ObserveDuration records the latency for the named operation.
func (p *PlacesMetrics) ObserveDuration(operation string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (p *PlacesMetrics) IncSuccess(operation string) {
	if p == nil || p.calls == nil {
		return
	}
	p.calls.WithLabelValues(normalizeLabel(operation), "success").Inc()
}

// IncFailure increments the failure counter for the named operation.
func (p *PlacesMetrics) IncFailure(operation string) {
	if p == nil || p.calls == nil {
		return
	}
	p.calls.WithLabelValues(normalizeLabel(operation), "failure").Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
