// Package metrics provides Prometheus collectors for the gateway.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the gateway collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	normalizeResults *prometheus.CounterVec
	preferenceWrites *prometheus.CounterVec
	sessionsActive   prometheus.Gauge
}

// New creates and registers all collectors.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Total number of weather provider requests",
		},
		[]string{"endpoint", "outcome"},
	)

	m.upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "weather_upstream_duration_seconds",
			Help: "Time taken by weather provider requests, retries included",
			// 50ms to ~25s
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"endpoint"},
	)

	m.normalizeResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_normalize_results_total",
			Help: "Provider documents normalized, by result",
		},
		[]string{"result"},
	)

	m.preferenceWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_preference_writes_total",
			Help: "Preference update requests, by kind and result",
		},
		[]string{"kind", "result"},
	)

	m.sessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "weather_sessions_active",
		Help: "Sessions held in the store after the last sweep",
	})

	for _, c := range []prometheus.Collector{
		m.upstreamRequests,
		m.upstreamDuration,
		m.normalizeResults,
		m.preferenceWrites,
		m.sessionsActive,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveUpstream records one provider call.
func (m *Metrics) ObserveUpstream(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// CountNormalize records a normalization result ("ok", "missing_location", ...).
func (m *Metrics) CountNormalize(result string) {
	if m == nil {
		return
	}
	m.normalizeResults.WithLabelValues(result).Inc()
}

// CountPreferenceWrite records a set-location or set-units request.
func (m *Metrics) CountPreferenceWrite(kind, result string) {
	if m == nil {
		return
	}
	m.preferenceWrites.WithLabelValues(kind, result).Inc()
}

// SetActiveSessions publishes the live session count.
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(float64(n))
}
