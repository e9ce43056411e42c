package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	providerFetchTotal    *prometheus.CounterVec
	providerFetchDuration *prometheus.HistogramVec
	providerFailures      *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	snapshotsBuilt        prometheus.Counter
	snapshotDuration      prometheus.Histogram
	connectedProviders    *prometheus.GaugeVec
	optimizationsFound    prometheus.Counter
	assistantRequests     *prometheus.CounterVec
	assistantDuration     prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		providerFetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_fetch_total",
				Help: "Total number of provider fetch calls",
			},
			[]string{"provider", "capability", "status"},
		),
		providerFetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_fetch_duration_milliseconds",
				Help:    "Provider fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"provider"},
		),
		providerFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_failures_total",
				Help: "Total number of provider calls that ended unavailable",
			},
			[]string{"provider", "reason"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"provider"},
		),
		snapshotsBuilt: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "snapshots_built_total",
				Help: "Total number of aggregated snapshots built",
			},
		),
		snapshotDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "snapshot_build_duration_milliseconds",
				Help:    "Snapshot fan-out and merge duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		connectedProviders: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "connected_providers",
				Help: "Number of active connections per provider type",
			},
			[]string{"provider"},
		),
		optimizationsFound: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "optimization_suggestions_total",
				Help: "Total number of optimization suggestions produced",
			},
		),
		assistantRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assistant_requests_total",
				Help: "Total number of assistant questions answered",
			},
			[]string{"status"},
		),
		assistantDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assistant_request_duration_seconds",
				Help:    "Assistant round-trip duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	provider := tags["provider"]
	capability := tags["capability"]
	status := tags["status"]

	switch name {
	case "provider.fetch":
		m.providerFetchTotal.WithLabelValues(provider, capability, status).Inc()
	case "provider.unavailable":
		m.providerFailures.WithLabelValues(provider, tags["reason"]).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(provider).Set(1)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(provider).Set(0)
	case "snapshot.built":
		m.snapshotsBuilt.Inc()
	case "optimization.suggested":
		m.optimizationsFound.Inc()
	case "assistant.request":
		if status != "" {
			m.assistantRequests.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "snapshot.build":
		m.snapshotDuration.Observe(float64(duration.Milliseconds()))
	case "assistant.request":
		m.assistantDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "connections.active":
		if provider := tags["provider"]; provider != "" {
			m.connectedProviders.WithLabelValues(provider).Set(value)
		}
	}
}

// RecordProviderFetch is the hot-path helper the aggregator uses instead of
// the generic name-switch entry points.
func (m *PrometheusMetrics) RecordProviderFetch(provider, capability string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	m.providerFetchTotal.WithLabelValues(provider, capability, status).Inc()
	m.providerFetchDuration.WithLabelValues(provider).Observe(float64(duration.Milliseconds()))
}
