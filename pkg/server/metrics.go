package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// namespace prefixes every metric this server exports.
const namespace = "ecolab"

// Metrics aggregates the server's Prometheus collectors.
type Metrics struct {
	SessionsActive  prometheus.Gauge
	SessionsTotal   prometheus.Counter
	EventsTotal     *prometheus.CounterVec
	EventDuration   *prometheus.HistogramVec
	RecomputesTotal *prometheus.CounterVec
	SceneBytes      prometheus.Counter
	WSErrors        *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of active WebSocket sessions",
		}),

		SessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Total number of sessions created",
		}),

		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Parameter-change events by app and outcome",
		}, []string{"app", "status"}),

		EventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_duration_seconds",
			Help:      "Event handling duration, recompute and render included",
			Buckets:   prometheus.DefBuckets,
		}, []string{"app"}),

		RecomputesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputes_total",
			Help:      "Derivation-node recomputations by app and node",
		}, []string{"app", "node"}),

		SceneBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scene_bytes_total",
			Help:      "Total bytes of scene frames written to clients",
		}),

		WSErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "websocket_errors_total",
			Help:      "WebSocket errors by type",
		}, []string{"type"}),
	}
}
