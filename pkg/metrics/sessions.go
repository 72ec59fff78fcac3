package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sessions records live sessions and the events they process. A nil
// *Sessions records nothing.
type Sessions struct {
	active        prometheus.Gauge
	total         prometheus.Counter
	events        *prometheus.CounterVec
	eventDuration *prometheus.HistogramVec
	eventErrors   *prometheus.CounterVec
	wsErrors      *prometheus.CounterVec
}

// NewSessions creates session metrics and registers their collectors.
func NewSessions(opts ...Option) *Sessions {
	config := newConfig(opts)
	factory := promauto.With(config.Registry)

	return &Sessions{
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sessions_active",
			Help:        "Number of connected live sessions",
			ConstLabels: config.ConstLabels,
		}),

		total: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sessions_total",
			Help:        "Total number of live sessions started",
			ConstLabels: config.ConstLabels,
		}),

		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of client events processed",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event processing duration in seconds, render included",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"type"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_errors_total",
			Help:        "Total number of failed events by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// SessionStarted records a new session.
func (s *Sessions) SessionStarted() {
	if s == nil {
		return
	}
	s.active.Inc()
	s.total.Inc()
}

// SessionEnded records a closed session.
func (s *Sessions) SessionEnded() {
	if s == nil {
		return
	}
	s.active.Dec()
}

// ObserveEvent records one processed event. An empty code means success.
func (s *Sessions) ObserveEvent(eventType string, d time.Duration, code string) {
	if s == nil {
		return
	}
	status := "ok"
	if code != "" {
		status = "error"
		s.eventErrors.WithLabelValues(code).Inc()
	}
	s.events.WithLabelValues(eventType, status).Inc()
	s.eventDuration.WithLabelValues(eventType).Observe(d.Seconds())
}

// WebSocketError records a transport error, e.g. "read" or "write".
func (s *Sessions) WebSocketError(kind string) {
	if s == nil {
		return
	}
	s.wsErrors.WithLabelValues(kind).Inc()
}
