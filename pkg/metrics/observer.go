package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/tally/pkg/counter"
)

// DefaultCounterLabel labels counters created without counter.WithName.
const DefaultCounterLabel = "default"

// depthBuckets cover nesting up to ten scopes deep.
var depthBuckets = prometheus.LinearBuckets(1, 1, 10)

// Observer records counter scope events. It is safe for concurrent use by
// counters on different sessions.
type Observer struct {
	scopesActive *prometheus.GaugeVec
	activations  *prometheus.CounterVec
	addCalls     *prometheus.CounterVec
	deltaSum     *prometheus.GaugeVec
	depth        *prometheus.HistogramVec
}

var _ counter.Observer = (*Observer)(nil)

// NewObserver creates an Observer and registers its collectors.
func NewObserver(opts ...Option) *Observer {
	config := newConfig(opts)
	factory := promauto.With(config.Registry)
	labels := []string{"counter"}

	return &Observer{
		scopesActive: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scopes_active",
			Help:        "Number of counter scopes currently mounted",
			ConstLabels: config.ConstLabels,
		}, labels),

		activations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scope_activations_total",
			Help:        "Total number of counter scopes activated",
			ConstLabels: config.ConstLabels,
		}, labels),

		addCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "add_calls_total",
			Help:        "Total number of add calls made on counter scopes",
			ConstLabels: config.ConstLabels,
		}, labels),

		deltaSum: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "delta_sum",
			Help:        "Sum of deltas passed to add calls",
			ConstLabels: config.ConstLabels,
		}, labels),

		depth: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "propagation_depth",
			Help:        "Number of scopes an add call reached",
			ConstLabels: config.ConstLabels,
			Buckets:     depthBuckets,
		}, labels),
	}
}

func counterLabel(name string) string {
	if name == "" {
		return DefaultCounterLabel
	}
	return name
}

// ScopeActivated implements counter.Observer.
func (o *Observer) ScopeActivated(s counter.ScopeInfo) {
	label := counterLabel(s.Counter)
	o.scopesActive.WithLabelValues(label).Inc()
	o.activations.WithLabelValues(label).Inc()
}

// ScopeAdded implements counter.Observer. Only the scope add was called on
// is recorded; propagated deltas are implied by the depth.
func (o *Observer) ScopeAdded(e counter.AddEvent) {
	if !e.Direct {
		return
	}
	label := counterLabel(e.Scope.Counter)
	o.addCalls.WithLabelValues(label).Inc()
	o.deltaSum.WithLabelValues(label).Add(float64(e.Delta))
	o.depth.WithLabelValues(label).Observe(float64(e.Scope.Depth))
}

// ScopeDeactivated implements counter.Observer.
func (o *Observer) ScopeDeactivated(s counter.ScopeInfo) {
	o.scopesActive.WithLabelValues(counterLabel(s.Counter)).Dec()
}
