// Package metrics exports counter scopes and live sessions to Prometheus.
//
// Observer implements counter.Observer:
//
//	obs := metrics.NewObserver(metrics.WithRegistry(reg))
//	clicks := counter.New(counter.WithName("clicks"), counter.WithObserver(obs))
//
// Metrics collected (namespace "tally" by default):
//   - tally_scopes_active{counter}: scopes currently mounted
//   - tally_scope_activations_total{counter}: scopes ever activated
//   - tally_add_calls_total{counter}: direct add calls
//   - tally_delta_sum{counter}: sum of directly added deltas
//   - tally_propagation_depth{counter}: scopes reached per add call
//
// Sessions records the live server's sessions and events:
//   - tally_sessions_active, tally_sessions_total
//   - tally_events_total{type,status}, tally_event_duration_seconds{type}
//   - tally_event_errors_total{code}, tally_websocket_errors_total{type}
//
// Each constructor registers its collectors, so build one of each per
// registry.
package metrics
