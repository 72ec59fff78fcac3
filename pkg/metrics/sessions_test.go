package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSessionsRecordEvents(t *testing.T) {
	s := NewSessions(WithRegistry(prometheus.NewRegistry()))

	s.SessionStarted()
	s.SessionStarted()
	s.SessionEnded()
	s.ObserveEvent("click", 2*time.Millisecond, "")
	s.ObserveEvent("click", time.Millisecond, "T301")
	s.WebSocketError("read")

	checks := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"sessions_active", s.active, 1},
		{"sessions_total", s.total, 2},
		{"events_total ok", s.events.WithLabelValues("click", "ok"), 1},
		{"events_total error", s.events.WithLabelValues("click", "error"), 1},
		{"event_errors_total", s.eventErrors.WithLabelValues("T301"), 1},
		{"websocket_errors_total", s.wsErrors.WithLabelValues("read"), 1},
	}
	for _, c := range checks {
		if got := testutil.ToFloat64(c.c); got != c.want {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}
	if n := testutil.CollectAndCount(s.eventDuration); n != 1 {
		t.Errorf("event_duration_seconds series = %d, want 1", n)
	}
}

func TestNilSessionsIsNoop(t *testing.T) {
	var s *Sessions
	s.SessionStarted()
	s.SessionEnded()
	s.ObserveEvent("click", time.Second, "T301")
	s.WebSocketError("write")
}
