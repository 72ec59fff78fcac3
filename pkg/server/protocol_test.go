package server

import (
	stderrors "errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/tally/internal/errors"
	"github.com/vango-dev/tally/pkg/runtime"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Event
		code string
	}{
		{"click", `{"type":"click","hid":"h3"}`, Event{Type: "click", HID: "h3"}, ""},
		{"type is case-insensitive", `{"type":"CLICK","hid":"h1"}`, Event{Type: "click", HID: "h1"}, ""},
		{"extra fields ignored", `{"type":"click","hid":"h2","x":1}`, Event{Type: "click", HID: "h2"}, ""},
		{"garbage", `{`, Event{}, "T301"},
		{"missing hid", `{"type":"click"}`, Event{}, "T301"},
		{"unknown type", `{"type":"submit","hid":"h1"}`, Event{}, "T302"},
		{"missing type", `{"hid":"h1"}`, Event{}, "T302"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEvent([]byte(tt.data))
			if code := errors.CodeOf(err); code != tt.code {
				t.Fatalf("code = %q, want %q (err %v)", code, tt.code, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Event{}, "Received")); diff != "" {
				t.Errorf("event (-want +got):\n%s", diff)
			}
			if err == nil && got.Received.IsZero() {
				t.Error("Received not set")
			}
		})
	}
}

func TestErrorFrame(t *testing.T) {
	f := errorFrame(errors.New("T304").Wrap(runtime.ErrHandlerNotFound), "T301")
	want := ServerFrame{
		Type:    FrameError,
		Code:    "T304",
		Message: "Handler not found",
		Detail:  "No handler is bound to the hydration ID. The client is probably rendering a stale tree.",
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("frame (-want +got):\n%s", diff)
	}

	// A plain error takes the fallback code.
	f = errorFrame(stderrors.New("boom"), "T403")
	if f.Code != "T403" || f.Message != "Render failed" {
		t.Errorf("fallback frame = %+v", f)
	}
}

func TestDispatchCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{runtime.ErrHandlerNotFound, "T304"},
		{&runtime.HandlerPanicError{HID: "h1", Event: "click", Value: "boom"}, "T401"},
		{runtime.ErrUnmounted, "T402"},
	}
	for _, tt := range tests {
		if got := dispatchCode(tt.err); got != tt.want {
			t.Errorf("dispatchCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestQueueEvent(t *testing.T) {
	sess := &Session{
		events: make(chan Event, 1),
		done:   make(chan struct{}),
	}

	if err := sess.QueueEvent(Event{Type: "click", HID: "h1"}); err != nil {
		t.Fatalf("first event: %v", err)
	}
	if err := sess.QueueEvent(Event{Type: "click", HID: "h2"}); !stderrors.Is(err, ErrEventQueueFull) {
		t.Errorf("full queue: %v, want ErrEventQueueFull", err)
	}

	sess.closed.Store(true)
	if err := sess.QueueEvent(Event{Type: "click", HID: "h3"}); !stderrors.Is(err, ErrSessionClosed) {
		t.Errorf("closed session: %v, want ErrSessionClosed", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	var nilConfig *Config
	got := nilConfig.withDefaults()
	if got.Address != "localhost:8080" || got.LivePath != "/live" || got.CheckOrigin == nil {
		t.Errorf("defaults = %+v", got)
	}

	partial := &Config{
		Address: ":9000",
		Session: SessionConfig{ReadTimeout: 12 * time.Second, PingInterval: time.Minute},
	}
	got = partial.withDefaults()
	if got.Address != ":9000" {
		t.Errorf("Address = %q", got.Address)
	}
	if got.Session.PingInterval != 5*time.Second {
		t.Errorf("PingInterval = %v, want it below ReadTimeout", got.Session.PingInterval)
	}
	if got.Session.MaxEventQueue != DefaultSessionConfig().MaxEventQueue {
		t.Errorf("MaxEventQueue = %d", got.Session.MaxEventQueue)
	}
	if partial.LivePath != "" {
		t.Error("withDefaults modified its receiver")
	}
}

func TestSameOriginCheck(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"no origin", "", true},
		{"same host", "http://example.com", true},
		{"other host", "http://evil.example", false},
		{"other port", "http://example.com:8081", false},
		{"unparseable", "://bad", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "http://example.com/live", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := SameOriginCheck(r); got != tt.want {
				t.Errorf("SameOriginCheck(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}
