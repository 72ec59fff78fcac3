package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SessionConfig configures individual live sessions.
type SessionConfig struct {
	// ReadTimeout is how long the server waits for any frame (including
	// pongs) before closing the connection.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout bounds a single frame write.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// PingInterval is the heartbeat period. Must be shorter than ReadTimeout.
	// Default: 25 seconds.
	PingInterval time.Duration

	// MaxMessageSize is the largest inbound frame accepted.
	// Default: 4KB.
	MaxMessageSize int64

	// MaxEventQueue is the number of events buffered before new ones are
	// rejected with a T303 error frame.
	// Default: 64.
	MaxEventQueue int

	// SendBuffer is the number of outbound frames buffered for the writer.
	// Default: 16.
	SendBuffer int
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   10 * time.Second,
		PingInterval:   25 * time.Second,
		MaxMessageSize: 4 * 1024,
		MaxEventQueue:  64,
		SendBuffer:     16,
	}
}

// Config configures the HTTP server.
type Config struct {
	// Address is the TCP address to listen on.
	// Default: "localhost:8080".
	Address string

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout is how long ListenAndServe waits for in-flight
	// requests after its context is cancelled.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// Title is the page title.
	Title string

	// Styles are inline CSS blocks added to every page.
	Styles []string

	// LivePath is the WebSocket route.
	// Default: "/live".
	LivePath string

	// MetricsPath is where Registry is exposed.
	// Default: "/metrics".
	MetricsPath string

	// Registry collects session metrics and is served on MetricsPath.
	// Nil disables both.
	Registry *prometheus.Registry

	// Namespace prefixes session metric names.
	// Default: "tally".
	Namespace string

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// Session configures live sessions.
	Session SessionConfig

	// Logger is the base logger. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           "localhost:8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		Title:             "tally",
		LivePath:          "/live",
		MetricsPath:       "/metrics",
		Namespace:         "tally",
		CheckOrigin:       SameOriginCheck,
		Session:           DefaultSessionConfig(),
	}
}

// withDefaults returns a copy of c with zero fields filled in.
func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	cfg := *c
	if cfg.Address == "" {
		cfg.Address = d.Address
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = d.ShutdownTimeout
	}
	if cfg.LivePath == "" {
		cfg.LivePath = d.LivePath
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = d.MetricsPath
	}
	if cfg.Namespace == "" {
		cfg.Namespace = d.Namespace
	}
	if cfg.CheckOrigin == nil {
		cfg.CheckOrigin = d.CheckOrigin
	}

	s := &cfg.Session
	ds := d.Session
	if s.ReadTimeout <= 0 {
		s.ReadTimeout = ds.ReadTimeout
	}
	if s.WriteTimeout <= 0 {
		s.WriteTimeout = ds.WriteTimeout
	}
	if s.PingInterval <= 0 || s.PingInterval >= s.ReadTimeout {
		s.PingInterval = s.ReadTimeout * 5 / 12
	}
	if s.MaxMessageSize <= 0 {
		s.MaxMessageSize = ds.MaxMessageSize
	}
	if s.MaxEventQueue <= 0 {
		s.MaxEventQueue = ds.MaxEventQueue
	}
	if s.SendBuffer <= 0 {
		s.SendBuffer = ds.SendBuffer
	}
	return &cfg
}

// SameOriginCheck accepts WebSocket upgrades whose Origin host matches the
// request host, and requests without an Origin header.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}
