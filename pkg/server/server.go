package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tally/internal/errors"
	"github.com/vango-dev/tally/pkg/metrics"
	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/render"
	"github.com/vango-dev/tally/pkg/runtime"
	"github.com/vango-dev/tally/pkg/vdom"
)

// TracerName is the instrumentation name of event spans.
const TracerName = "tally"

// AppFactory builds the root component for one page view or live session.
// It is called once per request, so every session gets its own state.
type AppFactory func() vdom.Component

// Server serves pages and live sessions.
type Server struct {
	config   *Config
	factory  AppFactory
	router   chi.Router
	upgrader websocket.Upgrader
	metrics  *metrics.Sessions
	tracer   trace.Tracer
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// Option customizes a Server.
type Option func(*Server)

// WithTracerProvider sets the provider of event spans. The global provider
// is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		if tp != nil {
			s.tracer = tp.Tracer(TracerName)
		}
	}
}

// New creates a server. Zero fields of config take their defaults.
func New(config *Config, factory AppFactory, opts ...Option) *Server {
	config = config.withDefaults()

	base := config.Logger
	if base == nil {
		base = slog.Default()
	}

	s := &Server{
		config:  config,
		factory: factory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
		tracer:   otel.Tracer(TracerName),
		logger:   base.With("component", "server"),
		sessions: make(map[string]*Session),
	}
	if config.Registry != nil {
		s.metrics = metrics.NewSessions(
			metrics.WithRegistry(config.Registry),
			metrics.WithNamespace(config.Namespace),
		)
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(traceRequests(s.tracer))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get(s.config.LivePath, s.handleLive)
	r.Get("/healthz", s.handleHealth)
	if s.config.Registry != nil {
		r.Method(http.MethodGet, s.config.MetricsPath,
			promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Config returns the effective configuration.
func (s *Server) Config() *Config {
	return s.config
}

// SessionCount returns the number of open live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// SessionIDs returns the IDs of open sessions, sorted.
func (s *Server) SessionIDs() []string {
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	sort.Strings(ids)
	return ids
}

func (s *Server) addSession(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
}

// CloseSessions closes every open session.
func (s *Server) CloseSessions() {
	s.mu.Lock()
	open := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()

	for _, sess := range open {
		sess.Close()
	}
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.New("T202").WithDetailf("listen on %s", s.config.Address).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled. Live sessions are closed first,
// then in-flight requests get ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("server listening", "address", ln.Addr().String())

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("T202").Wrap(err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "sessions", s.SessionCount())
	s.CloseSessions()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("T202").WithDetail("graceful shutdown timed out").Wrap(err)
	}
	<-errCh

	s.logger.Info("server stopped")
	return nil
}

// handlePage renders a fresh tree as a complete page wired to the live
// endpoint.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	defer reactive.Release()

	root := runtime.New(runtime.WithLogger(s.logger.With("component", "runtime")))
	root.Mount(s.factory())
	defer root.Unmount()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sr := render.NewStreamingRenderer(w, render.RendererConfig{})
	err := sr.RenderPage(render.Page{
		Title:   s.config.Title,
		Styles:  s.config.Styles,
		Body:    root.Tree(),
		LiveURL: s.config.LivePath,
	})
	if err != nil {
		s.logger.Error("page render failed",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
	}
}

// handleLive upgrades the request and runs a session until it closes.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written an error response.
		s.logger.Warn("websocket upgrade failed",
			"error", err,
			"remote", r.RemoteAddr,
			"origin", r.Header.Get("Origin"))
		s.metrics.WebSocketError("upgrade")
		return
	}

	sess := newSession(s, conn)
	s.addSession(sess)
	defer s.removeSession(sess)

	sess.run(r.Context())
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "ok",
		Sessions: s.SessionCount(),
	})
}
