package server

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tally/internal/errors"
	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/render"
	"github.com/vango-dev/tally/pkg/runtime"
)

// Session is one live WebSocket connection and the component tree it drives.
type Session struct {
	// ID is a random UUID.
	ID string

	// CreatedAt is when the connection was upgraded.
	CreatedAt time.Time

	server *Server
	conn   *websocket.Conn
	config SessionConfig
	logger *slog.Logger

	events chan Event
	send   chan ServerFrame
	done   chan struct{}
	closed atomic.Bool
	wg     sync.WaitGroup

	// Owned by the event loop.
	renderer *render.Renderer
	seq      uint64

	eventCount atomic.Int64
}

func newSession(s *Server, conn *websocket.Conn) *Session {
	id := uuid.NewString()
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		server:    s,
		conn:      conn,
		config:    s.config.Session,
		logger:    s.logger.With("session_id", id),
		events:    make(chan Event, s.config.Session.MaxEventQueue),
		send:      make(chan ServerFrame, s.config.Session.SendBuffer),
		done:      make(chan struct{}),
		renderer:  render.NewRenderer(render.RendererConfig{}),
	}
}

// EventCount returns the number of events processed so far.
func (sess *Session) EventCount() int64 {
	return sess.eventCount.Load()
}

// IsClosed reports whether Close has been called.
func (sess *Session) IsClosed() bool {
	return sess.closed.Load()
}

// Done is closed when the session closes.
func (sess *Session) Done() <-chan struct{} {
	return sess.done
}

// QueueEvent hands an event to the event loop without blocking.
func (sess *Session) QueueEvent(e Event) error {
	if sess.closed.Load() {
		return errors.New("T402")
	}
	select {
	case sess.events <- e:
		return nil
	default:
		return errors.New("T303").WithDetailf("queue holds %d events", cap(sess.events))
	}
}

// Close sends a close frame and closes the connection. It is safe to call
// more than once and from any goroutine.
func (sess *Session) Close() {
	if sess.closed.Swap(true) {
		return
	}
	close(sess.done)

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = sess.conn.WriteControl(websocket.CloseMessage, msg, deadline)
	_ = sess.conn.Close()
}

// run drives the session until the connection closes and every session
// goroutine has returned.
func (sess *Session) run(ctx context.Context) {
	sess.logger.Info("session started", "remote", sess.conn.RemoteAddr().String())
	sess.server.metrics.SessionStarted()

	sess.wg.Add(2)
	go sess.eventLoop(ctx)
	go sess.writeLoop()

	sess.readLoop()
	sess.Close()
	sess.wg.Wait()

	sess.server.metrics.SessionEnded()
	sess.logger.Info("session closed",
		"events", sess.eventCount.Load(),
		"duration", time.Since(sess.CreatedAt))
}

func (sess *Session) readLoop() {
	conn := sess.conn
	conn.SetReadLimit(sess.config.MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(sess.config.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(sess.config.ReadTimeout))
	})

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if !sess.closed.Load() && websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				sess.logger.Warn("read failed", "error", err)
				sess.server.metrics.WebSocketError("read")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(sess.config.ReadTimeout))

		if msgType != websocket.TextMessage {
			sess.reject(errors.New("T301").WithDetail("binary frames are not supported"))
			continue
		}

		event, err := DecodeEvent(data)
		if err != nil {
			sess.reject(err)
			continue
		}
		if err := sess.QueueEvent(event); err != nil {
			sess.reject(err)
		}
	}
}

// reject reports a frame that never reached the event loop.
func (sess *Session) reject(err error) {
	code := errors.CodeOf(err)
	sess.logger.Debug("frame rejected", "code", code, "error", err)
	sess.server.metrics.ObserveEvent("rejected", 0, code)
	sess.sendFrame(errorFrame(err, "T301"))
}

func (sess *Session) eventLoop(ctx context.Context) {
	defer sess.wg.Done()
	defer reactive.Release()

	root := runtime.New(runtime.WithLogger(sess.logger.With("component", "runtime")))
	root.Mount(sess.server.factory())
	defer root.Unmount()

	if err := sess.sendRender(root); err != nil {
		sess.logger.Error("initial render failed", "error", err)
		sess.sendFrame(errorFrame(err, "T403"))
	}

	for {
		select {
		case <-sess.done:
			return
		case event := <-sess.events:
			sess.handleEvent(ctx, root, event)
		}
	}
}

// handleEvent dispatches one event, then sends the re-rendered tree. Errors
// are reported to the client and recorded on the event span.
func (sess *Session) handleEvent(ctx context.Context, root *runtime.Root, event Event) {
	_, span := sess.server.tracer.Start(ctx, "tally.event",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("tally.session_id", sess.ID),
			attribute.String("tally.hid", event.HID),
			attribute.String("tally.event_type", event.Type),
		),
	)
	defer span.End()

	start := time.Now()
	sess.eventCount.Add(1)

	before := root.Stats().Renders
	err := root.Dispatch(event.HID, event.Type)
	code := dispatchCode(err)
	if err != nil {
		err = errors.New(code).Wrap(err)
		sess.logger.Debug("event failed", "hid", event.HID, "code", code, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		sess.sendFrame(errorFrame(err, code))
	}

	if code != "T402" {
		if rerr := sess.sendRender(root); rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
			sess.sendFrame(errorFrame(rerr, "T403"))
			code = "T403"
		}
	}
	if code == "" {
		span.SetStatus(codes.Ok, "")
	}

	span.SetAttributes(attribute.Int("tally.renders", root.Stats().Renders-before))
	sess.server.metrics.ObserveEvent(event.Type, time.Since(start), code)
}

func (sess *Session) sendRender(root *runtime.Root) error {
	html, err := sess.renderer.RenderToString(root.Tree())
	if err != nil {
		return errors.New("T403").Wrap(err)
	}
	sess.seq++
	sess.sendFrame(renderFrame(sess.seq, html))
	return nil
}

// sendFrame queues a frame for the write loop. It gives up once the session
// is closed.
func (sess *Session) sendFrame(f ServerFrame) {
	select {
	case sess.send <- f:
	case <-sess.done:
	}
}

func (sess *Session) writeLoop() {
	defer sess.wg.Done()

	ticker := time.NewTicker(sess.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sess.done:
			return

		case f := <-sess.send:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(sess.config.WriteTimeout))
			if err := sess.conn.WriteJSON(f); err != nil {
				if !sess.closed.Load() {
					sess.logger.Debug("write failed", "error", err)
					sess.server.metrics.WebSocketError("write")
				}
				sess.Close()
				return
			}

		case <-ticker.C:
			deadline := time.Now().Add(sess.config.WriteTimeout)
			if err := sess.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				if !sess.closed.Load() {
					sess.logger.Debug("ping failed", "error", err)
					sess.server.metrics.WebSocketError("ping")
				}
				sess.Close()
				return
			}
		}
	}
}
