// Package server serves a tally component tree over HTTP and keeps it live
// over WebSocket.
//
// # Routes
//
//   - GET /         renders a fresh tree as a complete HTML page
//   - GET /live     upgrades to a WebSocket live session
//   - GET /metrics  Prometheus metrics, when a registry is configured
//   - GET /healthz  liveness and the number of open sessions
//
// # Sessions
//
// Each WebSocket connection is a Session with its own runtime.Root. The
// session runs three goroutines:
//   - read loop: decodes client frames and queues events
//   - event loop: the only goroutine touching the Root; dispatches events,
//     flushes and sends the re-rendered tree
//   - write loop: serializes outbound frames and sends heartbeat pings
//
// # Protocol
//
// Frames are JSON text messages. The client sends
//
//	{"type":"click","hid":"h3"}
//
// and the server answers with
//
//	{"type":"render","seq":2,"html":"<div>...</div>"}
//	{"type":"error","code":"T304","message":"Handler not found"}
//
// Every event runs inside an OpenTelemetry span named "tally.event".
//
// # Example
//
//	srv := server.New(server.DefaultConfig(), func() vdom.Component {
//	    return demo.NewApp(demo.Options{Depth: 3}).Component()
//	})
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
