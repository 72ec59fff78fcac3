// Package render turns composed VNode trees into HTML.
//
// Text and attribute values are escaped, attributes are written in sorted
// order, and elements carrying a hydration ID get a data-hid attribute plus a
// data-on-<event> marker per handler so the live client can route events back
// to the server.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(root.Tree())
//
// RenderPage wraps a tree in a complete document and, when LiveURL is set,
// appends the client script that keeps the page in sync over a WebSocket.
package render
