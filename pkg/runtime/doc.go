// Package runtime mounts component trees and keeps them up to date.
//
// Every component node in a rendered tree becomes an Instance with its own
// reactive.Owner, a child of the enclosing instance's owner. Rendering runs
// with the instance as both current owner and tracked listener, so signals
// read during render subscribe the instance and context lookups walk the
// component hierarchy.
//
// A Root is driven by one event loop:
//
//	root := runtime.New()
//	root.Mount(App())
//	html := render.RenderToString(root.Tree())
//
//	// for every client event
//	if err := root.Dispatch("h3", "click"); err != nil { ... }
//	html = render.RenderToString(root.Tree())
//
// When a parent re-renders, its child components are matched against the
// previous render by key, or by position when no key is set, and by component
// identity. Matched children keep their state and re-render; unmatched ones
// are disposed and new ones are mounted fresh.
//
// A Root is not safe for concurrent use.
package runtime
