// Package reactive provides the reactive core that component trees are built on.
//
// An Owner is a scope in the component hierarchy. Owners carry context values
// that descendants can look up, hook slots that give component state a stable
// identity across renders, and cleanups that run when the scope is disposed.
//
// A Signal is a value container. Reading a Signal with Get while a Listener is
// being tracked subscribes that listener; writing the Signal marks every
// subscriber dirty. Batch defers those notifications until the outermost batch
// returns.
//
// A Context carries a typed value down an Owner chain:
//
//	var Theme = reactive.CreateContext("light")
//
//	// in a provider's render
//	Theme.Provide("dark")
//
//	// in a descendant's render
//	theme := Theme.Use()
//
// Tracking state (current owner, current listener, batch depth) is kept per
// goroutine. Everything rendered under one Owner tree is expected to run on a
// single goroutine, the session event loop.
package reactive
