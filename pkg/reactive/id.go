package reactive

import "sync/atomic"

var idCounter atomic.Uint64

// nextID returns a process-unique identifier for owners, signals and listeners.
func nextID() uint64 {
	return idCounter.Add(1)
}

// NextID returns a process-unique identifier. Listener implementations outside
// this package use it so their IDs never collide with owners or signals.
func NextID() uint64 {
	return nextID()
}
