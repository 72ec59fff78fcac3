package reactive

// Listener is notified when a value it read has changed.
type Listener interface {
	// ID uniquely identifies the listener. Subscriptions are deduplicated by ID.
	ID() uint64

	// MarkDirty is called when a source of the listener changed.
	MarkDirty()
}

// Source is a value a Listener can be subscribed to.
type Source interface {
	Unsubscribe(l Listener)
}

// SourceTracker is implemented by listeners that record the sources they
// subscribed to, so they can drop stale subscriptions before re-running.
type SourceTracker interface {
	Listener
	AddSource(s Source)
}

// funcListener adapts a plain callback to Listener.
type funcListener struct {
	id uint64
	fn func()
}

func (f *funcListener) ID() uint64 { return f.id }

func (f *funcListener) MarkDirty() { f.fn() }
