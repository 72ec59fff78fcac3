package reactive

import (
	"reflect"
	"sync"
)

// signalBase holds the type-erased subscriber list shared by every Signal[T].
type signalBase struct {
	id uint64

	subs  []Listener
	subMu sync.RWMutex
}

// subscribe adds a listener, deduplicated by ID.
func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

// unsubscribe removes a listener. Subscription order is preserved so that
// notifications keep firing in subscription order.
func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// subscriberCount returns the number of current subscribers.
func (s *signalBase) subscriberCount() int {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	return len(s.subs)
}

// notifySubscribers marks every subscriber dirty, or queues them when a batch
// is open. The list is copied first so listeners may (un)subscribe while
// being notified.
func (s *signalBase) notifySubscribers() {
	s.subMu.RLock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	if getBatchDepth() > 0 {
		for _, sub := range subs {
			queuePendingUpdate(sub)
		}
		return
	}

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// Signal is a reactive value container.
// Reading it with Get while a listener is tracked subscribes that listener to
// future changes.
type Signal[T any] struct {
	base signalBase

	value T
	mu    sync.RWMutex

	// equal decides whether a write changed the value. nil uses defaultEquals.
	equal func(T, T) bool
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		base:  signalBase{id: nextID()},
		value: initial,
	}
}

// UseSignal returns a signal whose identity is stable across renders of the
// current owner. The first render creates it with initial; later renders get
// the same signal back. Outside a render it behaves like NewSignal.
func UseSignal[T any](initial T) *Signal[T] {
	owner := getCurrentOwner()
	if owner == nil {
		return NewSignal(initial)
	}
	if slot := owner.UseHookSlot(); slot != nil {
		if s, ok := slot.(*Signal[T]); ok {
			return s
		}
	}
	s := NewSignal(initial)
	owner.SetHookSlot(s)
	return s
}

// Get returns the current value and subscribes the tracked listener, if any.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	if l := getCurrentListener(); l != nil {
		s.base.subscribe(l)
		if tracker, ok := l.(SourceTracker); ok {
			tracker.AddSource(s)
		}
	}

	return value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// Update replaces the value with fn(current) and notifies subscribers if it
// changed.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	old := s.value
	next := fn(old)
	changed := !s.equals(old, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// Subscribe registers fn to run with the new value after every change.
// The returned function removes the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	l := &funcListener{id: nextID()}
	l.fn = func() { fn(s.Peek()) }
	s.base.subscribe(l)
	return func() { s.base.unsubscribe(l) }
}

// Unsubscribe implements Source.
func (s *Signal[T]) Unsubscribe(l Listener) {
	s.base.unsubscribe(l)
}

// Subscribers returns the number of listeners currently subscribed.
func (s *Signal[T]) Subscribers() int {
	return s.base.subscriberCount()
}

// WithEquals sets a custom equality function and returns the signal.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the signal's unique identifier.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for scalar comparable kinds and reflect.DeepEqual for
// everything else, so structs holding slices never panic.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	t := reflect.TypeOf(av)
	if t == nil {
		return bv == nil
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Array, reflect.Interface:
		return reflect.DeepEqual(a, b)
	}
	if t.Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(a, b)
}
