package counter

import "github.com/vango-dev/tally/pkg/reactive"

// Scope is one counter bound to a provider's subtree.
type Scope struct {
	id      uint64
	counter *Counter
	parent  *Scope

	// count is nil only for the neutral scope.
	count  *reactive.Signal[int]
	active bool
}

// ID returns the scope's unique identifier. The neutral scope has ID 0.
func (s *Scope) ID() uint64 {
	return s.id
}

// Counter returns the counter kind the scope belongs to.
func (s *Scope) Counter() *Counter {
	return s.counter
}

// Parent returns the enclosing scope. An outermost scope's parent is the
// neutral scope; the neutral scope has none.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Depth is 0 for the neutral scope, 1 for an outermost scope, and one more
// for each enclosing scope. It follows the current parent chain.
func (s *Scope) Depth() int {
	depth := 0
	for p := s.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// IsNeutral reports whether s is its counter's neutral scope.
func (s *Scope) IsNeutral() bool {
	return s.count == nil
}

// Active reports whether the scope's provider is still mounted.
func (s *Scope) Active() bool {
	return s.active
}

// Count returns the current count and subscribes the rendering component.
func (s *Scope) Count() int {
	if s == nil || s.count == nil {
		return 0
	}
	return s.count.Get()
}

// Peek returns the current count without subscribing.
func (s *Scope) Peek() int {
	if s == nil || s.count == nil {
		return 0
	}
	return s.count.Peek()
}

// Add adds to the scope and every enclosing scope of the same counter.
// With no arguments it adds 1; several arguments are added as their sum.
// The local count changes before the delta is forwarded to the parent.
func (s *Scope) Add(delta ...int) {
	n := 1
	if len(delta) > 0 {
		n = 0
		for _, d := range delta {
			n += d
		}
	}
	s.add(n, true)
}

func (s *Scope) add(n int, direct bool) {
	if s == nil || s.count == nil {
		return
	}
	if s.active {
		s.count.Update(func(old int) int { return old + n })
		s.counter.notifyAdd(s, n, direct)
	}
	s.parent.add(n, false)
}

// Subscribe runs fn with the new count after every change of this scope's
// count, including deltas propagated from descendant scopes. Inside
// reactive.Batch, which Root.Dispatch uses for every handler, changes are
// coalesced: fn runs once when the batch ends, with the final count. The
// returned function removes the subscription. On the neutral scope it never
// fires.
func (s *Scope) Subscribe(fn func(count int)) (unsubscribe func()) {
	if s == nil || s.count == nil {
		return func() {}
	}
	return s.count.Subscribe(fn)
}

// bind points propagation at parent.
func (s *Scope) bind(parent *Scope) {
	s.parent = parent
}

func (s *Scope) info() ScopeInfo {
	return ScopeInfo{
		Counter: s.counter.name,
		ID:      s.id,
		Depth:   s.Depth(),
		Count:   s.Peek(),
	}
}
