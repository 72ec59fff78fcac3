package counter

// ScopeInfo describes a scope in observer callbacks.
type ScopeInfo struct {
	Counter string
	ID      uint64
	Depth   int
	Count   int
}

// AddEvent describes one change of one scope's count.
type AddEvent struct {
	Scope ScopeInfo

	// Delta is the amount added.
	Delta int

	// Direct is true for the scope Add was called on and false for the
	// enclosing scopes the delta propagated to.
	Direct bool
}

// Observer receives scope lifecycle and add events of a Counter.
// Callbacks run synchronously on the goroutine that caused them.
type Observer interface {
	ScopeActivated(ScopeInfo)
	ScopeAdded(AddEvent)
	ScopeDeactivated(ScopeInfo)
}

// ObserverFuncs adapts functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnActivated   func(ScopeInfo)
	OnAdded       func(AddEvent)
	OnDeactivated func(ScopeInfo)
}

func (f ObserverFuncs) ScopeActivated(s ScopeInfo) {
	if f.OnActivated != nil {
		f.OnActivated(s)
	}
}

func (f ObserverFuncs) ScopeAdded(e AddEvent) {
	if f.OnAdded != nil {
		f.OnAdded(e)
	}
}

func (f ObserverFuncs) ScopeDeactivated(s ScopeInfo) {
	if f.OnDeactivated != nil {
		f.OnDeactivated(s)
	}
}
