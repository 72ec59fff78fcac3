package counter

import (
	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/vdom"
)

// Counter is a counter kind: the identity shared by all of its scopes.
type Counter struct {
	name      string
	ctx       *reactive.Context[*Scope]
	neutral   *Scope
	observers []Observer
}

// Option configures a Counter.
type Option func(*Counter)

// WithName names the counter in observer events.
func WithName(name string) Option {
	return func(c *Counter) {
		c.name = name
	}
}

// WithObserver registers an observer for scope lifecycle and add events.
func WithObserver(o Observer) Option {
	return func(c *Counter) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// New creates an independent counter kind.
func New(opts ...Option) *Counter {
	c := &Counter{}
	for _, opt := range opts {
		opt(c)
	}
	c.neutral = &Scope{counter: c}
	c.ctx = reactive.CreateContext(c.neutral)
	return c
}

// Name returns the name given with WithName.
func (c *Counter) Name() string {
	return c.name
}

// Context returns the context scopes of this counter are published on.
func (c *Counter) Context() *reactive.Context[*Scope] {
	return c.ctx
}

// Neutral returns the scope used when no provider encloses the caller.
func (c *Counter) Neutral() *Scope {
	return c.neutral
}

// Use is shorthand for counter.Use(c).
func (c *Counter) Use() Value {
	return Use(c)
}

// Provider returns a component node that opens a new scope of c for children.
func (c *Counter) Provider(children ...any) *vdom.VNode {
	return vdom.Mount(&provider{counter: c, children: children})
}

// Value is what Use returns: the nearest scope's count at render time and
// that scope's add function.
type Value struct {
	Count int
	Add   func(delta ...int)
}

// Use returns the count and add function of the scope of c nearest to the
// rendering component. Reading the count subscribes the component, so it
// re-renders whenever that scope's count changes. Outside any provider of c
// it returns a zero count and a no-op add.
func Use(c *Counter) Value {
	s := Current(c)
	return Value{Count: s.Count(), Add: s.Add}
}

// Current returns the scope of c nearest to the rendering component, or the
// neutral scope.
func Current(c *Counter) *Scope {
	return c.ctx.Use()
}

func (c *Counter) activate(parent *Scope) *Scope {
	s := &Scope{
		id:      reactive.NextID(),
		counter: c,
		count:   reactive.NewSignal(0),
		active:  true,
	}
	s.bind(parent)
	for _, o := range c.observers {
		o.ScopeActivated(s.info())
	}
	return s
}

func (c *Counter) deactivate(s *Scope) {
	if !s.active {
		return
	}
	s.active = false
	for _, o := range c.observers {
		o.ScopeDeactivated(s.info())
	}
}

func (c *Counter) notifyAdd(s *Scope, delta int, direct bool) {
	if len(c.observers) == 0 {
		return
	}
	ev := AddEvent{Scope: s.info(), Delta: delta, Direct: direct}
	for _, o := range c.observers {
		o.ScopeAdded(ev)
	}
}
