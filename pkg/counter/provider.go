package counter

import (
	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/vdom"
)

// provider is the component behind Counter.Provider.
type provider struct {
	counter  *Counter
	children []any
}

// Identity implements vdom.Identifier: a provider only takes over the
// instance of a provider of the same counter.
func (p *provider) Identity() any {
	return p.counter
}

// Render resolves the parent scope, creates the local scope on first render
// and publishes it to the subtree.
func (p *provider) Render() *vdom.VNode {
	owner := reactive.CurrentOwner()
	if owner == nil {
		return vdom.Fragment(p.children...)
	}

	parent := p.counter.ctx.Lookup(owner.Parent())

	var s *Scope
	if slot, ok := owner.UseHookSlot().(*Scope); ok {
		s = slot
		if s.parent != parent {
			s.bind(parent)
		}
	} else {
		s = p.counter.activate(parent)
		owner.SetHookSlot(s)
		owner.OnCleanup(func() { p.counter.deactivate(s) })
	}

	p.counter.ctx.ProvideOn(owner, s)
	return vdom.Fragment(p.children...)
}
