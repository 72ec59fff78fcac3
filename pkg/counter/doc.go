// Package counter provides hierarchically composable counters bound to a
// component tree.
//
// A Counter is a counter kind. Its Provider opens a new scope for the subtree
// beneath it; Use returns the count of the nearest enclosing scope and a
// function to add to it. Adding to a scope adds the same delta to every
// enclosing scope of the same Counter, so nested counts aggregate into their
// ancestors:
//
//	var Clicks = counter.New(counter.WithName("clicks"))
//
//	func Page() vdom.Component {
//	    return vdom.Func(func() *vdom.VNode {
//	        return Clicks.Provider(
//	            Total(),
//	            Clicks.Provider(ClickButton()),
//	            Clicks.Provider(ClickButton()),
//	        )
//	    })
//	}
//
//	func ClickButton() vdom.Component {
//	    return vdom.Func(func() *vdom.VNode {
//	        clicks := counter.Use(Clicks)
//	        return vdom.Button(vdom.OnClick(func() { clicks.Add() }),
//	            vdom.Textf("clicked %d", clicks.Count))
//	    })
//	}
//
// Use must be called from a component rendered inside the provider, not from
// the component that creates the provider: the scope exists only once the
// provider has rendered.
//
// Outside any provider Use returns the neutral scope: a count of 0 and an add
// function that does nothing. Distinct Counters never see each other's scopes.
//
// A scope lives as long as its provider stays mounted. Unmounting the
// provider discards the count; mounting one again starts from 0.
package counter
