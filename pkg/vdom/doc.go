// Package vdom defines the virtual node tree components render to.
//
// Nodes are built with plain functions:
//
//	vdom.Div(vdom.Class("card"),
//	    vdom.H2(vdom.Text("Clicks")),
//	    vdom.Button(vdom.OnClick(func() { clicks.Add() }), vdom.Text("+1")),
//	    Badge(), // a vdom.Component becomes a component node
//	)
//
// Component nodes are mounted by the runtime package, which gives each one its
// own reactive owner. Interactive elements get hydration IDs (HIDs) so events
// coming back from a client can be routed to their handlers.
package vdom
