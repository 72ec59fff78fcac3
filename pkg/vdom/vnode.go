package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText
	Comp     Component // For KindComponent
	HID      string    // Hydration ID (assigned after render)
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive reports whether the node is an element with an event handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, val := range v.Props {
		if val != nil && strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Handler returns the handler registered for event (e.g. "click"), or nil.
func (v *VNode) Handler(event string) func() {
	if v == nil || v.Props == nil {
		return nil
	}
	fn, _ := v.Props["on"+event].(func())
	return fn
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// Identifier is implemented by components that must only be reused across
// renders by a component with the same identity. Components without it are
// matched by Go type alone.
type Identifier interface {
	Identity() any
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	name   string
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Identity implements Identifier. Unnamed function components share the empty
// identity.
func (f *FuncComponent) Identity() any {
	return f.name
}

// Name returns the component name given to Named.
func (f *FuncComponent) Name() string {
	return f.name
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Named creates a component from a render function with a name. Components
// with different names at the same position are never reused for each other.
func Named(name string, render func() *VNode) Component {
	return &FuncComponent{name: name, render: render}
}

// Mount wraps a component in a component node.
func Mount(c Component) *VNode {
	if c == nil {
		return nil
	}
	return &VNode{Kind: KindComponent, Comp: c}
}

// Keyed wraps a component in a component node with a reconciliation key.
// Keyed components keep their state when siblings are added or removed.
func Keyed(key string, c Component) *VNode {
	node := Mount(c)
	if node != nil {
		node.Key = key
	}
	return node
}
