package vdom

// createElement creates an element node from mixed arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string.
// Every argument except attributes takes a child position; nil ones are kept
// as nil children so the positions of later siblings never move.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			node.setAttr(v)
		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}
		default:
			node.Children = appendChild(node.Children, arg)
		}
	}

	return node
}

func (v *VNode) setAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
		return
	}
	v.Props[a.Key] = a.Value
}

// appendChild normalizes a child argument into nodes. A nil argument becomes
// a nil child.
func appendChild(children []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case nil:
		children = append(children, nil)
	case *VNode:
		children = append(children, v)
	case []*VNode:
		children = append(children, v...)
	case string:
		children = append(children, Text(v))
	case Component:
		children = append(children, Mount(v))
	case []any:
		for _, c := range v {
			children = appendChild(children, c)
		}
	}
	return children
}

// Div creates a <div> element.
func Div(args ...any) *VNode { return createElement("div", args) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return createElement("span", args) }

// P creates a <p> element.
func P(args ...any) *VNode { return createElement("p", args) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return createElement("h1", args) }

// H2 creates an <h2> element.
func H2(args ...any) *VNode { return createElement("h2", args) }

// Section creates a <section> element.
func Section(args ...any) *VNode { return createElement("section", args) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return createElement("button", args) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return createElement("ul", args) }

// Li creates an <li> element.
func Li(args ...any) *VNode { return createElement("li", args) }

// Strong creates a <strong> element.
func Strong(args ...any) *VNode { return createElement("strong", args) }

// Br creates a <br> element.
func Br() *VNode { return createElement("br", nil) }

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"meta":  true,
	"link":  true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
