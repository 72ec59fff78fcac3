package vdom

// OnClick registers a click handler on an element.
func OnClick(handler func()) Attr { return event("click", handler) }

func event(name string, handler func()) Attr {
	if handler == nil {
		return Attr{}
	}
	return attr("on"+name, handler)
}
