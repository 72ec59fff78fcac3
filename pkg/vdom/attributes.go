package vdom

import (
	"fmt"
	"strings"
)

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data creates a data-* attribute.
// Example: Data("level", 2) → data-level="2"
func Data(key string, value any) Attr { return attr("data-"+key, fmt.Sprint(value)) }

// Title sets the title attribute.
func Title(title string) Attr { return attr("title", title) }

// Disabled sets the boolean disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Key sets the reconciliation key of an element.
func Key(key any) Attr { return attr("key", fmt.Sprint(key)) }
