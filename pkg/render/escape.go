package render

import (
	"html"
	"strings"
)

// escapeHTML escapes text content.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// attrWhitespace keeps raw line breaks and tabs out of attribute values.
var attrWhitespace = strings.NewReplacer(
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeAttr escapes a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrWhitespace.Replace(html.EscapeString(s))
}
