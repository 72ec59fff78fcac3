package demo

import (
	"strconv"

	"github.com/vango-dev/tally/pkg/vdom"
)

// FindButton returns the button for action ("click", "points" or "toggle")
// in section at level, or nil. Toggle buttons ignore level.
func FindButton(tree *vdom.VNode, action string, section, level int) *vdom.VNode {
	return vdom.Find(tree, func(n *vdom.VNode) bool {
		if n.Tag != "button" || n.Props["data-action"] != action {
			return false
		}
		if n.Props["data-section"] != strconv.Itoa(section) {
			return false
		}
		return action == "toggle" || n.Props["data-level"] == strconv.Itoa(level)
	})
}

// Counts returns the counts shown for role ("clicks" or "points") in
// section, outermost level first. A hidden section yields nil.
func Counts(tree *vdom.VNode, role string, section int) []int {
	var counts []int
	vdom.Walk(tree, func(n *vdom.VNode) bool {
		if n.Props["data-role"] == role && n.Props["data-section"] == strconv.Itoa(section) {
			v, _ := strconv.Atoi(vdom.TextContent(n))
			counts = append(counts, v)
			return false
		}
		return true
	})
	return counts
}

// Total returns the grand total shown in the header for role ("clicks" or
// "points").
func Total(tree *vdom.VNode, role string) int {
	n := vdom.Find(tree, func(n *vdom.VNode) bool {
		return n.Props["data-role"] == "total-"+role
	})
	if n == nil {
		return 0
	}
	v, _ := strconv.Atoi(vdom.TextContent(n))
	return v
}
