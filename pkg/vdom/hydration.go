package vdom

import "fmt"

// HIDGenerator generates hydration IDs for interactive elements.
// It is owned by one render pass and is not safe for concurrent use.
type HIDGenerator struct {
	counter uint32
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	return g.counter
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements in
// document order. Non-interactive elements have their HID cleared.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	Walk(node, func(n *VNode) bool {
		if n.IsInteractive() {
			n.HID = gen.Next()
		} else {
			n.HID = ""
		}
		return true
	})
}

// FindByHID returns the node with the given hydration ID, or nil.
func FindByHID(node *VNode, hid string) *VNode {
	if hid == "" {
		return nil
	}
	return Find(node, func(n *VNode) bool { return n.HID == hid })
}

// CollectHIDs maps every assigned HID in the tree to its node.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	Walk(node, func(n *VNode) bool {
		if n.HID != "" {
			result[n.HID] = n
		}
		return true
	})
	return result
}
