package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/tally/pkg/render"
	"github.com/vango-dev/tally/pkg/runtime"
	"github.com/vango-dev/tally/pkg/vdom"
)

// Harness is a mounted component under test.
type Harness struct {
	t    testing.TB
	root *runtime.Root
}

// Mount mounts comp in a new Root. The Root logs nowhere unless opts
// override it.
func Mount(t testing.TB, comp vdom.Component, opts ...runtime.Option) *Harness {
	t.Helper()
	opts = append([]runtime.Option{
		runtime.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)

	h := &Harness{t: t, root: runtime.New(opts...)}
	h.root.Mount(comp)
	t.Cleanup(h.root.Unmount)
	return h
}

// Root returns the underlying Root.
func (h *Harness) Root() *runtime.Root {
	return h.root
}

// Tree returns the composed tree with fresh hydration IDs.
func (h *Harness) Tree() *vdom.VNode {
	return h.root.Tree()
}

// HTML renders the current tree.
func (h *Harness) HTML() string {
	return RenderToString(h.Tree())
}

// Text returns the text content of the current tree.
func (h *Harness) Text() string {
	return vdom.TextContent(h.Tree())
}

// Flush re-renders pending components and returns how many rendered.
func (h *Harness) Flush() int {
	return h.root.Flush()
}

// Click dispatches a click on hid and fails the test on error.
func (h *Harness) Click(hid string) {
	h.t.Helper()
	if err := h.root.Dispatch(hid, "click"); err != nil {
		h.t.Fatalf("click %s: %v", hid, err)
	}
}

// ClickText clicks the first interactive element whose text contains text.
func (h *Harness) ClickText(text string) {
	h.t.Helper()
	h.ClickWhere(func(n *vdom.VNode) bool {
		return strings.Contains(vdom.TextContent(n), text)
	}, text)
}

// ClickWhere clicks the first interactive element matching match. desc names
// the element in failure messages.
func (h *Harness) ClickWhere(match func(*vdom.VNode) bool, desc string) {
	h.t.Helper()
	node := vdom.Find(h.Tree(), func(n *vdom.VNode) bool {
		return n.HID != "" && match(n)
	})
	if node == nil {
		h.t.Fatalf("no clickable element %s in:\n%s", desc, truncate(h.HTML(), 500))
	}
	h.Click(node.HID)
}

// RenderToString renders node, returning "" on error.
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that the rendered node contains expected.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered node does not contain
// unexpected.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that the rendered node contains attr="value".
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
