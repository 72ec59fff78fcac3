package vtest_test

import (
	"testing"

	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/vdom"
	"github.com/vango-dev/tally/pkg/vtest"
)

func clicker() vdom.Component {
	return vdom.Named("clicker", func() *vdom.VNode {
		n := reactive.UseSignal(0)
		return vdom.Div(
			vdom.Strong(vdom.Textf("%d", n.Get())),
			vdom.Button(vdom.OnClick(func() { n.Set(n.Peek() + 1) }), vdom.Text("+1")),
		)
	})
}

func TestHarnessClickText(t *testing.T) {
	h := vtest.Mount(t, clicker())

	h.ClickText("+1")
	h.ClickText("+1")

	vtest.ExpectContains(t, h.Tree(), "<strong>2</strong>")
	if h.Text() != "2+1" {
		t.Errorf("Text() = %q", h.Text())
	}
}

func TestHarnessClickByHID(t *testing.T) {
	h := vtest.Mount(t, clicker())

	vtest.ExpectAttribute(t, h.Tree(), "data-hid", "h1")
	h.Click("h1")

	if html := h.HTML(); html != `<div><strong>1</strong><button data-hid="h1" data-on-click="true">+1</button></div>` {
		t.Errorf("HTML() = %s", html)
	}
}

func TestHarnessUnmountsOnCleanup(t *testing.T) {
	var root *vtest.Harness
	t.Run("inner", func(t *testing.T) {
		root = vtest.Mount(t, clicker())
	})
	if root.Root().Instance() != nil {
		t.Error("harness was not unmounted when its test finished")
	}
}

func TestHarnessFlush(t *testing.T) {
	external := reactive.NewSignal("a")
	h := vtest.Mount(t, vdom.Func(func() *vdom.VNode {
		return vdom.P(vdom.Text(external.Get()))
	}))

	external.Set("b")
	if n := h.Flush(); n != 1 {
		t.Errorf("Flush() = %d, want 1", n)
	}
	vtest.ExpectContains(t, h.Tree(), "<p>b</p>")
	vtest.ExpectNotContains(t, h.Tree(), "<p>a</p>")
}
