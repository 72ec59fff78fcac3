package reactive

import "testing"

func TestContextDefault(t *testing.T) {
	ctx := CreateContext("default")
	if got := ctx.Use(); got != "default" {
		t.Errorf("Use() outside owner = %q, want default", got)
	}
	if got := ctx.Lookup(nil); got != "default" {
		t.Errorf("Lookup(nil) = %q, want default", got)
	}
	if ctx.Default() != "default" {
		t.Error("Default() mismatch")
	}
}

func TestContextNested(t *testing.T) {
	ctx := CreateContext("default")
	root := NewOwner(nil)

	WithOwner(root, func() {
		ctx.Provide("outer")

		inner := NewOwner(root)
		WithOwner(inner, func() {
			if got := ctx.Use(); got != "outer" {
				t.Errorf("inherited = %q, want outer", got)
			}
			ctx.Provide("inner")
			if got := ctx.Use(); got != "inner" {
				t.Errorf("override = %q, want inner", got)
			}
		})

		if got := ctx.Use(); got != "outer" {
			t.Errorf("after inner scope = %q, want outer", got)
		}
	})
}

func TestContextsAreIndependent(t *testing.T) {
	a := CreateContext(0)
	b := CreateContext(0)
	root := NewOwner(nil)

	a.ProvideOn(root, 1)

	if got := a.Lookup(root); got != 1 {
		t.Errorf("a = %d, want 1", got)
	}
	if got := b.Lookup(root); got != 0 {
		t.Errorf("b = %d, want default 0", got)
	}
}

func TestContextWrongTypeFallsBack(t *testing.T) {
	ctx := CreateContext("default")
	root := NewOwner(nil)
	root.SetValue(ctx.key, 12345)

	if got := ctx.Lookup(root); got != "default" {
		t.Errorf("wrong-typed value should yield default, got %q", got)
	}
}

func TestProvideOutsideRenderIsNoop(t *testing.T) {
	ctx := CreateContext("default")
	ctx.Provide("ignored")
	if got := ctx.Use(); got != "default" {
		t.Errorf("Use() = %q, want default", got)
	}
}
