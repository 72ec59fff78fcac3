package reactive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOwnerHierarchy(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	grandchild := NewOwner(child)

	if child.Parent() != root {
		t.Error("child parent mismatch")
	}
	if grandchild.Depth() != 2 {
		t.Errorf("grandchild depth = %d, want 2", grandchild.Depth())
	}
	if root.ChildCount() != 1 {
		t.Errorf("root child count = %d, want 1", root.ChildCount())
	}
}

func TestOwnerValues(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)

	root.SetValue("k", "root")
	if got := child.GetValue("k"); got != "root" {
		t.Errorf("child inherits %v, want root", got)
	}

	child.SetValue("k", "child")
	if got := child.GetValue("k"); got != "child" {
		t.Errorf("child override = %v, want child", got)
	}
	if got := root.GetValue("k"); got != "root" {
		t.Errorf("root value changed to %v", got)
	}

	root.SetValue("nil", nil)
	v, ok := child.LookupValue("nil")
	if !ok || v != nil {
		t.Errorf("LookupValue(nil) = %v, %v; want nil, true", v, ok)
	}
	if _, ok := child.LookupValue("missing"); ok {
		t.Error("missing key reported present")
	}
}

func TestOwnerDisposeOrder(t *testing.T) {
	var order []string
	root := NewOwner(nil)
	a := NewOwner(root)
	b := NewOwner(root)

	root.OnCleanup(func() { order = append(order, "root-1") })
	root.OnCleanup(func() { order = append(order, "root-2") })
	a.OnCleanup(func() { order = append(order, "a") })
	b.OnCleanup(func() { order = append(order, "b") })

	root.Dispose()
	root.Dispose()

	want := []string{"b", "a", "root-2", "root-1"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("dispose order mismatch (-want +got):\n%s", diff)
	}
	if !a.IsDisposed() || !b.IsDisposed() {
		t.Error("children not disposed")
	}
}

func TestOwnerDisposeRemovesFromParent(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	child.Dispose()

	if root.ChildCount() != 0 {
		t.Errorf("disposed child still registered: %d", root.ChildCount())
	}
}

func TestOnCleanupAfterDispose(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()

	ran := false
	o.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup on disposed owner should run immediately")
	}
}

func TestHookSlots(t *testing.T) {
	o := NewOwner(nil)

	o.StartRender()
	if o.UseHookSlot() != nil {
		t.Fatal("first render slot should be empty")
	}
	o.SetHookSlot("first")
	if o.UseHookSlot() != nil {
		t.Fatal("second slot should be empty")
	}
	o.SetHookSlot("second")

	o.StartRender()
	if got := o.UseHookSlot(); got != "first" {
		t.Errorf("slot 0 = %v, want first", got)
	}
	if got := o.UseHookSlot(); got != "second" {
		t.Errorf("slot 1 = %v, want second", got)
	}
}
