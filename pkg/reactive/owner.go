package reactive

import (
	"sync"
	"sync/atomic"
)

// Owner is a scope in the component hierarchy.
// Disposing an Owner disposes its child owners (last created first) and then
// runs its cleanups in reverse registration order.
type Owner struct {
	id uint64

	// parent is nil for a root owner.
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	// values holds context values provided at this scope.
	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool

	// hookSlots give hook state a stable identity across renders: the n-th
	// hook called during a render always gets the n-th slot.
	hookSlots   []any
	hookSlotIdx int
}

// NewOwner creates an owner registered as a child of parent.
// A nil parent creates a root owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the owner's unique identifier.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent owner, or nil for a root owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// Depth returns the number of ancestors of this owner.
func (o *Owner) Depth() int {
	depth := 0
	for p := o.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

// ChildCount returns the number of live child owners.
func (o *Owner) ChildCount() int {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	return len(o.children)
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// SetValue stores a context value at this scope.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// LookupValue finds key at this scope or the nearest ancestor that has it.
func (o *Owner) LookupValue(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		val, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return val, true
		}
	}
	return nil, false
}

// GetValue is LookupValue without the presence flag.
func (o *Owner) GetValue(key any) any {
	val, _ := o.LookupValue(key)
	return val
}

// OnCleanup registers fn to run when the owner is disposed.
// On an already disposed owner fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Dispose tears down the owner and everything below it. It is idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.valuesMu.Lock()
	o.values = nil
	o.valuesMu.Unlock()
	o.hookSlots = nil
}

// StartRender resets the hook slot index. The runtime calls it before every
// render of the owning component.
func (o *Owner) StartRender() {
	o.hookSlotIdx = 0
}

// UseHookSlot returns the value stored in the current hook slot and advances
// to the next one. It returns nil on the first render, in which case the
// caller creates the value and stores it with SetHookSlot.
//
//	if slot := owner.UseHookSlot(); slot != nil {
//	    return slot.(*state)
//	}
//	st := &state{}
//	owner.SetHookSlot(st)
//	return st
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++
	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores value in the slot UseHookSlot just returned nil for.
func (o *Owner) SetHookSlot(value any) {
	idx := o.hookSlotIdx - 1
	if idx >= 0 && idx < len(o.hookSlots) {
		o.hookSlots[idx] = value
		return
	}
	o.hookSlots = append(o.hookSlots, value)
}
