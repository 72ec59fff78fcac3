package runtime

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/vdom"
)

// Instance is a mounted component with its reactive owner.
type Instance struct {
	id    uint64
	comp  vdom.Component
	owner *reactive.Owner
	root  *Root

	parent *Instance
	slot   string
	depth  int

	// tree is the output of the last render; component nodes in it map to
	// child instances through byNode.
	tree     *vdom.VNode
	children []*Instance
	byNode   map[*vdom.VNode]*Instance

	// sources are the signals read during the last render.
	sources []reactive.Source

	dirty    bool
	disposed bool
	renders  int
}

var (
	_ reactive.Listener      = (*Instance)(nil)
	_ reactive.SourceTracker = (*Instance)(nil)
)

func newInstance(r *Root, comp vdom.Component, parent *Instance, slot string) *Instance {
	parentOwner := r.owner
	depth := 0
	if parent != nil {
		parentOwner = parent.owner
		depth = parent.depth + 1
	}

	inst := &Instance{
		id:     reactive.NextID(),
		comp:   comp,
		owner:  reactive.NewOwner(parentOwner),
		root:   r,
		parent: parent,
		slot:   slot,
		depth:  depth,
	}
	r.instances++
	return inst
}

// ID implements reactive.Listener.
func (i *Instance) ID() uint64 {
	return i.id
}

// MarkDirty implements reactive.Listener. It schedules a re-render on the
// next Flush.
func (i *Instance) MarkDirty() {
	if i.disposed || i.dirty {
		return
	}
	i.dirty = true
	i.root.schedule(i)
}

// AddSource implements reactive.SourceTracker.
func (i *Instance) AddSource(s reactive.Source) {
	i.sources = append(i.sources, s)
}

// Owner returns the instance's reactive owner.
func (i *Instance) Owner() *reactive.Owner {
	return i.owner
}

// Parent returns the enclosing instance, or nil for the root instance.
func (i *Instance) Parent() *Instance {
	return i.parent
}

// Children returns the mounted child instances in document order.
func (i *Instance) Children() []*Instance {
	return append([]*Instance(nil), i.children...)
}

// Depth returns the number of enclosing instances.
func (i *Instance) Depth() int {
	return i.depth
}

// Renders returns how many times the instance has rendered.
func (i *Instance) Renders() int {
	return i.renders
}

// Disposed reports whether the instance has been unmounted.
func (i *Instance) Disposed() bool {
	return i.disposed
}

// IsDirty reports whether a re-render is pending.
func (i *Instance) IsDirty() bool {
	return i.dirty
}

// String identifies the instance in logs.
func (i *Instance) String() string {
	name := fmt.Sprintf("%T", i.comp)
	if fc, ok := i.comp.(*vdom.FuncComponent); ok && fc.Name() != "" {
		name = fc.Name()
	}
	return fmt.Sprintf("%s#%d@%s", name, i.id, i.slot)
}

// render runs the component and reconciles its child components.
func (i *Instance) render() {
	if i.disposed {
		return
	}
	i.dropSources()
	i.dirty = false

	var tree *vdom.VNode
	reactive.WithOwner(i.owner, func() {
		i.owner.StartRender()
		reactive.WithListener(i, func() {
			tree = i.comp.Render()
		})
	})

	i.tree = tree
	i.renders++
	i.root.renders++
	i.reconcile()
}

// slotted is a component node found in a render output.
type slotted struct {
	slot string
	node *vdom.VNode
	inst *Instance
}

// collectComponents lists the component nodes of tree in document order.
// A node's slot is "k:<key>" when it has a key not yet used by a sibling
// component, otherwise the path of child indices leading to it. Nil children
// count toward the indices, so hiding a child leaves its siblings' slots
// unchanged.
func collectComponents(tree *vdom.VNode) []slotted {
	var found []slotted
	keys := make(map[string]bool)

	var walk func(n *vdom.VNode, path string)
	walk = func(n *vdom.VNode, path string) {
		if n == nil {
			return
		}
		if n.Kind == vdom.KindComponent {
			if n.Comp == nil {
				return
			}
			slot := path
			if n.Key != "" && !keys[n.Key] {
				keys[n.Key] = true
				slot = "k:" + n.Key
			}
			found = append(found, slotted{slot: slot, node: n})
			return
		}
		for idx, child := range n.Children {
			walk(child, path+"."+strconv.Itoa(idx))
		}
	}
	walk(tree, "0")

	return found
}

// reconcile matches the component nodes of the new tree against the previous
// children. Unmatched old children are disposed before new ones mount.
func (i *Instance) reconcile() {
	found := collectComponents(i.tree)

	old := i.children
	kept := make(map[*Instance]bool, len(old))
	for k := range found {
		for _, c := range old {
			if c.slot == found[k].slot && !kept[c] && sameComponent(c.comp, found[k].node.Comp) {
				found[k].inst = c
				kept[c] = true
				break
			}
		}
	}

	for j := len(old) - 1; j >= 0; j-- {
		if !kept[old[j]] {
			i.root.logger.Debug("unmounting component", "instance", old[j].String())
			old[j].dispose()
		}
	}

	i.children = make([]*Instance, 0, len(found))
	i.byNode = make(map[*vdom.VNode]*Instance, len(found))
	for _, f := range found {
		child := f.inst
		if child == nil {
			child = newInstance(i.root, f.node.Comp, i, f.slot)
			i.root.logger.Debug("mounting component", "instance", child.String())
		} else {
			child.comp = f.node.Comp
		}
		i.children = append(i.children, child)
		i.byNode[f.node] = child
		child.render()
	}
}

// sameComponent reports whether b may take over the instance rendering a.
func sameComponent(a, b vdom.Component) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return identityOf(a) == identityOf(b)
}

func identityOf(c vdom.Component) any {
	if id, ok := c.(vdom.Identifier); ok {
		return id.Identity()
	}
	return nil
}

func (i *Instance) dropSources() {
	for _, s := range i.sources {
		s.Unsubscribe(i)
	}
	i.sources = nil
}

// dispose unmounts the instance, its children first.
func (i *Instance) dispose() {
	if i.disposed {
		return
	}
	i.disposed = true

	for j := len(i.children) - 1; j >= 0; j-- {
		i.children[j].dispose()
	}
	i.children = nil
	i.byNode = nil

	i.dropSources()
	i.owner.Dispose()
	i.tree = nil
	i.root.instances--
}

// compose returns a copy of the last render output with every component node
// replaced by its instance's composed output.
func (i *Instance) compose() *vdom.VNode {
	return i.composeNode(i.tree)
}

func (i *Instance) composeNode(n *vdom.VNode) *vdom.VNode {
	if n == nil {
		return nil
	}
	if n.Kind == vdom.KindComponent {
		if child, ok := i.byNode[n]; ok {
			return child.compose()
		}
		return nil
	}

	cp := *n
	if len(n.Children) > 0 {
		cp.Children = make([]*vdom.VNode, 0, len(n.Children))
		for _, c := range n.Children {
			if composed := i.composeNode(c); composed != nil {
				cp.Children = append(cp.Children, composed)
			}
		}
	}
	return &cp
}
