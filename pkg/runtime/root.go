package runtime

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/vdom"
)

// DefaultMaxFlushPasses bounds how many times Flush re-runs when renders keep
// dirtying components.
const DefaultMaxFlushPasses = 100

// Root owns a mounted component tree.
type Root struct {
	owner *reactive.Owner
	root  *Instance

	// queue holds instances marked dirty since the last flush.
	queue []*Instance

	// handlers maps "<hid>_on<event>" to handlers of the last composed tree.
	handlers map[string]func()

	logger    *slog.Logger
	maxPasses int

	instances int
	renders   int
	unmounted bool
}

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the logger used for mount and flush diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Root) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxFlushPasses overrides DefaultMaxFlushPasses.
func WithMaxFlushPasses(n int) Option {
	return func(r *Root) {
		if n > 0 {
			r.maxPasses = n
		}
	}
}

// New creates an empty Root.
func New(opts ...Option) *Root {
	r := &Root{
		owner:     reactive.NewOwner(nil),
		logger:    slog.Default().With("component", "runtime"),
		maxPasses: DefaultMaxFlushPasses,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount renders component as the root of the tree, replacing (and disposing)
// any previously mounted tree.
func (r *Root) Mount(component vdom.Component) {
	if r.root != nil {
		r.root.dispose()
	}
	r.unmounted = false
	r.handlers = nil
	r.queue = nil

	r.root = newInstance(r, component, nil, "root")
	r.root.render()

	r.logger.Debug("mounted root component",
		"instances", r.instances,
		"renders", r.renders)
}

// Owner returns the root owner every instance descends from.
func (r *Root) Owner() *reactive.Owner {
	return r.owner
}

// Instance returns the root instance, or nil before Mount.
func (r *Root) Instance() *Instance {
	return r.root
}

func (r *Root) schedule(i *Instance) {
	r.queue = append(r.queue, i)
}

// Pending reports whether any instance awaits a re-render.
func (r *Root) Pending() bool {
	return len(r.queue) > 0
}

// Flush re-renders dirty instances, shallowest first, and returns the number
// of component renders it performed. An instance re-rendered by its parent in
// the same pass is not rendered again.
func (r *Root) Flush() int {
	start := r.renders

	for pass := 0; len(r.queue) > 0; pass++ {
		if pass >= r.maxPasses {
			r.logger.Warn("flush did not settle",
				"passes", pass,
				"pending", len(r.queue))
			for _, inst := range r.queue {
				inst.dirty = false
			}
			r.queue = nil
			break
		}

		queue := r.queue
		r.queue = nil
		sort.SliceStable(queue, func(a, b int) bool {
			return queue[a].depth < queue[b].depth
		})

		for _, inst := range queue {
			if inst.disposed || !inst.dirty {
				continue
			}
			inst.render()
		}
	}

	return r.renders - start
}

// Tree composes the mounted tree, assigns fresh hydration IDs and rebinds the
// handler table to it. Client events must use HIDs from the latest Tree.
func (r *Root) Tree() *vdom.VNode {
	if r.root == nil {
		return nil
	}

	tree := r.root.compose()
	vdom.AssignHIDs(tree, vdom.NewHIDGenerator())

	r.handlers = make(map[string]func())
	vdom.Walk(tree, func(n *vdom.VNode) bool {
		if n.HID == "" {
			return true
		}
		for key, value := range n.Props {
			if !strings.HasPrefix(key, "on") {
				continue
			}
			if fn, ok := value.(func()); ok {
				r.handlers[n.HID+"_"+key] = fn
			}
		}
		return true
	})

	return tree
}

// Dispatch runs the handler bound to hid for event (e.g. "click") inside a
// batch, then flushes. A panicking handler is recovered and reported as a
// *HandlerPanicError; the tree is still flushed.
func (r *Root) Dispatch(hid, event string) error {
	if r.unmounted {
		return ErrUnmounted
	}
	if r.root == nil {
		return ErrNotMounted
	}
	if r.handlers == nil {
		r.Tree()
	}

	key := hid + "_on" + strings.ToLower(event)
	fn, ok := r.handlers[key]
	if !ok {
		r.logger.Warn("handler not found", "hid", hid, "event", event)
		return fmt.Errorf("%w: %s %s", ErrHandlerNotFound, hid, event)
	}

	err := r.safeExecute(hid, event, fn)
	r.Flush()
	return err
}

func (r *Root) safeExecute(hid, event string, fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			stack := debug.Stack()
			r.logger.Error("handler panic",
				"panic", rec,
				"hid", hid,
				"event", event,
				"stack", string(stack))
			err = &HandlerPanicError{HID: hid, Event: event, Value: rec, Stack: stack}
		}
	}()

	reactive.Batch(fn)
	return nil
}

// Unmount disposes the whole tree. The Root can be mounted again afterwards.
func (r *Root) Unmount() {
	if r.root != nil {
		r.root.dispose()
		r.root = nil
	}
	r.queue = nil
	r.handlers = nil
	r.unmounted = true
	r.logger.Debug("unmounted root", "instances", r.instances)
}

// Stats is a snapshot of tree counters.
type Stats struct {
	Instances int
	Renders   int
	Pending   int
}

// Stats returns live instance count, total renders and pending re-renders.
func (r *Root) Stats() Stats {
	return Stats{
		Instances: r.instances,
		Renders:   r.renders,
		Pending:   len(r.queue),
	}
}
