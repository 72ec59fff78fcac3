package reactive

// Context carries a typed value down the owner hierarchy.
// Values are provided on an owner and found by walking from an owner towards
// the root; the first owner holding a value for this context wins. When no
// owner does, the context's default value is returned.
type Context[T any] struct {
	key          any
	defaultValue T
}

// contextKey makes every Context's map key unique, even for equal T.
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a context with the given default value.
func CreateContext[T any](defaultValue T) *Context[T] {
	c := &Context[T]{defaultValue: defaultValue}
	c.key = contextKey[T]{ctx: c}
	return c
}

// Provide sets the value for the current owner's subtree.
// Outside a render it does nothing.
func (c *Context[T]) Provide(value T) {
	if owner := getCurrentOwner(); owner != nil {
		c.ProvideOn(owner, value)
	}
}

// ProvideOn sets the value for owner's subtree.
func (c *Context[T]) ProvideOn(owner *Owner, value T) {
	owner.SetValue(c.key, value)
}

// Use returns the value provided nearest to the current owner, or the default.
func (c *Context[T]) Use() T {
	return c.Lookup(getCurrentOwner())
}

// Lookup returns the value provided nearest to owner, or the default.
// A nil owner yields the default.
func (c *Context[T]) Lookup(owner *Owner) T {
	if owner == nil {
		return c.defaultValue
	}
	if v, ok := owner.LookupValue(c.key); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return c.defaultValue
}

// Default returns the default value.
func (c *Context[T]) Default() T {
	return c.defaultValue
}
