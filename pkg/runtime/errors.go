package runtime

import "errors"

var (
	// ErrHandlerNotFound is returned by Dispatch when no handler is bound to
	// the HID and event type.
	ErrHandlerNotFound = errors.New("runtime: handler not found")

	// ErrNotMounted is returned when an operation needs a mounted tree.
	ErrNotMounted = errors.New("runtime: root not mounted")

	// ErrUnmounted is returned after Unmount.
	ErrUnmounted = errors.New("runtime: root unmounted")
)

// HandlerPanicError wraps a panic recovered from an event handler.
type HandlerPanicError struct {
	HID   string
	Event string
	Value any
	Stack []byte
}

func (e *HandlerPanicError) Error() string {
	return "runtime: handler for " + e.HID + " " + e.Event + " panicked"
}
