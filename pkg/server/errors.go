package server

import (
	stderrors "errors"

	"github.com/vango-dev/tally/internal/errors"
	"github.com/vango-dev/tally/pkg/runtime"
)

// Sentinels for errors.Is. Errors returned by the server are fresh values
// carrying the same code.
var (
	// ErrMalformedFrame is returned for frames that are not valid events.
	ErrMalformedFrame = errors.New("T301")

	// ErrUnknownEvent is returned for unsupported event types.
	ErrUnknownEvent = errors.New("T302")

	// ErrEventQueueFull is returned by QueueEvent when the buffer is full.
	ErrEventQueueFull = errors.New("T303")

	// ErrSessionClosed is returned by QueueEvent after Close.
	ErrSessionClosed = errors.New("T402")
)

// dispatchCode maps a runtime.Dispatch error to a protocol error code.
func dispatchCode(err error) string {
	var panicErr *runtime.HandlerPanicError
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, runtime.ErrHandlerNotFound):
		return "T304"
	case stderrors.As(err, &panicErr):
		return "T401"
	default:
		return "T402"
	}
}
