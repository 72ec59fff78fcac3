package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
	CategoryProtocol Category = "protocol"
	CategoryRuntime  Category = "runtime"
)

// TallyError is a structured error with a registered code.
type TallyError struct {
	// Code is a unique error identifier (e.g., "T101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TallyError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TallyError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a TallyError with the same code, so
// errors.Is(err, errors.New("T101")) matches any T101.
func (e *TallyError) Is(target error) bool {
	t, ok := target.(*TallyError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithDetail replaces the registered detail.
func (e *TallyError) WithDetail(d string) *TallyError {
	e.Detail = d
	return e
}

// WithDetailf replaces the registered detail with a formatted one.
func (e *TallyError) WithDetailf(format string, args ...any) *TallyError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TallyError) WithSuggestion(s string) *TallyError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *TallyError) Wrap(err error) *TallyError {
	e.Wrapped = err
	return e
}

// New creates a TallyError from a registered error code.
func New(code string) *TallyError {
	template, ok := registry[code]
	if !ok {
		return &TallyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TallyError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates an uncoded TallyError with a formatted message.
func Newf(category Category, format string, args ...any) *TallyError {
	return &TallyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError returns err as a TallyError. An error that already contains a
// TallyError yields that error; anything else is wrapped under code.
func FromError(err error, code string) *TallyError {
	if err == nil {
		return nil
	}
	var te *TallyError
	if stderrors.As(err, &te) {
		return te
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first TallyError in err's chain, or "".
func CodeOf(err error) string {
	var te *TallyError
	if stderrors.As(err, &te) {
		return te.Code
	}
	return ""
}
