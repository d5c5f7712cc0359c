package dispatch

import "errors"

// Sentinel errors for the dispatch package.
var (
	// ErrNoHandler is returned when an event's key has no registered handler.
	ErrNoHandler = errors.New("no handler registered for key")

	// ErrHandlerPanic is returned when a handler panics during execution.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a handler with the event key it
// was running for.
type HandlerError struct {
	// Key is the event key whose handler failed.
	Key string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return "handler for " + e.Key + " failed: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic value recovered from a handler as an error.
type PanicError struct {
	// Key is the event key whose handler panicked.
	Key string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "handler for " + e.Key + " panicked"
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
