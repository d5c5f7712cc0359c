package dispatch

import "time"

// Outcome represents the loop-side result of dispatching one event.
type Outcome struct {
	// Key is the event key that was dispatched.
	Key string

	// Value is the value produced by a synchronous handler. Empty on the
	// asynchronous path, where the value travels through the completed
	// queue instead.
	Value string

	// Err is the error from a synchronous handler, if any.
	Err error

	// Panicked is true if a synchronous handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the calling goroutine was occupied: the
	// handler's full execution time on the synchronous path, the handoff
	// cost on the asynchronous path.
	Duration time.Duration

	// NoHandler is true if the event's key had no registered handler.
	NoHandler bool

	// Async is true if the handler was handed to a worker.
	Async bool
}

// IsSuccess returns true if a handler ran (or was handed off) without
// error or panic.
func (o Outcome) IsSuccess() bool {
	return !o.NoHandler && !o.Panicked && o.Err == nil
}

// IsError returns true if the handler returned an error (not a panic).
func (o Outcome) IsError() bool {
	return o.Err != nil && !o.Panicked
}

// IsPanic returns true if the handler panicked.
func (o Outcome) IsPanic() bool {
	return o.Panicked
}

// PanicHandler is called when a handler panics during execution. It
// receives the event key, the panic value, and the stack trace.
type PanicHandler func(key string, panicValue any, stack []byte)

// defaultPanicHandler is a no-op panic handler. The panic still surfaces
// as a PanicError on the relevant result path.
func defaultPanicHandler(key string, panicValue any, stack []byte) {}
