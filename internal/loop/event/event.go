// Package event defines the value types that flow through the loop:
// the Event describing one unit of work and the Result produced by
// running its handler.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event describes one dispatched unit of work.
// Events are immutable once created.
type Event struct {
	// Key identifies the handler to invoke. Callers generate unique keys,
	// typically "<kind>-<sequence>".
	Key string

	// Payload is the opaque input passed to the handler.
	Payload string

	// Async selects the execution mode. It is chosen at dispatch time and
	// fixed for the event's lifetime: false runs the handler on the loop
	// goroutine, true hands it to a worker.
	Async bool

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time
}

// New creates an event with generated metadata.
func New(key, payload string, async bool) Event {
	return Event{
		Key:     key,
		Payload: payload,
		Async:   async,
		Metadata: Metadata{
			ID:        uuid.New().String(),
			Timestamp: time.Now(),
		},
	}
}

// Result is the outcome of one handler invocation, correlated back to the
// originating event by key. Results are immutable once created.
type Result struct {
	// Key is copied from the originating event. It is used only for
	// correlation and printing; uniqueness is not enforced here.
	Key string

	// Value is the string produced by the handler. Empty when Err is set.
	Value string

	// Err is the failure captured from the handler, if any. Capturing the
	// error into the result keeps asynchronous failures observable instead
	// of losing them with the worker.
	Err error
}

// NewResult creates a successful result.
func NewResult(key, value string) Result {
	return Result{Key: key, Value: value}
}

// NewErrorResult creates a result carrying a handler failure.
func NewErrorResult(key string, err error) Result {
	return Result{Key: key, Err: err}
}

// Failed reports whether the result carries a handler failure.
func (r Result) Failed() bool {
	return r.Err != nil
}
