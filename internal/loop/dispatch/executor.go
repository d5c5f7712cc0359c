package dispatch

import (
	"runtime/debug"
	"time"

	"github.com/tickloop/tickloop/internal/loop/registry"
)

// Executor runs a single handler with wall-clock timing and panic
// recovery. It is shared by the synchronous path and every worker.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets the panic handler for the executor.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		if h != nil {
			e.panicHandler = h
		}
	}
}

// execution is the raw outcome of one handler invocation, before the
// Dispatcher shapes it for the sync or async path.
type execution struct {
	value      string
	err        error
	panicked   bool
	panicValue any
	panicStack []byte
	duration   time.Duration
}

// run invokes handler with payload, timing the call and recovering any
// panic. The panic handler itself is protected; a panic inside it is
// swallowed rather than allowed to crash the process.
func (e *Executor) run(key, payload string, handler registry.Handler) (res execution) {
	start := time.Now()

	defer func() {
		res.duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			res.panicked = true
			res.panicValue = r
			res.panicStack = stack
			res.err = &PanicError{Key: key, Value: r, Stack: stack}

			if e.panicHandler != nil {
				func() {
					defer func() { _ = recover() }()
					e.panicHandler(key, r, stack)
				}()
			}
		}
	}()

	value, err := handler(payload)
	if err != nil {
		res.err = &HandlerError{Key: key, Err: err}
		return res
	}

	res.value = value
	return res
}
