package dispatch

import (
	"sync/atomic"
	"time"

	"github.com/tickloop/tickloop/internal/loop/event"
	"github.com/tickloop/tickloop/internal/loop/queue"
	"github.com/tickloop/tickloop/internal/loop/registry"
)

// Dispatcher executes one event end-to-end: handler lookup, the
// synchronous/asynchronous decision, and the worker handoff. It measures
// how long the calling goroutine was occupied in either case.
type Dispatcher struct {
	executor *Executor

	// Stats
	dispatched  atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	noHandler   atomic.Uint64
	async       atomic.Uint64
	totalTimeNs atomic.Int64
}

// New creates a new dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		executor: NewExecutor(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPanicHandler sets the panic handler for handler execution on both
// paths.
func WithPanicHandler(h PanicHandler) Option {
	return func(d *Dispatcher) {
		d.executor = NewExecutor(WithExecutorPanicHandler(h))
	}
}

// RunOne executes a single event and returns the outcome.
//
// If no handler is registered for the event's key the outcome reports
// NoHandler and the event is dropped; this is never fatal.
//
// On the synchronous path the handler runs on the calling goroutine and
// the outcome's Duration is the time the caller was blocked. On the
// asynchronous path the handler is handed to a worker goroutine that
// pushes its Result onto completed when done; the outcome's Duration
// covers only the handoff and the worker is never awaited.
func (d *Dispatcher) RunOne(evt event.Event, reg *registry.Registry, completed *queue.Queue[event.Result]) Outcome {
	d.dispatched.Add(1)

	handler, ok := reg.Lookup(evt.Key)
	if !ok {
		d.noHandler.Add(1)
		return Outcome{Key: evt.Key, NoHandler: true}
	}

	if evt.Async {
		return d.runAsync(evt, handler, completed)
	}
	return d.runSync(evt, handler)
}

// runSync executes the handler on the calling goroutine, blocking it for
// the handler's full duration.
func (d *Dispatcher) runSync(evt event.Event, handler registry.Handler) Outcome {
	res := d.executor.run(evt.Key, evt.Payload, handler)

	d.record(res)

	return Outcome{
		Key:        evt.Key,
		Value:      res.value,
		Err:        res.err,
		Panicked:   res.panicked,
		PanicValue: res.panicValue,
		PanicStack: res.panicStack,
		Duration:   res.duration,
	}
}

// runAsync hands the handler to a worker goroutine and returns without
// waiting for it. The worker pushes a Result onto completed when the
// handler finishes; failures and panics are captured into the Result so
// they surface on a later tick instead of vanishing with the worker.
func (d *Dispatcher) runAsync(evt event.Event, handler registry.Handler, completed *queue.Queue[event.Result]) Outcome {
	start := time.Now()

	go func() {
		res := d.executor.run(evt.Key, evt.Payload, handler)
		d.record(res)

		if res.err != nil {
			completed.Push(event.NewErrorResult(evt.Key, res.err))
			return
		}
		completed.Push(event.NewResult(evt.Key, res.value))
	}()

	d.async.Add(1)

	return Outcome{
		Key:      evt.Key,
		Async:    true,
		Duration: time.Since(start),
	}
}

// record updates stats from one handler execution.
func (d *Dispatcher) record(res execution) {
	d.totalTimeNs.Add(res.duration.Nanoseconds())

	switch {
	case res.panicked:
		d.panicked.Add(1)
	case res.err != nil:
		d.failed.Add(1)
	default:
		d.succeeded.Add(1)
	}
}

// Stats returns dispatch statistics.
// Values are read without a mutex and may be slightly inconsistent while
// workers are updating them concurrently.
func (d *Dispatcher) Stats() Stats {
	executed := d.succeeded.Load() + d.failed.Load() + d.panicked.Load()
	totalNs := d.totalTimeNs.Load()

	var avgNs int64
	if executed > 0 {
		avgNs = totalNs / int64(executed)
	}

	return Stats{
		Dispatched:    d.dispatched.Load(),
		Succeeded:     d.succeeded.Load(),
		Failed:        d.failed.Load(),
		Panicked:      d.panicked.Load(),
		NoHandler:     d.noHandler.Load(),
		Async:         d.async.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// ResetStats resets all statistics to zero.
func (d *Dispatcher) ResetStats() {
	d.dispatched.Store(0)
	d.succeeded.Store(0)
	d.failed.Store(0)
	d.panicked.Store(0)
	d.noHandler.Store(0)
	d.async.Store(0)
	d.totalTimeNs.Store(0)
}

// Stats contains statistics for a dispatcher.
type Stats struct {
	// Dispatched is the total number of RunOne calls.
	Dispatched uint64

	// Succeeded is the number of successful handler executions.
	Succeeded uint64

	// Failed is the number of handlers that returned errors.
	Failed uint64

	// Panicked is the number of handlers that panicked.
	Panicked uint64

	// NoHandler is the number of events dropped for lack of a handler.
	NoHandler uint64

	// Async is the number of events handed to workers.
	Async uint64

	// TotalDuration is the cumulative time spent inside handlers,
	// including handler time on worker goroutines.
	TotalDuration time.Duration

	// AvgDuration is the average handler execution time.
	AvgDuration time.Duration
}
