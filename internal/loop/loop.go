package loop

import (
	"fmt"
	"io"
	"os"

	"github.com/tickloop/tickloop/internal/loop/dispatch"
	"github.com/tickloop/tickloop/internal/loop/event"
	"github.com/tickloop/tickloop/internal/loop/queue"
	"github.com/tickloop/tickloop/internal/loop/registry"
)

// Loop is a single-threaded dispatch loop. It owns its pending and
// completed queues and its handler registry; the registry and the
// completed queue are shared by reference with the workers the loop
// spawns, for lookup and result delivery only.
//
// Tick must not be called concurrently with itself. Dispatch and On are
// safe from any goroutine.
type Loop struct {
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	pending    *queue.Queue[event.Event]
	completed  *queue.Queue[event.Result]
	out        io.Writer
}

// Option configures a Loop.
type Option func(*loopConfig)

type loopConfig struct {
	out          io.Writer
	panicHandler dispatch.PanicHandler
}

// WithOutput sets the writer that tick reports are printed to.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *loopConfig) {
		if w != nil {
			c.out = w
		}
	}
}

// WithPanicHandler sets the callback invoked when a handler panics.
func WithPanicHandler(h dispatch.PanicHandler) Option {
	return func(c *loopConfig) {
		c.panicHandler = h
	}
}

// New creates a loop. Independent loops share no state, so a test
// harness can construct as many as it needs.
func New(opts ...Option) *Loop {
	cfg := loopConfig{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	var dopts []dispatch.Option
	if cfg.panicHandler != nil {
		dopts = append(dopts, dispatch.WithPanicHandler(cfg.panicHandler))
	}

	return &Loop{
		registry:   registry.New(),
		dispatcher: dispatch.New(dopts...),
		pending:    queue.New[event.Event](),
		completed:  queue.New[event.Result](),
		out:        cfg.out,
	}
}

// On registers handler under key, overwriting any existing entry. It
// returns the loop so registration and dispatch calls chain. A nil
// handler is rejected and reported, leaving the registry unchanged.
func (l *Loop) On(key string, handler registry.Handler) *Loop {
	if err := l.registry.Register(key, handler); err != nil {
		fmt.Fprintf(l.out, "cannot register handler for %s: %v\n", key, err)
	}
	return l
}

// Dispatch enqueues an event for a later tick. It never blocks.
func (l *Loop) Dispatch(evt event.Event) {
	l.pending.Push(evt)
}

// TickReport records what one tick did, for callers that want to inspect
// progress without scraping the printed output.
type TickReport struct {
	// Processed is true if a pending event was popped and run.
	Processed bool

	// Outcome is the dispatch outcome for the processed event.
	// Zero-valued when Processed is false.
	Outcome dispatch.Outcome

	// Delivered is true if a completed result was popped and printed.
	Delivered bool

	// Result is the delivered result. Zero-valued when Delivered is false.
	Result event.Result
}

// Tick advances the loop by one bounded step: it pops and runs at most
// one pending event, then pops and prints at most one completed result.
// Both probes are non-blocking; on empty queues Tick prints nothing and
// returns immediately. Tick never loops internally.
func (l *Loop) Tick() TickReport {
	var report TickReport

	if evt, ok := l.pending.Pop(); ok {
		report.Processed = true
		fmt.Fprintf(l.out, "received event: %s\n", evt.Key)

		outcome := l.dispatcher.RunOne(evt, l.registry, l.completed)
		report.Outcome = outcome

		if outcome.NoHandler {
			fmt.Fprintf(l.out, "no handler for %s\n", evt.Key)
		} else {
			if !outcome.Async {
				l.printResultLine(event.Result{Key: outcome.Key, Value: outcome.Value, Err: outcome.Err})
			}
			fmt.Fprintf(l.out, "event loop was blocked for %d ms\n", outcome.Duration.Milliseconds())
		}
	}

	if res, ok := l.completed.Pop(); ok {
		report.Delivered = true
		report.Result = res
		l.printResultLine(res)
	}

	return report
}

// printResultLine prints one handler outcome, success or failure. The
// error carries its own "handler for <key> failed" context from the
// dispatch wrappers.
func (l *Loop) printResultLine(res event.Result) {
	if res.Failed() {
		fmt.Fprintln(l.out, res.Err)
		return
	}
	fmt.Fprintf(l.out, "output for %s: %s\n", res.Key, res.Value)
}

// PendingLen returns the number of dispatched-but-not-yet-run events.
func (l *Loop) PendingLen() int {
	return l.pending.Len()
}

// CompletedLen returns the number of results awaiting output.
func (l *Loop) CompletedLen() int {
	return l.completed.Len()
}

// Stats returns dispatch statistics accumulated by this loop.
func (l *Loop) Stats() dispatch.Stats {
	return l.dispatcher.Stats()
}
