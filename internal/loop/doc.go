// Package loop implements a minimal single-threaded dispatch loop.
//
// A Loop accepts named units of work (events), binds each to a registered
// handler, and executes the handler either synchronously on the loop
// goroutine or on a background worker. Work advances in ticks: each call
// to Tick pops at most one pending event and runs it, then pops at most
// one completed result and prints it. Bounding the work per tick models a
// real event loop scheduler, which never lets a single iteration drain
// the entire queue.
//
// The Loop has no internal driving loop. An external driver must call
// Tick repeatedly to make progress:
//
//	l := loop.New()
//	l.On("greet-0", func(payload string) (string, error) {
//	    return "Hello! " + payload, nil
//	})
//	l.Dispatch(event.New("greet-0", "world", false))
//	l.Tick()
//
// Synchronous events produce their output within the same tick and block
// the loop for the handler's duration, which is measured and reported.
// Asynchronous events only pay the worker handoff cost within the tick;
// their output surfaces on whichever later tick finds the result queued.
package loop
