// Package dispatch executes events popped from the loop's pending queue.
//
// The Dispatcher looks up the handler for an event and runs it on one of
// two paths:
//
//   - Synchronous: the handler runs on the calling goroutine, blocking the
//     loop for the handler's full execution time. The measured duration is
//     that blocking time and the produced value is delivered immediately
//     in the Outcome.
//
//   - Asynchronous: the handler is handed to a worker goroutine that is
//     never awaited. The measured duration covers only the handoff. The
//     worker pushes a Result onto the completed queue when the handler
//     finishes, and a later tick surfaces it.
//
// # Panic Recovery
//
// Handlers are executed with panic recovery on both paths, so a
// misbehaving handler cannot take down the loop or leak a worker
// goroutine's panic into the process. Panics are reported via a
// configurable PanicHandler callback and surface as PanicError-valued
// failures.
//
// # Failure Semantics
//
// A handler error or panic aborts only that invocation. On the
// synchronous path the failure is returned in the Outcome; on the
// asynchronous path it is captured into the Result pushed to the
// completed queue, so failures are observed on a later tick rather than
// lost with the worker.
package dispatch
