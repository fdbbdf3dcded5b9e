// Package future converts a blocking computation into a non-blocking,
// pollable handle backed by a dedicated worker goroutine.
//
// The package is centred around the generic type Future that represents the
// eventual result of a one-shot computation.  A handle is obtained lazily
// with New, which defers the launch until the first Poll or Await, or
// eagerly with Go, which launches the worker before returning.  The caller
// then drains the outcome with the non-blocking Poll, blocks on Await, or
// integrates the handle into a select loop through Done.
//
// Poll implements a strict handoff: the value is returned exactly once.
// Before the worker finishes, and again on every call after the value was
// consumed, Poll reports ErrNotReady. This makes tight polling loops safe:
// a caller that polls until the first value and then keeps polling simply
// keeps observing a pending handle.
//
//   - Lazy vs eager – New never spends resources until polled; Go is for
//     work that should overlap with the caller immediately.
//
//   - One worker per handle – the computation is taken out of the handle
//     exactly once, at launch, so rapid or concurrent polls cannot start it
//     twice.
//
//   - Abandonment – Close marks the handle closed without interrupting a
//     running worker. A value that arrives afterwards is discarded and the
//     discard is logged through the configured slog.Logger.
//
//   - Aborts – a panicking computation does not hang its pollers: the panic
//     is recovered, logged with a stack trace, and surfaced as an AbortError
//     on the next Poll or Await.
//
// In addition to operating on a single handle, AwaitAll and AwaitAny
// coordinate several concurrent computations, and Watch adapts a handle
// into a step function for cooperative schedulers such as pkg/executor.
//
// # Usage
//
//	import (
//	    "fmt"
//	    "time"
//
//	    "github.com/dmitrymomot/asynckit/pkg/future"
//	)
//
//	func main() {
//	    f := future.New(func() int {
//	        time.Sleep(50 * time.Millisecond)
//	        return 42
//	    })
//
//	    for {
//	        if v, err := f.Poll(); err == nil {
//	            fmt.Println("got", v)
//	            break
//	        }
//	        time.Sleep(time.Millisecond)
//	    }
//	}
//
// # Errors
//
// Poll and Await return package sentinel errors: ErrNotReady while pending
// or drained, ErrDrained from Await after the value was consumed, ErrClosed
// after Close, and an AbortError (matching ErrAborted via errors.Is) when
// the computation panicked. The computation itself has no error channel; it
// returns a single value, and callers that need a failure path encode it in
// the value type.
//
// # Performance Considerations
//
// Each handle owns exactly one goroutine, started at most once. Poll takes
// two short mutex sections and never blocks on the worker, so it is cheap
// enough to call on every iteration of a scheduler loop. WithOSThread pins
// the worker to an OS thread and should be reserved for computations that
// genuinely need one.
//
// See the individual function-level comments for additional details and
// behaviour guarantees.
package future
