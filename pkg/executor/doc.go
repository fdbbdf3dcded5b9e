// Package executor provides a minimal cooperative scheduler that drives
// non-blocking steps from a single goroutine.
//
// The core type is Executor, a tick-driven loop that polls every registered
// Step once per tick until the step reports completion. Because all steps
// run on the loop goroutine, they never race each other and can share state
// without locking; in exchange they must return quickly and never block.
//
//   - Registration – Add stages a step under a diagnostic name. Steps can be
//     added before Run and from within running steps, which makes chained
//     workflows possible.
//
//   - Lifecycle – Run blocks until the context is cancelled, then keeps
//     sweeping the remaining steps for at most the shutdown timeout so
//     in-flight work can settle. The loop is single-use.
//
//   - Isolation – a panicking step is retired and logged with a stack trace;
//     the loop and the other steps keep running.
//
//   - Capacity – WithMaxTasks bounds the number of live steps; Add reports
//     ErrCapacity beyond the bound instead of queueing unboundedly.
//
// The package pairs with pkg/future: future.Watch adapts a pollable handle
// into a Step, which turns the executor into the host loop for blocking
// computations offloaded to worker goroutines.
//
// # Usage
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/dmitrymomot/asynckit/pkg/executor"
//	    "github.com/dmitrymomot/asynckit/pkg/future"
//	)
//
//	func main() {
//	    exec := executor.New()
//
//	    f := future.New(loadReport)
//	    _ = exec.Add("report", future.Watch(f, func(r Report, err error) {
//	        fmt.Println("report ready:", r, err)
//	    }))
//
//	    ctx, cancel := context.WithCancel(context.Background())
//	    defer cancel()
//	    _ = exec.Run(ctx)
//	}
//
// # Errors
//
// Add returns ErrNilStep for a nil step, ErrCapacity at the live step limit,
// and ErrClosed after the loop exited. Run returns ErrAlreadyRunning while a
// Run is in progress and ErrClosed once the executor is spent. Use errors.Is
// to distinguish them.
//
// See the individual function-level comments for additional details and
// behaviour guarantees.
package executor
