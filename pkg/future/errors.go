package future

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned by Poll while no value is available: before the
	// computation finishes, and again on every poll after the value was
	// consumed.
	ErrNotReady = errors.New("future: result not ready")

	// ErrDrained is returned by Await when the value was already consumed by
	// an earlier Poll or Await.
	ErrDrained = errors.New("future: result already consumed")

	// ErrClosed is returned once Close abandoned the handle.
	ErrClosed = errors.New("future: handle closed")

	// ErrAborted marks a computation that panicked instead of returning.
	// Matched via errors.Is against the AbortError returned by Poll and Await.
	ErrAborted = errors.New("future: computation aborted")

	// ErrNoFutures is returned by AwaitAll and AwaitAny when called with an
	// empty futures slice.
	ErrNoFutures = errors.New("future: no futures provided")
)

// AbortError reports that the computation panicked. It carries the recovered
// panic value and unwraps to ErrAborted.
type AbortError struct {
	Panic any
}

func (e AbortError) Error() string {
	return fmt.Sprintf("future: computation aborted by panic: %v", e.Panic)
}

func (e AbortError) Unwrap() error {
	return ErrAborted
}
