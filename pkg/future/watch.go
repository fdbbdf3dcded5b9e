package future

import "errors"

// Watch bridges a handle into a step-driven scheduler. The returned step
// polls the handle once per invocation and reports false while the outcome
// is pending. When the value, abort, or closure arrives, fn observes it
// exactly once and every later invocation reports true immediately.
//
// The step is meant for single-goroutine schedulers and is not safe for
// concurrent invocation. A handle drained elsewhere keeps the step pending
// forever; give each handle one consumer.
func Watch[T any](f *Future[T], fn func(T, error)) func() bool {
	if fn == nil {
		panic("future: nil watch callback")
	}

	finished := false
	return func() bool {
		if finished {
			return true
		}

		v, err := f.Poll()
		if errors.Is(err, ErrNotReady) {
			return false
		}

		finished = true
		fn(v, err)
		return true
	}
}
