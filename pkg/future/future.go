package future

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asynckit/pkg/logger"
)

// Future is a one-shot pollable handle for a computation running on its own
// worker goroutine. A handle created with New stays idle until the first
// Poll or Await launches the worker; Go launches it immediately.
//
// The zero value is not usable; construct handles with New or Go.
type Future[T any] struct {
	id  uuid.UUID
	cfg *config

	mu      sync.Mutex
	fn      func() T
	started bool
	closed  bool
	abort   error

	result *cell[T]
	done   chan struct{}
}

// New returns a lazy handle: the computation does not run until the first
// Poll or Await. Use Go to launch immediately.
//
// New panics on a nil computation.
func New[T any](fn func() T, opts ...Option) *Future[T] {
	if fn == nil {
		panic("future: nil computation")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newNoopLogger()
	}

	return &Future[T]{
		id:     uuid.New(),
		cfg:    cfg,
		fn:     fn,
		result: &cell[T]{},
		done:   make(chan struct{}),
	}
}

// Go returns a handle whose computation is already launched. The worker may
// even have finished by the time Go returns.
func Go[T any](fn func() T, opts ...Option) *Future[T] {
	f := New(fn, opts...)
	f.start()
	return f
}

// start launches the worker at most once, taking ownership of the
// computation out of the slot. Safe for concurrent callers; late starts on
// a closed handle are ignored.
func (f *Future[T]) start() {
	f.mu.Lock()
	if f.started || f.closed {
		f.mu.Unlock()
		return
	}
	f.started = true
	fn := f.fn
	f.fn = nil
	f.mu.Unlock()

	workerStarted.Inc()
	f.cfg.logger.Debug("future worker launched",
		slog.String("future_id", f.id.String()),
		slog.String("name", f.cfg.name))

	go f.work(fn)
}

// work runs the computation and hands the value over through the cell.
// done is closed after the outcome is recorded so waiters always observe it.
func (f *Future[T]) work(fn func() T) {
	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			f.mu.Lock()
			f.abort = AbortError{Panic: r}
			f.mu.Unlock()

			workerAborted.Inc()
			f.cfg.logger.Error("future computation panicked",
				slog.String("future_id", f.id.String()),
				slog.String("name", f.cfg.name),
				logger.Panic(r),
				logger.Trace())
		}
	}()

	if f.cfg.osThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	v := fn()

	if f.result.put(v) {
		resultDelivered.Inc()
		return
	}

	// The handle was closed while the computation ran; the value has nowhere
	// to go. Not fatal for the worker.
	deliveryFailed.Inc()
	f.cfg.logger.Warn("future result discarded, handle closed",
		slog.String("future_id", f.id.String()),
		slog.String("name", f.cfg.name))
}

// Poll checks for the result without blocking. The first call on a lazy
// handle launches the worker. Poll returns the value exactly once; before it
// arrives and on every call after it was consumed, Poll returns ErrNotReady.
// A panicked computation yields an AbortError, a closed handle ErrClosed.
func (f *Future[T]) Poll() (T, error) {
	var zero T

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return zero, ErrClosed
	}
	if f.abort != nil {
		abort := f.abort
		f.mu.Unlock()
		return zero, abort
	}
	started := f.started
	f.mu.Unlock()

	if !started {
		f.start()
	}

	v, ok, _ := f.result.take()
	if !ok {
		return zero, ErrNotReady
	}
	return v, nil
}

// Await blocks until the outcome is available or ctx ends, launching a lazy
// computation first. Await consumes the value the same way Poll does; a
// second Await returns ErrDrained. The ctx bounds the wait only, never the
// computation itself.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	var zero T

	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed {
		return zero, ErrClosed
	}

	f.start()

	select {
	case <-f.done:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return zero, ErrClosed
	}
	if f.abort != nil {
		abort := f.abort
		f.mu.Unlock()
		return zero, abort
	}
	f.mu.Unlock()

	v, ok, consumed := f.result.take()
	if !ok {
		if consumed {
			return zero, ErrDrained
		}
		return zero, ErrClosed
	}
	return v, nil
}

// Done exposes completion for select loops. The channel closes once the
// outcome is recorded: value delivered, computation aborted, or the handle
// closed before launch. Done never launches a lazy computation.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// State reports the current lifecycle position. It is a snapshot; by the
// time the caller acts on it the handle may have advanced.
func (f *Future[T]) State() State {
	f.mu.Lock()
	closed := f.closed
	aborted := f.abort != nil
	started := f.started
	f.mu.Unlock()

	switch {
	case closed:
		return StateClosed
	case aborted:
		return StateAborted
	case !started:
		return StateNotStarted
	}

	switch f.result.status() {
	case cellFull:
		return StateReady
	case cellConsumed:
		return StateDrained
	default:
		return StateRunning
	}
}

// Close abandons the handle. A computation that never started will not
// start; a running one keeps going to completion, its value is discarded at
// delivery and the discard is logged. Close is idempotent and never blocks.
func (f *Future[T]) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	started := f.started
	f.fn = nil
	f.mu.Unlock()

	f.result.close()

	if !started {
		// No worker will ever report; release waiters here.
		close(f.done)
	}
	return nil
}

// ID returns the identity assigned at construction.
func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

// Name returns the diagnostic label, empty unless WithName was used.
func (f *Future[T]) Name() string {
	return f.cfg.name
}
