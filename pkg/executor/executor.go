package executor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asynckit/pkg/logger"
)

// Step is one cooperative unit of polling work. The loop invokes it once per
// tick until it returns true, which retires it. Steps run on the loop
// goroutine and must not block.
type Step func() bool

type config struct {
	tickInterval    time.Duration
	shutdownTimeout time.Duration
	maxTasks        int
	logger          *slog.Logger
}

func defaultConfig() *config {
	return &config{
		tickInterval:    time.Millisecond,
		shutdownTimeout: 5 * time.Second,
	}
}

type entry struct {
	id   uuid.UUID
	name string
	step Step
}

// Executor drives registered steps from a single goroutine, polling each
// once per tick. Steps never run concurrently with each other, so they can
// share state without locking.
type Executor struct {
	id  uuid.UUID
	cfg *config

	mu      sync.Mutex
	pending []entry
	live    int
	running bool
	closed  bool
}

// New returns a configured Executor.
func New(opts ...Option) *Executor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newNoopLogger()
	}
	return &Executor{
		id:  uuid.New(),
		cfg: cfg,
	}
}

// Add stages a step for the next sweep. Steps can be added before Run and
// from inside running steps. After the loop exits Add returns ErrClosed.
func (e *Executor) Add(name string, step Step) error {
	if step == nil {
		return ErrNilStep
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.cfg.maxTasks > 0 && e.live >= e.cfg.maxTasks {
		return ErrCapacity
	}

	en := entry{id: uuid.New(), name: name, step: step}
	e.pending = append(e.pending, en)
	e.live++

	stepAdded.Inc()
	e.cfg.logger.Debug("step added",
		slog.String("executor_id", e.id.String()),
		slog.String("step_id", en.id.String()),
		slog.String("step", en.name))

	return nil
}

// Len reports the number of live steps: staged plus admitted but unfinished.
func (e *Executor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live
}

// Run drives the loop until ctx is cancelled, then sweeps the remaining
// steps for at most the shutdown timeout and returns nil. The executor is
// single-use: a second Run returns ErrAlreadyRunning while the loop is
// active and ErrClosed after it exited.
func (e *Executor) Run(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if e.running {
		e.mu.Unlock()
		return ErrAlreadyRunning
	}
	e.running = true
	e.mu.Unlock()

	e.cfg.logger.Info("executor started",
		slog.String("executor_id", e.id.String()),
		slog.Duration("tick_interval", e.cfg.tickInterval),
		slog.Int("max_tasks", e.cfg.maxTasks))

	ticker := time.NewTicker(e.cfg.tickInterval)
	defer ticker.Stop()

	var active []entry
	for {
		select {
		case <-ctx.Done():
			active = e.drain(active)

			e.mu.Lock()
			e.closed = true
			e.running = false
			abandoned := e.live
			e.mu.Unlock()

			if abandoned > 0 {
				e.cfg.logger.Warn("executor stopped with unfinished steps",
					slog.String("executor_id", e.id.String()),
					slog.Int("abandoned", abandoned))
			} else {
				e.cfg.logger.Info("executor stopped",
					slog.String("executor_id", e.id.String()))
			}
			return nil
		case <-ticker.C:
			active = e.sweep(active)
		}
	}
}

// sweep admits staged steps, polls every active one once, and keeps the
// unfinished. Runs on the loop goroutine only.
func (e *Executor) sweep(active []entry) []entry {
	e.mu.Lock()
	if len(e.pending) > 0 {
		active = append(active, e.pending...)
		e.pending = nil
	}
	e.mu.Unlock()

	kept := active[:0]
	for _, en := range active {
		if e.invoke(en) {
			e.mu.Lock()
			e.live--
			e.mu.Unlock()
			continue
		}
		kept = append(kept, en)
	}
	return kept
}

// invoke runs one step and reports whether it finished. A panicking step is
// retired so the loop survives it.
func (e *Executor) invoke(en entry) (finished bool) {
	defer func() {
		if r := recover(); r != nil {
			finished = true
			stepPanicked.Inc()
			e.cfg.logger.Error("step panicked",
				slog.String("executor_id", e.id.String()),
				slog.String("step_id", en.id.String()),
				slog.String("step", en.name),
				logger.Panic(r),
				logger.Trace())
		}
	}()

	if en.step() {
		finished = true
		stepCompleted.Inc()
		e.cfg.logger.Debug("step finished",
			slog.String("executor_id", e.id.String()),
			slog.String("step_id", en.id.String()),
			slog.String("step", en.name))
	}
	return finished
}

// drain keeps sweeping until every live step finishes or the shutdown
// timeout expires. Steps still pending at the deadline are abandoned.
func (e *Executor) drain(active []entry) []entry {
	deadline := time.Now().Add(e.cfg.shutdownTimeout)
	for {
		active = e.sweep(active)

		e.mu.Lock()
		n := e.live
		e.mu.Unlock()
		if n == 0 || !time.Now().Before(deadline) {
			return active
		}

		time.Sleep(e.cfg.tickInterval)
	}
}
