package executor

import (
	"log/slog"
	"time"
)

// Option configures the executor.
type Option func(*config)

// WithTickInterval sets how often the loop polls its steps.
func WithTickInterval(d time.Duration) Option {
	if d <= 0 {
		panic("WithTickInterval: duration must be > 0")
	}
	return func(c *config) { c.tickInterval = d }
}

// WithShutdownTimeout bounds the final sweep after the context is cancelled.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(c *config) { c.shutdownTimeout = d }
}

// WithMaxTasks caps the number of live steps; Add returns ErrCapacity beyond it.
func WithMaxTasks(n int) Option {
	if n <= 0 {
		panic("WithMaxTasks: n must be > 0")
	}
	return func(c *config) { c.maxTasks = n }
}

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
