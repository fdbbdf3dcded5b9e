package future

import "log/slog"

// Option configures a handle at construction time.
type Option func(*config)

type config struct {
	name     string
	logger   *slog.Logger
	osThread bool
}

func defaultConfig() *config {
	return &config{}
}

// WithName attaches a human-readable label used in log attributes.
func WithName(name string) Option {
	if name == "" {
		panic("WithName: name cannot be empty")
	}
	return func(c *config) { c.name = name }
}

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithOSThread pins the worker goroutine to a dedicated OS thread for the
// duration of the computation. Useful when the computation relies on
// thread-local state or calls into libraries that require it.
func WithOSThread() Option {
	return func(c *config) { c.osThread = true }
}
