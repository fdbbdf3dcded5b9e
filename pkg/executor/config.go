package executor

import "time"

type Config struct {
	TickInterval    time.Duration `env:"EXECUTOR_TICK_INTERVAL" envDefault:"1ms"`   // TickInterval is how often the loop polls its steps.
	ShutdownTimeout time.Duration `env:"EXECUTOR_SHUTDOWN_TIMEOUT" envDefault:"5s"` // ShutdownTimeout bounds the final sweep after cancellation.
	MaxTasks        int           `env:"EXECUTOR_MAX_TASKS" envDefault:"0"`         // MaxTasks caps live steps; 0 means unlimited.
}

// NewFromConfig creates a new Executor from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Executor {
	configOpts := make([]Option, 0, 3)

	if cfg.TickInterval > 0 {
		configOpts = append(configOpts, WithTickInterval(cfg.TickInterval))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	if cfg.MaxTasks > 0 {
		configOpts = append(configOpts, WithMaxTasks(cfg.MaxTasks))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
