package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into a fresh configuration struct based
// on its field tags. Before the first parse in the process the default .env
// file is loaded once; a missing file is fine.
//
// Every call re-reads the process environment, so tests can combine Load
// with t.Setenv.
//
// Example:
//
//	type ExecutorConfig struct {
//		TickInterval time.Duration `env:"EXECUTOR_TICK_INTERVAL" envDefault:"1ms"`
//		MaxTasks     int           `env:"EXECUTOR_MAX_TASKS" envDefault:"0"`
//	}
//
//	cfg, err := config.Load[ExecutorConfig]()
//	if err != nil {
//		// Handle error
//	}
func Load[T any]() (T, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	cfg := config.MustLoad[ExecutorConfig]()
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// LoadEnv loads the given .env files into the process environment before any
// configs are parsed. Later files take precedence over earlier ones and over
// values already present in the environment. With no arguments it loads the
// default .env file.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics if loading fails.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}
