// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     scenarios where configuration is critical.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type ExecutorConfig struct {
//	    TickInterval    time.Duration `env:"EXECUTOR_TICK_INTERVAL" envDefault:"1ms"`
//	    ShutdownTimeout time.Duration `env:"EXECUTOR_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	    MaxTasks        int           `env:"EXECUTOR_MAX_TASKS" envDefault:"0"`
//	}
//
// Load the default `.env` file (optional) then populate the struct:
//
//	import "github.com/dmitrymomot/asynckit/pkg/config"
//
//	func main() {
//	    // Optionally load one or many custom .env files before parsing.
//	    if err := config.LoadEnv("./config/.env" /* more files ... */); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    cfg, err := config.Load[ExecutorConfig]()
//	    if err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//
//	    // cfg is now populated.
//	}
//
// Every call to Load re-reads the process environment, so configs stay in sync
// with t.Setenv in tests and with late env-file loads.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrLoadingEnv`    – an .env file could not be loaded.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
