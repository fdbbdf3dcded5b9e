// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package standardises structured logging across the toolkit by exposing
// a single factory, New, that creates a *slog.Logger configured by a set of
// Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from
//     a context value every time Handle is invoked.
//
// # Architecture
//
// New picks the concrete slog.Handler implementation, slog.NewTextHandler or
// slog.NewJSONHandler, based on the configured Format, then wraps it with
// ContextHandler which runs any registered ContextExtractor callbacks before
// delegating to the underlying handler.
//
// Helper constructors such as Group, Error, Panic and Trace live in attr.go
// and return commonly-used slog.Attr instances to keep attribute naming
// consistent across the codebase. Panic and Trace exist for recover paths
// where a worker or step failure has to be reported with its stack.
//
// # Usage
//
//	import "github.com/dmitrymomot/asynckit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("report-worker"),
//	        logger.WithContextExtractors(environment.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    f := future.Go(buildReport, future.WithLogger(log))
//	    // ...
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   - WithDevelopment / WithStaging / WithProduction – sensible defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel – set a custom slog.Level.
//   - WithAttr – attach static attributes.
//   - WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Helper functions Error, Errors and Panic produce attributes only when the
// supplied value is non-nil allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
