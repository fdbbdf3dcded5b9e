// Package environment provides simple helpers to propagate the current
// application environment (development, staging, production, etc.) through
// context.Context and structured logs.
//
// It defines the typed string alias Environment with predefined constants
// Development, Staging and Production. These values can be attached to a
// context using WithContext, extracted with FromContext and queried with the
// convenience predicates IsDevelopment, IsStaging and IsProduction.
//
// For structured logging the package provides LoggerExtractor which returns a
// context extractor producing an "env" attribute, ready to be registered via
// the logger package's WithContextExtractors option.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/asynckit/pkg/environment"
//
// Retrieve the environment from a context:
//
//	ctx := environment.WithContext(context.Background(), environment.Production)
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// Add the environment to every log record:
//
//	log := logger.New(
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "worker started")
//
// # Error Handling
//
// All helpers are designed to be allocation-free and never return errors.
// Missing values simply result in the zero value ("").
//
// See the function-level documentation for further details.
package environment
