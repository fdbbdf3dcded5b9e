package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor that surfaces the environment
// as an "env" attribute, ready for the logger package's WithContextExtractors.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
