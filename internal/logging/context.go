package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// contextKey is unexported so no other package can collide with the
// logger entry.
type contextKey struct{}

//nolint:gochecknoglobals // Context keys are package globals by convention.
var loggerKey = contextKey{}

// FromContext returns the logger carried by ctx. A nil ctx, or one
// without a logger attached, falls back to the package default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	logger, ok := ctx.Value(loggerKey).(*log.Logger)
	if !ok || logger == nil {
		return Default()
	}
	return logger
}

// WithLogger attaches logger to ctx for FromContext to find.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}
