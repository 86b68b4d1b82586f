// Package ctxlog carries a *slog.Logger through a context.Context so that
// command handlers and the algorithms they drive log with the same
// attributes (run id, command name).
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

type key struct{}

var loggerKey = key{}

// discard is returned when no logger was attached.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a copy of ctx carrying logger. A nil logger leaves ctx
// unchanged.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or a logger that drops
// every record when there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
			return logger
		}
	}
	return discard
}

// With attaches attrs to the logger stored in ctx and returns the new
// context.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
