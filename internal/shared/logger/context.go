package logger

import (
	"context"
	"log/slog"
)

type ctxLoggerKey struct{}

// WithLogger stores l in ctx; services pick it up with FromContext
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}

// FromContext returns the request-scoped logger, falling back to slog.Default()
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// With binds extra attributes to the context logger, e.g.
//
//	ctx = logger.With(ctx, "member_id", memberID)
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
