package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/octogate/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns the request ID carried by ctx. When ctx has none, a
// fresh ID is generated and returned together with a context holding it.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, WithRequestID(ctx, newID)
}

// WithRequestID binds id to ctx, e.g. an ID received from an upstream proxy.
// Audit rows and access logs of the request carry it.
func WithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

type ctxLoggerKey struct{}

// With binds a request scoped logger to ctx.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger bound to ctx, or the default logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}

// TimeFunc supplies the current time. Tests pin audit timestamps with it.
type TimeFunc func() time.Time

// CtxTime returns the time given by the clock bound to ctx, or time.Now.
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}
