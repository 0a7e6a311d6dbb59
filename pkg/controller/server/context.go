package server

import (
	"context"

	"github.com/m-mizutani/octogate/pkg/domain/types"
)

type ctxCallerKey struct{}

// ctxWithCaller returns a context carrying the authenticated caller.
func ctxWithCaller(ctx context.Context, caller types.CallerID) context.Context {
	return context.WithValue(ctx, ctxCallerKey{}, caller)
}

// CallerFromContext returns the caller set by the identity middleware, or an
// empty ID when the request was not authenticated.
func CallerFromContext(ctx context.Context) types.CallerID {
	if caller, ok := ctx.Value(ctxCallerKey{}).(types.CallerID); ok {
		return caller
	}
	return ""
}
