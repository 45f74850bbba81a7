// Package correlation carries the per-request correlation ID on a context.
package correlation

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// WithID returns a copy of ctx carrying id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// ID returns the ID stored by WithID, or "".
func ID(ctx context.Context) string {
	v, _ := ctx.Value(contextKey{}).(string)
	return v
}

// Logger tags base with the context's correlation ID when one is present.
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	if id := ID(ctx); id != "" {
		return base.With(zap.String("correlation_id", id))
	}
	return base
}
