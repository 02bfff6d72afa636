package recommend

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "recommend_request_id"

// WithRequestID attaches a request id to the context. The HTTP service
// sends it as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom extracts the request id from the context, or "" if none.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ensureRequestID returns ctx carrying a request id, minting one if needed.
func ensureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFrom(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
