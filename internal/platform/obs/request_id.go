package obs

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// NewRequestID creates a new unique request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request ID stored in ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
