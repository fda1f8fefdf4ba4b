package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

// GetRequestIDFromContext returns the correlation id set by the RequestID middleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	id, ok := val.(string)
	return id, ok && id != ""
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
