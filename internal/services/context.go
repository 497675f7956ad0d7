package services

import "context"

type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	collectionKey contextKey = "collection"
)

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithCollection annotates context with the feed collection key being fetched.
func WithCollection(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, collectionKey, key)
}

// CollectionFromContext returns the collection key if present.
func CollectionFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(collectionKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
