package logger

import (
	"context"
)

// ContextKey is used for context values
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// CallerKey is the context key for the name of the calling component
	CallerKey ContextKey = "caller"
)

// WithContextValue adds a value to the context for logging
func WithContextValue(ctx context.Context, key ContextKey, value any) context.Context {
	return context.WithValue(ctx, key, value)
}

// ExtractContextValues extracts logging-relevant values from context
func ExtractContextValues(ctx context.Context) []any {
	return appendContextArgs(ctx)
}

func appendContextArgs(ctx context.Context, args ...any) []any {
	if ctx == nil {
		return args
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		args = append(args, "request_id", requestID)
	}

	if caller, ok := ctx.Value(CallerKey).(string); ok {
		args = append(args, "caller", caller)
	}

	return args
}
