package services

import "context"

type contextKey string

const (
	commandKey   contextKey = "command"
	draftIDKey   contextKey = "draft_id"
	requestIDKey contextKey = "request_id"
)

// WithCommand annotates context with the CLI command name.
func WithCommand(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, commandKey, name)
}

// CommandFromContext returns the command name if present.
func CommandFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(commandKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithDraftID annotates context with the draft being operated on.
func WithDraftID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, draftIDKey, id)
}

// DraftIDFromContext extracts the draft identifier if present.
func DraftIDFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(draftIDKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	default:
		return 0, false
	}
}

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
