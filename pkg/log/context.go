package log

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	callerKey    ctxKey = "caller"
)

// SetRequestID returns a copy of ctx carrying the request id for log correlation.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request id stored by SetRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// SetCaller returns a copy of ctx carrying the caller identity for log correlation.
func SetCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

func callerFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	c, _ := ctx.Value(callerKey).(string)
	return c
}
