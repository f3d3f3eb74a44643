// Package context carries per-request metadata across layers without
// importing transport packages from the application core.
package context

import (
	"context"
	"strings"
)

type ctxKey string

const ctxRequestID ctxKey = "request_id"

// WithRequestID injects a request id; called by HTTP middleware.
func WithRequestID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxRequestID, id)
}

// RequestID reads the request id if present, else "".
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxRequestID).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
