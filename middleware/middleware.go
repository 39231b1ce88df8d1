// Package middleware holds framework-neutral helpers shared by the HTTP adapters.
package middleware

import (
	"context"

	"github.com/reoring/swagval"
	"github.com/reoring/swagval/value"
)

// ctxKeyValue is a typed context key for the validated request body.
type ctxKeyValue struct{}

// ContextWithValue attaches a validated value tree to the context.
func ContextWithValue(ctx context.Context, v value.Value) context.Context {
	return context.WithValue(ctx, ctxKeyValue{}, v)
}

// ValueFromContext retrieves the validated value tree from context.
func ValueFromContext(ctx context.Context) (value.Value, bool) {
	v, ok := ctx.Value(ctxKeyValue{}).(value.Value)
	return v, ok
}

// DefaultDecodeOptions returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Nesting and body size are bounded
func DefaultDecodeOptions() value.DecodeOptions {
	return value.DecodeOptions{
		RejectDuplicateKeys: true,
		MaxDepth:            128,
		MaxBytes:            4 << 20,
	}
}

// ErrorPayload shapes validation errors for JSON responses.
func ErrorPayload(errs swagval.Errors) map[string]any {
	return map[string]any{"errors": errs}
}
