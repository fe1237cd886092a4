package logging

import (
	"context"
)

type fieldsKey struct{}

// ContextWith returns a copy of ctx carrying key/value pairs. Every Logger
// prepends them to the args of entries logged with that context.
func ContextWith(ctx context.Context, args ...any) context.Context {
	return context.WithValue(ctx, fieldsKey{}, append(append([]any(nil), fieldsFrom(ctx)...), args...))
}

// fieldsFrom returns the pairs stored by ContextWith. The caller must not
// modify the result.
func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	f, _ := ctx.Value(fieldsKey{}).([]any)
	return f
}

// withFields returns the context pairs followed by args in a fresh slice.
func withFields(ctx context.Context, args []any) []any {
	f := fieldsFrom(ctx)
	if len(f) == 0 {
		return args
	}
	return append(append([]any(nil), f...), args...)
}
