package observability

import "context"

type spanKey struct{}

// ContextWithSpan returns a context carrying span, so downstream calls can
// report into it.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanKey{}, span)
}

// SpanFromContext returns the span carried by ctx, or nil when tracing is not
// active. Callers must nil-check before reporting.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanKey{}).(Span)
	return span
}
