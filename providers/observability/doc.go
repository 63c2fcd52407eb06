// Package observability defines the tracing vocabulary the toolbox reports
// through: a [Tracer] starts a [Span], components attach [Attribute] values
// and events to it, and the span travels through a [context.Context] via
// [ContextWithSpan] and [SpanFromContext].
//
// The semconv.go file holds the standard attribute and event names so tool
// executions and HTTP round trips are recorded consistently. The slogobs
// subpackage provides a log/slog backed Tracer.
package observability
