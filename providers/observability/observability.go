package observability

import (
	"context"
	"time"
)

// Tracer starts spans around units of work such as a tool invocation.
type Tracer interface {
	// StartSpan begins a named span and returns a context carrying it, so
	// nested operations can attach events to the same span.
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is one traced unit of work. Implementations must be safe for
// concurrent use; tools and HTTP helpers may report into the same span.
type Span interface {
	// End completes the span.
	End()
	// SetAttributes attaches metadata to the span.
	SetAttributes(attrs ...Attribute)
	// SetStatus records the span's final status.
	SetStatus(code StatusCode, description string)
	// RecordError records a failure on the span.
	RecordError(err error)
	// AddEvent appends a named point-in-time event to the span.
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode is the final status of a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

// Attribute is a key-value pair of span metadata.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute from err's message.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: err.Error()}
}
