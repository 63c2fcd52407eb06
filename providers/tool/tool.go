package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/core/parse"
	"github.com/leofalp/toolbox/internal/jsonschema"
	"github.com/leofalp/toolbox/providers/observability"
)

// Description is the metadata a host advertises to its language model so the
// model can decide when and how to invoke a tool: name, human-readable
// description, input parameter schema, and optional cost metrics.
type Description struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Metrics     *cost.ToolMetrics
}

// Tool binds a name and description to a strongly-typed Go function and
// derives JSON schemas for the input type I and output type O via reflection.
// Construct one with [NewTool]; hosts dispatch through [GenericTool].
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metrics optionally describes the cost and expected performance of one call.
	Metrics *cost.ToolMetrics
}

// GenericTool erases the type parameters of [Tool] so tools of different
// shapes can share a catalog and be invoked with raw JSON arguments.
type GenericTool interface {
	// ToolInfo returns the metadata advertised to the host's language model.
	ToolInfo() Description

	// Call runs the tool on a JSON-encoded input string and returns the
	// JSON-encoded output. It fails if the input cannot be parsed into the
	// tool's input type or the underlying function errors.
	Call(ctx context.Context, inputJson string) (string, error)

	// GetMetrics returns the tool's cost metrics, or nil if none were configured.
	GetMetrics() *cost.ToolMetrics
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
	Metrics     *cost.ToolMetrics
}

// WithDescription sets the description surfaced to the language model. A good
// description states what the tool returns and when to prefer it.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Description = description
	}
}

// WithMetrics attaches cost and performance metrics (price per call, accuracy,
// typical latency) to the tool.
func WithMetrics(toolMetrics cost.ToolMetrics) func(tool *funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Metrics = &toolMetrics
	}
}

// NewTool constructs a [Tool] from a name and a typed handler function,
// deriving the input and output JSON schemas by reflection.
//
// Example:
//
//	myTool := tool.NewTool("search", searchFunc,
//	    tool.WithDescription("Searches the web for a query."),
//	    tool.WithMetrics(cost.ToolMetrics{Amount: 0.001, Currency: "USD"}),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	opts := &funcToolOptions{}
	for _, option := range options {
		option(opts)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: opts.Description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
		Metrics:     opts.Metrics,
	}
}

// ToolInfo returns the [Description] used to advertise this tool to a host.
func (t *Tool[I, O]) ToolInfo() Description {
	return Description{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Metrics:     t.Metrics,
	}
}

// Call parses inputJson into the input type I, runs the tool's function, and
// returns the result serialized as JSON. When a span is present in ctx the
// execution is reported through span events and attributes: start/end events,
// duration, output, configured cost metrics, and any error.
func (t *Tool[I, O]) Call(ctx context.Context, inputJson string) (string, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, inputJson),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	// Model-produced arguments are parsed leniently; see core/parse.
	input, err := parse.ParseStringAs[I](inputJson)
	if err != nil {
		t.reportFailure(span, err, 0)
		return "", err
	}

	start := time.Now()
	output, err := t.Function(ctx, input)
	duration := time.Since(start)
	if err != nil {
		t.reportFailure(span, err, duration)
		return "", err
	}

	encoded, err := json.Marshal(output)
	if err != nil {
		t.reportFailure(span, err, duration)
		return "", err
	}

	if span != nil {
		attrs := append(t.metricAttributes(),
			observability.String(observability.AttrToolOutput, string(encoded)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
		span.SetAttributes(attrs...)
	}

	return string(encoded), nil
}

// GetMetrics returns the metrics configured for this tool, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}

// reportFailure records err on the span, with the elapsed execution time when
// one is known.
func (t *Tool[I, O]) reportFailure(span observability.Span, err error, duration time.Duration) {
	if span == nil {
		return
	}
	span.RecordError(err)
	attrs := []observability.Attribute{
		observability.String(observability.AttrToolError, err.Error()),
	}
	if duration > 0 {
		attrs = append(attrs, observability.Duration(observability.AttrToolDuration, duration))
	}
	span.SetAttributes(attrs...)
}

// metricAttributes converts the configured metrics into span attributes so
// hosts can aggregate spend and latency per tool.
func (t *Tool[I, O]) metricAttributes() []observability.Attribute {
	if t.Metrics == nil {
		return nil
	}
	attrs := []observability.Attribute{
		observability.Float64("tool.cost.amount", t.Metrics.Amount),
		observability.String("tool.cost.currency", t.Metrics.Currency),
	}
	if t.Metrics.CostDescription != "" {
		attrs = append(attrs, observability.String("tool.cost.description", t.Metrics.CostDescription))
	}
	if t.Metrics.Accuracy > 0 {
		attrs = append(attrs, observability.Float64("tool.metrics.accuracy", t.Metrics.Accuracy))
	}
	if t.Metrics.AverageDurationInMillis > 0 {
		attrs = append(attrs, observability.Int64("tool.metrics.avg_duration_ms", t.Metrics.AverageDurationInMillis))
	}
	return attrs
}
