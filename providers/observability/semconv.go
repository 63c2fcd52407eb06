package observability

// Semantic conventions: the attribute and event names every component uses
// when reporting into a span, so traces stay uniform across tools.

// Tool execution attributes.
const (
	// AttrToolName is the name of the tool being executed.
	AttrToolName = "tool.name"

	// AttrToolInput is the serialized tool input.
	AttrToolInput = "tool.input"

	// AttrToolOutput is the serialized tool output.
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the tool execution duration.
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message when a tool execution fails.
	AttrToolError = "tool.error"
)

// HTTP attributes, reported by the shared request helpers.
const (
	// AttrHTTPMethod is the HTTP method.
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code.
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL.
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes.
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes.
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// Span status attributes.
const (
	// AttrStatus is the span's final status.
	AttrStatus = "status"

	// AttrStatusDescription qualifies the status.
	AttrStatusDescription = "status_description"
)

// Event names.
const (
	// EventToolExecutionStart marks the start of a tool execution.
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of a tool execution.
	EventToolExecutionEnd = "tool.execution.end"
)
