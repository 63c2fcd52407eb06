// Package cost defines the cost and quality metadata that tools attach to
// themselves so a host can make cost-aware decisions when several tools could
// serve the same request.
//
// The main type is [ToolMetrics], which carries per-call cost, accuracy, and
// typical latency for a tool.
package cost
