// Package utils provides shared low-level helpers used throughout the
// toolbox internals. It covers HTTP request helpers for synchronous JSON
// round-trips with external APIs, plus generic string utilities.
//
// Key entry points: [DoPostSync] and [DoGetSync] for synchronous JSON
// round-trips, [CloseWithLog] for deferred body cleanup, and
// [TruncateString] for bounding log output.
package utils
