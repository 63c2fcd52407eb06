// Package slogobs implements observability.Tracer on Go's standard library
// log/slog: spans and their events become structured log records.
//
// The entry point is [New]. By default the encoding and minimum level come
// from the TOOLBOX_LOG_FORMAT and TOOLBOX_LOG_LEVEL environment variables;
// [WithFormat], [WithLevel], [WithOutput], and [WithLogger] override them.
package slogobs
