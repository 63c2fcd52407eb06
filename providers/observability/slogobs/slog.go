package slogobs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/leofalp/toolbox/providers/observability"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatText is slog's key=value text encoding (default).
	FormatText Format = "text"
	// FormatJSON is slog's JSON encoding, for log aggregation.
	FormatJSON Format = "json"
)

// Observer implements [observability.Tracer] on top of log/slog: span starts,
// events, errors, and ends become structured log records.
type Observer struct {
	logger *slog.Logger
}

var _ observability.Tracer = (*Observer)(nil)

type config struct {
	format Format
	level  slog.Level
	output io.Writer
	logger *slog.Logger
}

// Option configures an Observer created by [New].
type Option func(*config)

// WithFormat sets the output encoding.
func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithLevel sets the minimum log level. Span events are recorded at DEBUG,
// span errors at ERROR.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput sets the destination writer (defaults to os.Stdout).
func WithOutput(output io.Writer) Option {
	return func(c *config) {
		c.output = output
	}
}

// WithLogger routes spans through an existing slog.Logger, ignoring the
// format, level, and output options.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a slog-backed observer. Without options, the encoding comes
// from TOOLBOX_LOG_FORMAT ("text" or "json") and the minimum level from
// TOOLBOX_LOG_LEVEL (DEBUG, INFO, WARN, ERROR), defaulting to text at INFO.
//
// Example usage:
//
//	observer := slogobs.New(slogobs.WithLevel(slog.LevelDebug))
//	ctx, span := observer.StartSpan(ctx, "search-session")
//	defer span.End()
func New(opts ...Option) *Observer {
	cfg := config{
		format: FormatFromEnv(),
		level:  LevelFromEnv(),
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		handlerOpts := &slog.HandlerOptions{Level: cfg.level}
		var handler slog.Handler
		if cfg.format == FormatJSON {
			handler = slog.NewJSONHandler(cfg.output, handlerOpts)
		} else {
			handler = slog.NewTextHandler(cfg.output, handlerOpts)
		}
		logger = slog.New(handler)
	}

	return &Observer{logger: logger}
}

// FormatFromEnv reads TOOLBOX_LOG_FORMAT; anything but "json" means text.
func FormatFromEnv() Format {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TOOLBOX_LOG_FORMAT")), "json") {
		return FormatJSON
	}
	return FormatText
}

// LevelFromEnv reads TOOLBOX_LOG_LEVEL (DEBUG, INFO, WARN, WARNING, ERROR,
// case-insensitive). Unset or unknown values mean INFO.
func LevelFromEnv() slog.Level {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv("TOOLBOX_LOG_LEVEL"))) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// StartSpan begins a named span, logs its start, and returns a context
// carrying the span so nested tool and HTTP calls report into it.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	span := &slogSpan{
		name:   name,
		start:  time.Now(),
		logger: o.logger,
		attrs:  attrs,
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, "Span started", span.logAttrs("span.start")...)

	return observability.ContextWithSpan(ctx, span), span
}

type slogSpan struct {
	name   string
	start  time.Time
	logger *slog.Logger

	mu    sync.Mutex
	attrs []observability.Attribute
}

// logAttrs renders the span name, the event, and the accumulated attributes
// as slog attributes. Callers must hold mu or own the span exclusively.
func (s *slogSpan) logAttrs(event string, extra ...observability.Attribute) []slog.Attr {
	logAttrs := make([]slog.Attr, 0, 2+len(s.attrs)+len(extra))
	logAttrs = append(logAttrs,
		slog.String("span", s.name),
		slog.String("event", event),
	)
	for _, attr := range s.attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	for _, attr := range extra {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	return logAttrs
}

// End logs the span end with its elapsed time and accumulated attributes.
func (s *slogSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs := s.logAttrs("span.end")
	attrs = append(attrs, slog.Duration("duration", time.Since(s.start)))
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span ended", attrs...)
}

// SetAttributes appends attributes reported with every later span record.
func (s *slogSpan) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

// SetStatus records the span's final status as attributes.
func (s *slogSpan) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := "unset"
	switch code {
	case observability.StatusOK:
		status = "ok"
	case observability.StatusError:
		status = "error"
	}

	s.attrs = append(s.attrs, observability.String(observability.AttrStatus, status))
	if description != "" {
		s.attrs = append(s.attrs, observability.String(observability.AttrStatusDescription, description))
	}
}

// RecordError logs err at ERROR level and keeps it as a span attribute.
func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attrs = append(s.attrs, observability.Error(err))
	s.logger.LogAttrs(context.Background(), slog.LevelError, "Span error",
		slog.String("span", s.name),
		slog.String("event", "error"),
		slog.String("error", err.Error()),
	)
}

// AddEvent logs a named point-in-time event on the span at DEBUG level.
func (s *slogSpan) AddEvent(name string, attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logAttrs := []slog.Attr{
		slog.String("span", s.name),
		slog.String("event", name),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span event", logAttrs...)
}
