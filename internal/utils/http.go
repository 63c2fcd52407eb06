package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/leofalp/toolbox/providers/observability"
)

// HeaderOption is a custom header to set on an outgoing request.
type HeaderOption struct {
	Key   string
	Value string
}

// CloseWithLog closes c and logs any close error via slog.Warn. It is meant
// for deferred response-body cleanup where a close error must not override
// the function's primary error.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}

// DoPostSync marshals body to JSON, POSTs it to url, and decodes the JSON
// response into OutputStruct. When apiKey is non-empty it is sent as a Bearer
// token; additional headers are set via headers. A nil client falls back to
// http.DefaultClient.
//
// The *http.Response is returned alongside decode and status errors so
// callers can map specific status codes to domain errors. When a span is
// present in ctx the request and response are reported as span events.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, http.MethodPost),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(jsonBody)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	applyHeaders(req, headers)

	return roundTrip[OutputStruct](ctx, client, req)
}

// DoGetSync performs a GET request against url and decodes the JSON response
// into OutputStruct, with the same error-handling contract as [DoPostSync].
// The query string must already be encoded into url; API tokens and content
// negotiation go through headers.
func DoGetSync[OutputStruct any](ctx context.Context, client *http.Client, url string, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, http.MethodGet),
			observability.String(observability.AttrHTTPURL, url),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	applyHeaders(req, headers)

	return roundTrip[OutputStruct](ctx, client, req)
}

func applyHeaders(req *http.Request, headers []HeaderOption) {
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}
}

// roundTrip sends req, reads the full body, and decodes it into OutputStruct.
// Non-2xx statuses become errors carrying the raw body; decode failures
// include a truncated body preview. The response body is always closed, with
// close errors logged rather than returned.
func roundTrip[OutputStruct any](ctx context.Context, client *http.Client, req *http.Request) (*http.Response, *OutputStruct, error) {
	span := observability.SpanFromContext(ctx)
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	res, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", elapsed),
			)
		}
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration("http.request.duration", elapsed),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, string(respBody))
	}

	var out OutputStruct
	if err := json.Unmarshal(respBody, &out); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s",
			res.StatusCode, err, TruncateString(string(respBody), 500))
	}

	return res, &out, nil
}
