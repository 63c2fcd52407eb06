package brave

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/leofalp/toolbox/internal/keys"
	"github.com/leofalp/toolbox/internal/utils"
)

// baseURL is a variable so tests can point the tools at a mock server.
var baseURL = "https://api.search.brave.com/res/v1"

// httpClient is shared by all Brave tools; overridable in tests.
var httpClient = http.DefaultClient

const (
	defaultCount = 3
	maxCount     = 20
)

// fetchBrave performs a GET request against the given Brave endpoint
// (e.g. "web/search") with the encoded params, resolving the API key first.
// 401 and 422 responses are mapped to actionable key-configuration errors;
// everything else surfaces as a descriptive error.
//
// Accept-Encoding is left to net/http so gzip responses are decompressed
// transparently.
func fetchBrave[T any](ctx context.Context, endpoint string, params url.Values) (*T, error) {
	apiKey, err := keys.Get("brave", "BRAVE_API_KEY")
	if err != nil {
		return nil, err
	}

	fullURL := fmt.Sprintf("%s/%s?%s", baseURL, endpoint, params.Encode())

	resp, result, err := utils.DoGetSync[T](ctx, httpClient, fullURL,
		utils.HeaderOption{Key: "Accept", Value: "application/json"},
		utils.HeaderOption{Key: "X-Subscription-Token", Value: apiKey},
	)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return nil, fmt.Errorf("Brave API authentication failed (401): check your API key in keys.json (alias %q) or the BRAVE_API_KEY environment variable", "brave")
			case http.StatusUnprocessableEntity:
				return nil, fmt.Errorf("Brave API rejected the request (422): this usually means the API key is invalid or the request format is incorrect")
			}
		}
		return nil, fmt.Errorf("Brave API request failed: %w", err)
	}

	return result, nil
}

// clampCount normalizes the requested result count to the 1-20 range the
// Brave API accepts, defaulting to defaultCount when unset.
func clampCount(n int) int {
	if n == 0 {
		n = defaultCount
	}
	if n < 1 {
		n = 1
	}
	if n > maxCount {
		n = maxCount
	}
	return n
}

// commonParams builds the query parameters shared by every Brave endpoint.
func commonParams(query string, count int, country, searchLang, uiLang string) url.Values {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", fmt.Sprintf("%d", clampCount(count)))

	if country != "" {
		params.Set("country", country)
	}
	if searchLang != "" {
		params.Set("search_lang", searchLang)
	}
	if uiLang != "" {
		params.Set("ui_lang", uiLang)
	}

	return params
}

// cleanDescription converts the HTML fragments Brave embeds in descriptions
// (<strong>, <em>, entity escapes) to Markdown. On conversion failure the raw
// string is returned unchanged.
func cleanDescription(s string) string {
	if s == "" {
		return s
	}
	markdown, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(markdown)
}
