package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/internal/keys"
	"github.com/leofalp/toolbox/internal/utils"
	"github.com/leofalp/toolbox/providers/tool"
)

// baseURL is a variable so tests can point the tools at a mock server.
var baseURL = "https://api.exa.ai"

// httpClient is shared by all Exa tools; overridable in tests.
var httpClient = http.DefaultClient

const (
	defaultResults = 3
	maxResults     = 100
)

// NewExaSearchTool creates a tool for semantic web search via the Exa API.
// Returns summarized results optimized for LLM consumption.
func NewExaSearchTool() *tool.Tool[SearchInput, SearchOutput] {
	return tool.NewTool[SearchInput, SearchOutput](
		"exa_search",
		Search,
		tool.WithDescription("Search the web using Exa's AI-native semantic search engine. Uses neural embeddings for highly relevant results. Works well for: research papers, technical content, news, company information, GitHub repos, and specific content categories. Returns titles, URLs, highlights, and page text of top results. Requires an Exa API key (keys.json alias 'exa' or EXA_API_KEY)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.005,
			Currency:                "USD",
			CostDescription:         "per search with content extraction",
			Accuracy:                0.93,
			AverageDurationInMillis: 1200,
		}),
	)
}

// exaSearchRequest is the /search request body; the API expects camelCase
// keys and tolerates omitted optional filters.
type exaSearchRequest struct {
	Query              string         `json:"query"`
	Type               string         `json:"type"`
	NumResults         int            `json:"numResults"`
	Category           string         `json:"category,omitempty"`
	IncludeDomains     []string       `json:"includeDomains,omitempty"`
	ExcludeDomains     []string       `json:"excludeDomains,omitempty"`
	StartPublishedDate string         `json:"startPublishedDate,omitempty"`
	EndPublishedDate   string         `json:"endPublishedDate,omitempty"`
	StartCrawlDate     string         `json:"startCrawlDate,omitempty"`
	EndCrawlDate       string         `json:"endCrawlDate,omitempty"`
	Contents           map[string]any `json:"contents"`
}

// Search performs a semantic web search with page text and highlights.
func Search(ctx context.Context, input SearchInput) (SearchOutput, error) {
	reqBody := exaSearchRequest{
		Query:              input.Query,
		Type:               input.Type,
		NumResults:         clampResults(input.NumResults),
		Category:           input.Category,
		IncludeDomains:     input.IncludeDomains,
		ExcludeDomains:     input.ExcludeDomains,
		StartPublishedDate: input.StartPublishedDate,
		EndPublishedDate:   input.EndPublishedDate,
		StartCrawlDate:     input.StartCrawlDate,
		EndCrawlDate:       input.EndCrawlDate,
		Contents:           defaultContents(),
	}
	if reqBody.Type == "" {
		reqBody.Type = "auto"
	}

	apiResponse, err := postExa[exaSearchAPIResponse](ctx, "/search", reqBody)
	if err != nil {
		return SearchOutput{}, err
	}

	results := mapResults(apiResponse.Results)
	summary := summarizeResults(results)
	if summary == "" {
		summary = fmt.Sprintf("No results found for '%s'. Try a different query or adjust filters.", input.Query)
	}

	return SearchOutput{
		Query:   input.Query,
		Summary: summary,
		Results: results,
	}, nil
}

// postExa performs the API call against the given Exa endpoint path
// (e.g. "/search"), resolving the API key first. Error response bodies
// carrying {"error": ...} or {"message": ...} are unwrapped into readable
// errors.
func postExa[T any](ctx context.Context, path string, reqBody any) (*T, error) {
	apiKey, err := keys.Get("exa", "EXA_API_KEY")
	if err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error encoding %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("error building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", path, err)
	}
	defer utils.CloseWithLog(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr exaAPIError
		if err := json.Unmarshal(body, &apiErr); err == nil {
			errMsg := apiErr.Error
			if errMsg == "" {
				errMsg = apiErr.Message
			}
			if errMsg != "" {
				return nil, fmt.Errorf("Exa API error (status %d): %s", resp.StatusCode, errMsg)
			}
		}
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var apiResponse T
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	return &apiResponse, nil
}

// clampResults normalizes the requested result count into the API's
// accepted range, defaulting to defaultResults when unset.
func clampResults(n int) int {
	if n <= 0 {
		return defaultResults
	}
	if n > maxResults {
		return maxResults
	}
	return n
}

// defaultContents is the content-extraction block sent with every search:
// full page text plus key sentence highlights.
func defaultContents() map[string]any {
	return map[string]any{
		"text": true,
		"highlights": map[string]any{
			"numSentences":     3,
			"highlightsPerUrl": 3,
		},
	}
}

// mapResults converts raw API result items into the host-facing record.
func mapResults(items []exaSearchResultItem) []SearchResult {
	results := make([]SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, SearchResult{
			Title:         item.Title,
			URL:           item.URL,
			PublishedDate: item.PublishedDate,
			Author:        item.Author,
			Text:          item.Text,
			Highlights:    item.Highlights,
		})
	}
	return results
}

// summarizeResults formats results into the block layout the host expects:
// labeled lines per result separated by a dashed divider. Text previews are
// truncated so a single verbose page cannot dominate the summary.
func summarizeResults(results []SearchResult) string {
	var parts []string
	for _, result := range results {
		parts = append(parts,
			fmt.Sprintf("Title: %s", result.Title),
		)
		if result.Author != "" {
			parts = append(parts, fmt.Sprintf("Author: %s", result.Author))
		}
		parts = append(parts, fmt.Sprintf("URL: %s", result.URL))
		if result.PublishedDate != "" {
			parts = append(parts, fmt.Sprintf("Published: %s", result.PublishedDate))
		}
		if len(result.Highlights) > 0 {
			parts = append(parts, "Highlights:")
			for _, highlight := range result.Highlights {
				parts = append(parts, fmt.Sprintf("- %s", highlight))
			}
		}
		if result.Text != "" {
			parts = append(parts, fmt.Sprintf("Text: %s", utils.TruncateString(result.Text, 500)))
		}
		parts = append(parts, "---------\n")
	}
	return strings.Join(parts, "\n")
}
