package brave

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/providers/tool"
)

// NewWebSearchTool returns a tool that searches the web via the Brave Search
// API and produces summarized results optimized for LLM consumption.
func NewWebSearchTool() *tool.Tool[WebSearchInput, WebSearchOutput] {
	return tool.NewTool[WebSearchInput, WebSearchOutput](
		"web_search",
		WebSearch,
		tool.WithDescription("Search the web using Brave Search API for high-quality, relevant results. Works well for: current events, factual information, research queries, and general web searches. Supports domain allow/deny lists, freshness filters, and localized results. Returns titles, URLs, and descriptions of top results. Requires a Brave API key (keys.json alias 'brave' or BRAVE_API_KEY)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.005, // $5 per 1000 queries
			Currency:                "USD",
			CostDescription:         "per search query",
			Accuracy:                0.88,
			AverageDurationInMillis: 800,
		}),
	)
}

// WebSearchInput holds the parameters for a Brave web search. Query is the
// only required field.
type WebSearchInput struct {
	Query          string   `json:"query" jsonschema:"description=The search query string to find relevant content,required"`
	NumResults     int      `json:"num_results,omitempty" jsonschema:"description=Number of search results to return (1-20 default: 3)"`
	Country        string   `json:"country,omitempty" jsonschema:"description=Country code to customize search results (e.g. 'us' 'uk')"`
	SearchLang     string   `json:"search_lang,omitempty" jsonschema:"description=Language for the search results (e.g. 'en' 'es')"`
	UILang         string   `json:"ui_lang,omitempty" jsonschema:"description=Language for the user interface elements (e.g. 'en' 'es')"`
	Freshness      string   `json:"freshness,omitempty" jsonschema:"description=Restrict results by age: pd (past day) pw (past week) pm (past month) py (past year),enum=pd,enum=pw,enum=pm,enum=py"`
	IncludeDomains []string `json:"include_domains,omitempty" jsonschema:"description=List of domains to limit search results to"`
	ExcludeDomains []string `json:"exclude_domains,omitempty" jsonschema:"description=List of domains to exclude from search results"`
	ResultFilter   string   `json:"result_filter,omitempty" jsonschema:"description=Filter results by type,enum=web,enum=news,enum=videos"`
}

// WebSearchOutput holds a summarized view of a Brave web search response,
// combining a human-readable Summary with the typed Results slice.
type WebSearchOutput struct {
	Query   string            `json:"query" jsonschema:"description=The original search query"`
	Summary string            `json:"summary" jsonschema:"description=Formatted summary of search results"`
	Results []WebSearchResult `json:"results" jsonschema:"description=List of web search results"`
}

// WebSearchResult is a single web result shaped for host consumption.
type WebSearchResult struct {
	Title         string   `json:"title" jsonschema:"description=Title of the result"`
	URL           string   `json:"url" jsonschema:"description=URL of the result"`
	Description   string   `json:"description" jsonschema:"description=Description snippet of the result"`
	Published     string   `json:"published,omitempty" jsonschema:"description=Publication date when available"`
	ExtraSnippets []string `json:"extra_snippets,omitempty" jsonschema:"description=Additional text snippets from the page"`
}

// WebSearch performs a web search via the Brave Search API. Domain allow
// lists are rewritten into the query as site: operators because the API has
// no native allow-list parameter; deny lists become -site: terms.
func WebSearch(ctx context.Context, input WebSearchInput) (WebSearchOutput, error) {
	query := input.Query
	if len(input.ExcludeDomains) > 0 {
		excludeTerms := make([]string, 0, len(input.ExcludeDomains))
		for _, domain := range input.ExcludeDomains {
			excludeTerms = append(excludeTerms, "-site:"+domain)
		}
		query = fmt.Sprintf("%s %s", query, strings.Join(excludeTerms, " "))
	}
	if len(input.IncludeDomains) > 0 {
		includeTerms := make([]string, 0, len(input.IncludeDomains))
		for _, domain := range input.IncludeDomains {
			includeTerms = append(includeTerms, "site:"+domain)
		}
		query = fmt.Sprintf("%s (%s)", query, strings.Join(includeTerms, " OR "))
	}

	params := commonParams(query, input.NumResults, input.Country, input.SearchLang, input.UILang)
	if input.Freshness != "" {
		params.Set("freshness", input.Freshness)
	}
	if input.ResultFilter != "" {
		params.Set("result_filter", input.ResultFilter)
	}

	apiResponse, err := fetchBrave[webAPIResponse](ctx, "web/search", params)
	if err != nil {
		return WebSearchOutput{}, err
	}

	var results []WebSearchResult
	var summaryParts []string

	if apiResponse.Web != nil {
		for _, web := range apiResponse.Web.Results {
			desc := cleanDescription(web.Description)

			result := WebSearchResult{
				Title:         web.Title,
				URL:           web.URL,
				Description:   desc,
				Published:     web.PublishedDate,
				ExtraSnippets: web.ExtraSnippets,
			}
			results = append(results, result)

			summaryParts = append(summaryParts,
				fmt.Sprintf("Title: %s", result.Title),
				fmt.Sprintf("URL: %s", result.URL),
				fmt.Sprintf("Description: %s", result.Description),
			)
			if result.Published != "" {
				summaryParts = append(summaryParts, fmt.Sprintf("Published: %s", result.Published))
			}
			if len(result.ExtraSnippets) > 0 {
				summaryParts = append(summaryParts, "Extra snippets:")
				for _, snippet := range result.ExtraSnippets {
					summaryParts = append(summaryParts, fmt.Sprintf("- %s", snippet))
				}
			}
			summaryParts = append(summaryParts, "---------\n")
		}
	}

	summary := strings.Join(summaryParts, "\n")
	if summary == "" {
		summary = "No results found."
	}

	return WebSearchOutput{
		Query:   input.Query,
		Summary: summary,
		Results: results,
	}, nil
}
