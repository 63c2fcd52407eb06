package brave

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/providers/tool"
)

// NewNewsSearchTool returns a tool that searches for news articles via the
// Brave Search API.
func NewNewsSearchTool() *tool.Tool[NewsSearchInput, NewsSearchOutput] {
	return tool.NewTool[NewsSearchInput, NewsSearchOutput](
		"news_search",
		NewsSearch,
		tool.WithDescription("Search for news using Brave Search API. Works well for current events and recent coverage; supports freshness filters (past day/week/month/year). Returns article titles, URLs, descriptions, ages, and source hostnames. Requires a Brave API key (keys.json alias 'brave' or BRAVE_API_KEY)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.005,
			Currency:                "USD",
			CostDescription:         "per search query",
			Accuracy:                0.87,
			AverageDurationInMillis: 750,
		}),
	)
}

// NewsSearchInput holds the parameters for a Brave news search.
type NewsSearchInput struct {
	Query      string `json:"query" jsonschema:"description=The search query string to find relevant news articles,required"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"description=Number of news results to return (1-20 default: 3)"`
	Country    string `json:"country,omitempty" jsonschema:"description=Country code to customize search results (e.g. 'us' 'uk')"`
	SearchLang string `json:"search_lang,omitempty" jsonschema:"description=Language for the search results (e.g. 'en' 'es')"`
	UILang     string `json:"ui_lang,omitempty" jsonschema:"description=Language for the user interface elements (e.g. 'en' 'es')"`
	Freshness  string `json:"freshness,omitempty" jsonschema:"description=Restrict results by age: pd (past day) pw (past week) pm (past month) py (past year),enum=pd,enum=pw,enum=pm,enum=py"`
}

// NewsSearchOutput holds a summarized view of a Brave news search response.
type NewsSearchOutput struct {
	Query   string             `json:"query" jsonschema:"description=The original search query"`
	Summary string             `json:"summary" jsonschema:"description=Formatted summary of news results"`
	Results []NewsSearchResult `json:"results" jsonschema:"description=List of news results"`
}

// NewsSearchResult is a single news article shaped for host consumption.
type NewsSearchResult struct {
	Title       string `json:"title" jsonschema:"description=Title of the article"`
	URL         string `json:"url" jsonschema:"description=URL of the article"`
	Description string `json:"description,omitempty" jsonschema:"description=Description snippet of the article"`
	Age         string `json:"age,omitempty" jsonschema:"description=Age of the article (e.g. '2 hours ago')"`
	Source      string `json:"source,omitempty" jsonschema:"description=Hostname of the publishing site"`
	Breaking    bool   `json:"breaking,omitempty" jsonschema:"description=Whether the article is flagged as breaking news"`
}

// NewsSearch performs a news search via the Brave Search API.
func NewsSearch(ctx context.Context, input NewsSearchInput) (NewsSearchOutput, error) {
	params := commonParams(input.Query, input.NumResults, input.Country, input.SearchLang, input.UILang)
	if input.Freshness != "" {
		params.Set("freshness", input.Freshness)
	}

	apiResponse, err := fetchBrave[mediaAPIResponse[newsResult]](ctx, "news/search", params)
	if err != nil {
		return NewsSearchOutput{}, err
	}

	var results []NewsSearchResult
	var summaryParts []string

	for _, news := range apiResponse.Results {
		result := NewsSearchResult{
			Title:       news.Title,
			URL:         news.URL,
			Description: cleanDescription(news.Description),
			Age:         news.Age,
			Breaking:    news.Breaking,
		}
		if news.MetaURL != nil {
			result.Source = news.MetaURL.Hostname
		}
		results = append(results, result)

		summaryParts = append(summaryParts,
			fmt.Sprintf("Title: %s", result.Title),
			fmt.Sprintf("URL: %s", result.URL),
			fmt.Sprintf("Description: %s", result.Description),
		)
		if result.Age != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("Age: %s", result.Age))
		}
		if result.Source != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("Source: %s", result.Source))
		}
		summaryParts = append(summaryParts, "---------\n")
	}

	summary := strings.Join(summaryParts, "\n")
	if summary == "" {
		summary = "No news results found."
	}

	return NewsSearchOutput{
		Query:   input.Query,
		Summary: summary,
		Results: results,
	}, nil
}
