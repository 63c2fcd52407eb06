package brave

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/providers/tool"
)

// NewVideoSearchTool returns a tool that searches for videos via the Brave
// Search API.
func NewVideoSearchTool() *tool.Tool[VideoSearchInput, VideoSearchOutput] {
	return tool.NewTool[VideoSearchInput, VideoSearchOutput](
		"video_search",
		VideoSearch,
		tool.WithDescription("Search for videos using Brave Search API. Returns video titles, URLs, descriptions, durations, ages, source hostnames, and thumbnails; supports freshness filters. Requires a Brave API key (keys.json alias 'brave' or BRAVE_API_KEY)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.005,
			Currency:                "USD",
			CostDescription:         "per search query",
			Accuracy:                0.85,
			AverageDurationInMillis: 750,
		}),
	)
}

// VideoSearchInput holds the parameters for a Brave video search.
type VideoSearchInput struct {
	Query      string `json:"query" jsonschema:"description=The search query string to find relevant videos,required"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"description=Number of video results to return (1-20 default: 3)"`
	Country    string `json:"country,omitempty" jsonschema:"description=Country code to customize search results (e.g. 'us' 'uk')"`
	SearchLang string `json:"search_lang,omitempty" jsonschema:"description=Language for the search results (e.g. 'en' 'es')"`
	UILang     string `json:"ui_lang,omitempty" jsonschema:"description=Language for the user interface elements (e.g. 'en' 'es')"`
	Freshness  string `json:"freshness,omitempty" jsonschema:"description=Restrict results by age: pd (past day) pw (past week) pm (past month) py (past year),enum=pd,enum=pw,enum=pm,enum=py"`
}

// VideoSearchOutput holds a summarized view of a Brave video search response.
type VideoSearchOutput struct {
	Query   string              `json:"query" jsonschema:"description=The original search query"`
	Summary string              `json:"summary" jsonschema:"description=Formatted summary of video results"`
	Results []VideoSearchResult `json:"results" jsonschema:"description=List of video results"`
}

// VideoSearchResult is a single video result shaped for host consumption.
type VideoSearchResult struct {
	Title       string `json:"title" jsonschema:"description=Title of the video"`
	URL         string `json:"url" jsonschema:"description=URL of the video"`
	Description string `json:"description,omitempty" jsonschema:"description=Description snippet of the video"`
	Age         string `json:"age,omitempty" jsonschema:"description=Age of the video (e.g. '3 days ago')"`
	Duration    string `json:"duration,omitempty" jsonschema:"description=Duration of the video (e.g. '12:34')"`
	Source      string `json:"source,omitempty" jsonschema:"description=Hostname of the hosting site"`
	Thumbnail   string `json:"thumbnail,omitempty" jsonschema:"description=URL of the video thumbnail"`
}

// VideoSearch performs a video search via the Brave Search API.
func VideoSearch(ctx context.Context, input VideoSearchInput) (VideoSearchOutput, error) {
	params := commonParams(input.Query, input.NumResults, input.Country, input.SearchLang, input.UILang)
	if input.Freshness != "" {
		params.Set("freshness", input.Freshness)
	}

	apiResponse, err := fetchBrave[mediaAPIResponse[videoResult]](ctx, "videos/search", params)
	if err != nil {
		return VideoSearchOutput{}, err
	}

	var results []VideoSearchResult
	var summaryParts []string

	for _, video := range apiResponse.Results {
		result := VideoSearchResult{
			Title:       video.Title,
			URL:         video.URL,
			Description: cleanDescription(video.Description),
			Age:         video.Age,
		}
		if video.Video != nil {
			result.Duration = video.Video.Duration
		}
		if video.MetaURL != nil {
			result.Source = video.MetaURL.Hostname
		}
		if video.Thumbnail != nil {
			result.Thumbnail = video.Thumbnail.Src
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
		if result.Duration != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("Duration: %s", result.Duration))
		}
		if result.Source != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("Source: %s", result.Source))
		}
		if result.Thumbnail != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("Thumbnail: %s", result.Thumbnail))
		}
		summaryParts = append(summaryParts, "---------\n")
	}

	summary := strings.Join(summaryParts, "\n")
	if summary == "" {
		summary = "No video results found."
	}

	return VideoSearchOutput{
		Query:   input.Query,
		Summary: summary,
		Results: results,
	}, nil
}
