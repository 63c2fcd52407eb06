package brave

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/providers/tool"
)

// NewImageSearchTool returns a tool that searches for images via the Brave
// Search API.
func NewImageSearchTool() *tool.Tool[ImageSearchInput, ImageSearchOutput] {
	return tool.NewTool[ImageSearchInput, ImageSearchOutput](
		"image_search",
		ImageSearch,
		tool.WithDescription("Search for images using Brave Search API. Returns image titles, sources, full-size URLs, and pixel dimensions. Requires a Brave API key (keys.json alias 'brave' or BRAVE_API_KEY)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.005,
			Currency:                "USD",
			CostDescription:         "per search query",
			Accuracy:                0.85,
			AverageDurationInMillis: 700,
		}),
	)
}

// ImageSearchInput holds the parameters for a Brave image search.
type ImageSearchInput struct {
	Query      string `json:"query" jsonschema:"description=The search query string to find relevant images,required"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"description=Number of image results to return (1-20 default: 3)"`
	Country    string `json:"country,omitempty" jsonschema:"description=Country code to customize search results (e.g. 'us' 'uk')"`
	SearchLang string `json:"search_lang,omitempty" jsonschema:"description=Language for the search results (e.g. 'en' 'es')"`
	UILang     string `json:"ui_lang,omitempty" jsonschema:"description=Language for the user interface elements (e.g. 'en' 'es')"`
}

// ImageSearchOutput holds a summarized view of a Brave image search response.
type ImageSearchOutput struct {
	Query   string              `json:"query" jsonschema:"description=The original search query"`
	Summary string              `json:"summary" jsonschema:"description=Formatted summary of image results"`
	Results []ImageSearchResult `json:"results" jsonschema:"description=List of image results"`
}

// ImageSearchResult is a single image result shaped for host consumption.
type ImageSearchResult struct {
	Title     string `json:"title" jsonschema:"description=Title of the image"`
	Source    string `json:"source,omitempty" jsonschema:"description=Source site of the image"`
	URL       string `json:"url,omitempty" jsonschema:"description=URL of the full-size image"`
	Thumbnail string `json:"thumbnail,omitempty" jsonschema:"description=URL of the thumbnail image"`
	Width     int    `json:"width,omitempty" jsonschema:"description=Image width in pixels"`
	Height    int    `json:"height,omitempty" jsonschema:"description=Image height in pixels"`
}

// ImageSearch performs an image search via the Brave Search API.
func ImageSearch(ctx context.Context, input ImageSearchInput) (ImageSearchOutput, error) {
	params := commonParams(input.Query, input.NumResults, input.Country, input.SearchLang, input.UILang)

	apiResponse, err := fetchBrave[mediaAPIResponse[imageResult]](ctx, "images/search", params)
	if err != nil {
		return ImageSearchOutput{}, err
	}

	var results []ImageSearchResult
	var summaryParts []string

	for _, image := range apiResponse.Results {
		result := ImageSearchResult{
			Title:  image.Title,
			Source: image.Source,
		}
		if image.Thumbnail != nil {
			result.Thumbnail = image.Thumbnail.Src
		}
		if image.Properties != nil {
			result.URL = image.Properties.URL
			result.Width = image.Properties.Width
			result.Height = image.Properties.Height
		}
		results = append(results, result)

		summaryParts = append(summaryParts,
			fmt.Sprintf("Title: %s", result.Title),
			fmt.Sprintf("Source: %s", result.Source),
		)
		if result.URL != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("URL: %s", result.URL))
		}
		if result.Width > 0 && result.Height > 0 {
			summaryParts = append(summaryParts, fmt.Sprintf("Dimensions: %dx%d", result.Width, result.Height))
		}
		summaryParts = append(summaryParts, "---------\n")
	}

	summary := strings.Join(summaryParts, "\n")
	if summary == "" {
		summary = "No image results found."
	}

	return ImageSearchOutput{
		Query:   input.Query,
		Summary: summary,
		Results: results,
	}, nil
}
