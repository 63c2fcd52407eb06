package exa

import (
	"context"
	"fmt"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/providers/tool"
)

// NewExaFindSimilarTool creates a tool that finds web pages semantically
// similar to a given URL.
func NewExaFindSimilarTool() *tool.Tool[SimilarInput, SimilarOutput] {
	return tool.NewTool[SimilarInput, SimilarOutput](
		"exa_find_similar",
		FindSimilar,
		tool.WithDescription("Find web pages similar to a given URL using Exa's semantic similarity search. Useful for: finding related articles, discovering similar research papers, exploring content clusters, finding alternatives to a given resource. Requires a URL as input and an Exa API key (keys.json alias 'exa' or EXA_API_KEY)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.005,
			Currency:                "USD",
			CostDescription:         "per similarity search",
			Accuracy:                0.91,
			AverageDurationInMillis: 1000,
		}),
	)
}

// FindSimilar calls the Exa findSimilar endpoint and returns web pages
// semantically similar to the provided URL. The endpoint requires a URL;
// text-only similarity is not supported.
func FindSimilar(ctx context.Context, input SimilarInput) (SimilarOutput, error) {
	if input.URL == "" {
		return SimilarOutput{}, fmt.Errorf("url is required for similarity search")
	}

	reqBody := map[string]any{
		"url":        input.URL,
		"numResults": clampResults(input.NumResults),
		"contents":   defaultContents(),
	}
	if len(input.IncludeDomains) > 0 {
		reqBody["includeDomains"] = input.IncludeDomains
	}
	if len(input.ExcludeDomains) > 0 {
		reqBody["excludeDomains"] = input.ExcludeDomains
	}

	apiResponse, err := postExa[exaSearchAPIResponse](ctx, "/findSimilar", reqBody)
	if err != nil {
		return SimilarOutput{}, err
	}

	results := mapResults(apiResponse.Results)
	summary := summarizeResults(results)
	if summary == "" {
		summary = fmt.Sprintf("No similar content found for %s.", input.URL)
	}

	return SimilarOutput{
		SourceURL: input.URL,
		Summary:   summary,
		Results:   results,
	}, nil
}
