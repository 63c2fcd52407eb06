package exa

import (
	"context"
	"fmt"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/providers/tool"
)

// NewExaAnswerTool creates a tool that produces AI-generated answers grounded
// by web citations.
func NewExaAnswerTool() *tool.Tool[AnswerInput, AnswerOutput] {
	return tool.NewTool[AnswerInput, AnswerOutput](
		"exa_answer",
		Answer,
		tool.WithDescription("Get an AI-generated answer to a question, grounded by citations from Exa's web search. The answer is generated from relevant web sources and includes citations for verification. Ideal for: factual questions, research queries, getting summarized answers with sources. Requires an Exa API key (keys.json alias 'exa' or EXA_API_KEY)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.01,
			Currency:                "USD",
			CostDescription:         "per answer generation with citations",
			Accuracy:                0.88,
			AverageDurationInMillis: 3000,
		}),
	)
}

// Answer generates an AI answer to a question with citations from web
// sources. Citations can arrive under either "citations" or "results"
// depending on the API revision; both are accepted.
func Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error) {
	if input.Query == "" {
		return AnswerOutput{}, fmt.Errorf("query is required")
	}

	reqBody := map[string]any{
		"query": input.Query,
	}
	if input.IncludeText {
		reqBody["contents"] = map[string]any{
			"text": true,
		}
	}

	apiResponse, err := postExa[exaAnswerAPIResponse](ctx, "/answer", reqBody)
	if err != nil {
		return AnswerOutput{}, err
	}

	sourceCitations := apiResponse.Citations
	if len(sourceCitations) == 0 {
		sourceCitations = apiResponse.Results
	}

	citations := make([]Citation, 0, len(sourceCitations))
	for _, c := range sourceCitations {
		citations = append(citations, Citation{
			Title:         c.Title,
			URL:           c.URL,
			Author:        c.Author,
			PublishedDate: c.PublishedDate,
			Text:          c.Text,
		})
	}

	return AnswerOutput{
		Query:     input.Query,
		Answer:    apiResponse.Answer,
		Citations: citations,
	}, nil
}
