//go:build integration

package exa

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/leofalp/toolbox/internal/utils"
)

// These tests hit the live Exa API. Run with -tags integration and
// EXA_API_KEY set; they skip otherwise.

func liveContext(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	if os.Getenv("EXA_API_KEY") == "" {
		t.Skip("EXA_API_KEY not set, skipping live API test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

func TestSearchLive(t *testing.T) {
	ctx := liveContext(t, 30*time.Second)

	t.Run("basic query", func(t *testing.T) {
		input := SearchInput{Query: "Go programming language", NumResults: 3}
		output, err := Search(ctx, input)
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if output.Query != input.Query {
			t.Errorf("Query = %q, want %q", output.Query, input.Query)
		}
		if len(output.Results) == 0 {
			t.Fatal("no results returned")
		}
		if output.Summary == "" {
			t.Error("empty summary")
		}
		for i, result := range output.Results {
			if result.Title == "" || result.URL == "" {
				t.Errorf("result %d incomplete: %+v", i, result)
			}
		}
		t.Logf("top result: %s - %s", output.Results[0].Title, output.Results[0].URL)
	})

	t.Run("category filter", func(t *testing.T) {
		output, err := Search(ctx, SearchInput{Query: "OpenAI", NumResults: 3, Category: "company"})
		if err != nil {
			t.Fatalf("Search() with category error: %v", err)
		}
		t.Logf("category=company returned %d results", len(output.Results))
	})

	t.Run("domain filter", func(t *testing.T) {
		output, err := Search(ctx, SearchInput{
			Query:          "golang concurrency",
			NumResults:     5,
			IncludeDomains: []string{"go.dev", "golang.org", "github.com"},
		})
		if err != nil {
			t.Fatalf("Search() with domain filter error: %v", err)
		}
		for _, result := range output.Results {
			t.Logf("  %s", result.URL)
		}
	})

	t.Run("published-after filter", func(t *testing.T) {
		output, err := Search(ctx, SearchInput{
			Query:              "AI news",
			NumResults:         3,
			StartPublishedDate: "2024-01-01",
		})
		if err != nil {
			t.Fatalf("Search() with date filter error: %v", err)
		}
		for _, result := range output.Results {
			t.Logf("  %s (published %s)", result.Title, result.PublishedDate)
		}
	})
}

func TestFindSimilarLive(t *testing.T) {
	ctx := liveContext(t, 30*time.Second)

	output, err := FindSimilar(ctx, SimilarInput{URL: "https://go.dev", NumResults: 3})
	if err != nil {
		t.Fatalf("FindSimilar() error: %v", err)
	}
	if len(output.Results) == 0 {
		t.Fatal("no similar pages returned")
	}
	if output.Summary == "" {
		t.Error("empty summary")
	}
	for i, result := range output.Results {
		t.Logf("similar %d: %s - %s", i+1, result.Title, result.URL)
	}
}

func TestAnswerLive(t *testing.T) {
	ctx := liveContext(t, 60*time.Second)

	t.Run("plain answer", func(t *testing.T) {
		input := AnswerInput{Query: "What is the Go programming language and who created it?"}
		output, err := Answer(ctx, input)
		if err != nil {
			t.Fatalf("Answer() error: %v", err)
		}
		if output.Query != input.Query {
			t.Errorf("Query = %q, want %q", output.Query, input.Query)
		}
		if output.Answer == "" {
			t.Fatal("empty answer")
		}
		t.Logf("answer: %s", utils.TruncateString(output.Answer, 500))
		t.Logf("citations: %d", len(output.Citations))
	})

	t.Run("with citation text", func(t *testing.T) {
		output, err := Answer(ctx, AnswerInput{
			Query:       "What are the main features of Kubernetes?",
			IncludeText: true,
		})
		if err != nil {
			t.Fatalf("Answer() with text error: %v", err)
		}
		if output.Answer == "" {
			t.Fatal("empty answer")
		}
		withText := 0
		for _, citation := range output.Citations {
			if citation.Text != "" {
				withText++
			}
		}
		if withText == 0 && len(output.Citations) > 0 {
			t.Log("no citation carried text despite IncludeText=true")
		}
		t.Logf("citations with text: %d of %d", withText, len(output.Citations))
	})
}
