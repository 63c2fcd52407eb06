package embeddings

import (
	"context"
	"fmt"
	"net/http"

	"github.com/leofalp/toolbox/internal/utils"
)

// Embedder turns query text into a vector in the same space as a stored
// collection. Implementations must use the same model the collection was
// built with or similarity scores are meaningless.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// HTTPEmbedder embeds text through an HTTP embedding service that follows
// the text-embeddings-inference convention: POST {"inputs": text} to /embed,
// receiving a batch of vectors back.
type HTTPEmbedder struct {
	url    string
	client *http.Client
}

// NewHTTPEmbedder returns an embedder that calls the service at url
// (e.g. "http://localhost:8080/embed"). A nil client falls back to
// http.DefaultClient.
func NewHTTPEmbedder(url string, client *http.Client) *HTTPEmbedder {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPEmbedder{url: url, client: client}
}

// embedRequest is the service's request body.
type embedRequest struct {
	Inputs string `json:"inputs"`
}

// Embed sends text to the embedding service and returns the first vector of
// the batch response.
func (e *HTTPEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	_, vectors, err := utils.DoPostSync[[][]float32](ctx, e.client, e.url, "", embedRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("error embedding query text: %w", err)
	}
	if vectors == nil || len(*vectors) == 0 || len((*vectors)[0]) == 0 {
		return nil, fmt.Errorf("embedding service returned no vector")
	}
	return (*vectors)[0], nil
}
