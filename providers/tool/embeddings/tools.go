package embeddings

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/toolbox/core/cost"
	"github.com/leofalp/toolbox/internal/utils"
	"github.com/leofalp/toolbox/providers/tool"
)

// RelatedDocumentsInput holds the parameters for a related-documents lookup.
type RelatedDocumentsInput struct {
	Collection string `json:"collection" jsonschema:"description=Name of the embeddings collection to search,required"`
	Query      string `json:"query" jsonschema:"description=Text to find related documents for,required"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"description=Number of documents to return (1-100 default: 3),minimum=1,maximum=100"`
}

// RelatedDocumentsOutput holds the retrieved documents plus a formatted
// summary.
type RelatedDocumentsOutput struct {
	Collection string     `json:"collection" jsonschema:"description=The collection that was searched"`
	Query      string     `json:"query" jsonschema:"description=The original query text"`
	Summary    string     `json:"summary" jsonschema:"description=Formatted summary of related documents"`
	Results    []Document `json:"results" jsonschema:"description=Retrieved documents ordered by similarity"`
}

// NewRelatedDocumentsTool returns a tool that retrieves the documents most
// similar to a query from a local embeddings collection. The query is
// embedded with embedder, which must match the model the collection was
// built with.
func NewRelatedDocumentsTool(store *Store, embedder Embedder) *tool.Tool[RelatedDocumentsInput, RelatedDocumentsOutput] {
	return tool.NewTool[RelatedDocumentsInput, RelatedDocumentsOutput](
		"related_documents",
		func(ctx context.Context, input RelatedDocumentsInput) (RelatedDocumentsOutput, error) {
			return RelatedDocuments(ctx, store, embedder, input)
		},
		tool.WithDescription("Retrieve documents related to a query from a local embeddings collection. The query is embedded and compared against every stored document by cosine similarity; the closest matches are returned with their content and scores. Use list_collections to discover available collections."),
		tool.WithMetrics(cost.ToolMetrics{
			CostDescription:         "local database query plus one embedding call",
			Accuracy:                0.9,
			AverageDurationInMillis: 100,
		}),
	)
}

// RelatedDocuments embeds the query and runs a similarity search over the
// named collection.
func RelatedDocuments(ctx context.Context, store *Store, embedder Embedder, input RelatedDocumentsInput) (RelatedDocumentsOutput, error) {
	if input.Collection == "" {
		return RelatedDocumentsOutput{}, fmt.Errorf("collection is required")
	}
	if input.Query == "" {
		return RelatedDocumentsOutput{}, fmt.Errorf("query is required")
	}

	vector, err := embedder.Embed(ctx, input.Query)
	if err != nil {
		return RelatedDocumentsOutput{}, err
	}

	documents, err := store.Similar(ctx, input.Collection, vector, input.NumResults)
	if err != nil {
		return RelatedDocumentsOutput{}, err
	}

	var summaryParts []string
	for _, doc := range documents {
		summaryParts = append(summaryParts,
			fmt.Sprintf("ID: %s", doc.ID),
			fmt.Sprintf("Score: %.4f", doc.Score),
		)
		if doc.Content != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("Content: %s", utils.TruncateString(doc.Content, 500)))
		}
		if doc.Metadata != "" {
			summaryParts = append(summaryParts, fmt.Sprintf("Metadata: %s", doc.Metadata))
		}
		summaryParts = append(summaryParts, "---------\n")
	}

	summary := strings.Join(summaryParts, "\n")
	if summary == "" {
		summary = fmt.Sprintf("No related documents found in collection '%s'.", input.Collection)
	}

	return RelatedDocumentsOutput{
		Collection: input.Collection,
		Query:      input.Query,
		Summary:    summary,
		Results:    documents,
	}, nil
}

// ListCollectionsInput has no parameters; the tool always lists everything.
type ListCollectionsInput struct{}

// ListCollectionsOutput holds every collection with a formatted summary.
type ListCollectionsOutput struct {
	Summary     string           `json:"summary" jsonschema:"description=Formatted summary of available collections"`
	Collections []CollectionInfo `json:"collections" jsonschema:"description=Available embeddings collections"`
}

// NewListCollectionsTool returns a tool that lists the embeddings
// collections available in the store.
func NewListCollectionsTool(store *Store) *tool.Tool[ListCollectionsInput, ListCollectionsOutput] {
	return tool.NewTool[ListCollectionsInput, ListCollectionsOutput](
		"list_collections",
		func(ctx context.Context, input ListCollectionsInput) (ListCollectionsOutput, error) {
			return ListCollections(ctx, store)
		},
		tool.WithDescription("List the embeddings collections available for retrieval, with the embedding model and document count of each. Use this before related_documents to discover what can be searched."),
		tool.WithMetrics(cost.ToolMetrics{
			CostDescription:         "local database query",
			Accuracy:                1.0,
			AverageDurationInMillis: 10,
		}),
	)
}

// ListCollections lists every collection in the store.
func ListCollections(ctx context.Context, store *Store) (ListCollectionsOutput, error) {
	collections, err := store.Collections(ctx)
	if err != nil {
		return ListCollectionsOutput{}, err
	}

	var summaryParts []string
	for _, info := range collections {
		line := fmt.Sprintf("%s: %d documents", info.Name, info.Count)
		if info.Model != "" {
			line = fmt.Sprintf("%s: %d documents (model: %s)", info.Name, info.Count, info.Model)
		}
		summaryParts = append(summaryParts, line)
	}

	summary := strings.Join(summaryParts, "\n")
	if summary == "" {
		summary = "No collections found."
	}

	return ListCollectionsOutput{
		Summary:     summary,
		Collections: collections,
	}, nil
}
