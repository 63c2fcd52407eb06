// Package toolbox bundles ready-made tools that a command-line LLM host can
// register and invoke during a conversation: Brave Search adapters for
// web/image/news/video search, Exa adapters for semantic search, similarity
// search and grounded answers, and retrieval tools over a local sqlite
// embeddings store.
//
// Each tool is an independent request/response adapter; none of them share
// state. [SearchTools] returns the API-backed search tools, which only need
// their API keys configured (see internal/keys: keys.json or environment
// variables). [RetrievalTools] returns the embeddings retrieval tools, which
// additionally need an open [embeddings.Store] and an [embeddings.Embedder].
package toolbox

import (
	"github.com/leofalp/toolbox/providers/tool"
	"github.com/leofalp/toolbox/providers/tool/brave"
	"github.com/leofalp/toolbox/providers/tool/embeddings"
	"github.com/leofalp/toolbox/providers/tool/exa"
)

// SearchTools returns all search tools backed by third-party search APIs:
// the four Brave Search endpoints and the three Exa capabilities.
// The returned tools are stateless; they resolve their API keys on each call.
func SearchTools() []tool.GenericTool {
	return []tool.GenericTool{
		brave.NewWebSearchTool(),
		brave.NewImageSearchTool(),
		brave.NewNewsSearchTool(),
		brave.NewVideoSearchTool(),
		exa.NewExaSearchTool(),
		exa.NewExaFindSimilarTool(),
		exa.NewExaAnswerTool(),
	}
}

// RetrievalTools returns the local-retrieval tools bound to the given
// embeddings store and query embedder.
func RetrievalTools(store *embeddings.Store, embedder embeddings.Embedder) []tool.GenericTool {
	return []tool.GenericTool{
		embeddings.NewRelatedDocumentsTool(store, embedder),
		embeddings.NewListCollectionsTool(store),
	}
}

// NewCatalog returns a catalog pre-populated with every search tool.
// Retrieval tools are not included because they require an open store; add
// them with [tool.Catalog.AddTools] and [RetrievalTools] when available.
func NewCatalog() *tool.Catalog {
	return tool.NewCatalogWithTools(SearchTools()...)
}
