// Package embeddings provides retrieval tools over a host-managed sqlite
// embeddings database: [NewRelatedDocumentsTool] for cosine-similarity
// document retrieval and [NewListCollectionsTool] for collection discovery.
//
// The package never writes to the database. Open it with [OpenReadOnly] and
// supply an [Embedder] that matches the model the target collection was
// embedded with; [NewHTTPEmbedder] covers services speaking the
// text-embeddings-inference protocol.
package embeddings
