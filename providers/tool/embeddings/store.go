package embeddings

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	_ "github.com/mattn/go-sqlite3"
)

const (
	defaultTopK = 3
	maxTopK     = 100
)

// Store is a read-only query layer over a host-managed sqlite embeddings
// database. The expected schema is collections(id, name, model) and
// embeddings(collection_id, id, embedding, content, metadata, updated),
// where embedding holds a packed little-endian float32 vector.
type Store struct {
	db *sql.DB
}

// OpenReadOnly opens the sqlite database at path in read-only mode. The
// plugins never write to the store; all writes belong to the host.
// A missing or unreadable file fails here rather than on the first query.
func OpenReadOnly(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("error opening embeddings database %s: %w", path, err)
	}
	// sql.Open defers touching the file; ping to surface path errors now.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error opening embeddings database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CollectionInfo describes one embeddings collection.
type CollectionInfo struct {
	Name  string `json:"name" jsonschema:"description=Name of the collection"`
	Model string `json:"model,omitempty" jsonschema:"description=Embedding model the collection was built with"`
	Count int    `json:"count" jsonschema:"description=Number of embedded documents in the collection"`
}

// Collections lists every collection with its embedding model and document
// count.
func (s *Store) Collections(ctx context.Context) ([]CollectionInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, COALESCE(c.model, ''), COUNT(e.id)
		FROM collections c
		LEFT JOIN embeddings e ON e.collection_id = c.id
		GROUP BY c.id
		ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}
	defer rows.Close()

	var collections []CollectionInfo
	for rows.Next() {
		var info CollectionInfo
		if err := rows.Scan(&info.Name, &info.Model, &info.Count); err != nil {
			return nil, fmt.Errorf("error scanning collection row: %w", err)
		}
		collections = append(collections, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collections: %w", err)
	}

	return collections, nil
}

// Document is a retrieved document with its similarity score.
type Document struct {
	ID       string  `json:"id" jsonschema:"description=Document identifier within the collection"`
	Score    float64 `json:"score" jsonschema:"description=Cosine similarity score between query and document"`
	Content  string  `json:"content,omitempty" jsonschema:"description=Stored text content of the document"`
	Metadata string  `json:"metadata,omitempty" jsonschema:"description=Stored metadata JSON of the document"`
}

// Similar returns the topK documents in the named collection closest to the
// query vector by cosine similarity, highest score first. topK is clamped to
// the 1-100 range and defaults to 3 when unset. An unknown collection is an
// error; an empty collection yields an empty result.
func (s *Store) Similar(ctx context.Context, collection string, vector []float32, topK int) ([]Document, error) {
	if topK <= 0 {
		topK = defaultTopK
	}
	if topK > maxTopK {
		topK = maxTopK
	}

	var collectionID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM collections WHERE name = ?`, collection).Scan(&collectionID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
	if err != nil {
		return nil, fmt.Errorf("error resolving collection %q: %w", collection, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, embedding, COALESCE(content, ''), COALESCE(metadata, '')
		FROM embeddings
		WHERE collection_id = ?`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("error querying embeddings for %q: %w", collection, err)
	}
	defer rows.Close()

	var documents []Document
	for rows.Next() {
		var doc Document
		var blob []byte
		if err := rows.Scan(&doc.ID, &blob, &doc.Content, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("error scanning embedding row: %w", err)
		}

		stored, err := DecodeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("document %q in collection %q: %w", doc.ID, collection, err)
		}

		doc.Score, err = cosineSimilarity(vector, stored)
		if err != nil {
			return nil, fmt.Errorf("document %q in collection %q: %w", doc.ID, collection, err)
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating embeddings: %w", err)
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].Score > documents[j].Score
	})
	if len(documents) > topK {
		documents = documents[:topK]
	}

	return documents, nil
}

// DecodeVector unpacks a little-endian float32 BLOB into a vector. The blob
// length must be a multiple of 4 bytes.
func DecodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("embedding blob length %d is not a multiple of 4", len(blob))
	}
	vector := make([]float32, len(blob)/4)
	for i := range vector {
		bits := binary.LittleEndian.Uint32(blob[i*4:])
		vector[i] = math.Float32frombits(bits)
	}
	return vector, nil
}

// EncodeVector packs a vector into the little-endian float32 BLOB layout the
// host stores. It is the inverse of [DecodeVector], exposed for fixtures and
// hosts that prepare query vectors out of band.
func EncodeVector(vector []float32) []byte {
	blob := make([]byte, len(vector)*4)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(v))
	}
	return blob
}

// cosineSimilarity computes the cosine of the angle between two vectors of
// equal dimension. A zero-magnitude vector scores 0.
func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimension mismatch: query has %d, stored has %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
