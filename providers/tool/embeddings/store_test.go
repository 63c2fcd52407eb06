package embeddings

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

// newFixtureStore builds a sqlite database with the host schema, loads the
// given collections, and opens it read-only.
func newFixtureStore(t *testing.T, collections map[string][]fixtureDoc) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "embeddings.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("opening fixture database: %v", err)
	}

	schema := `
		CREATE TABLE collections (
			id INTEGER PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			model TEXT
		);
		CREATE TABLE embeddings (
			collection_id INTEGER REFERENCES collections(id),
			id TEXT NOT NULL,
			embedding BLOB NOT NULL,
			content TEXT,
			metadata TEXT,
			updated INTEGER,
			PRIMARY KEY (collection_id, id)
		);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("creating fixture schema: %v", err)
	}

	for name, docs := range collections {
		res, err := db.Exec(`INSERT INTO collections (name, model) VALUES (?, ?)`, name, "test-model")
		if err != nil {
			t.Fatalf("inserting collection %s: %v", name, err)
		}
		collectionID, _ := res.LastInsertId()
		for _, doc := range docs {
			_, err := db.Exec(
				`INSERT INTO embeddings (collection_id, id, embedding, content, metadata) VALUES (?, ?, ?, ?, ?)`,
				collectionID, doc.id, EncodeVector(doc.vector), doc.content, doc.metadata)
			if err != nil {
				t.Fatalf("inserting document %s: %v", doc.id, err)
			}
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("closing fixture database: %v", err)
	}

	store, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

type fixtureDoc struct {
	id       string
	vector   []float32
	content  string
	metadata string
}

// TestOpenReadOnly_MissingFile verifies a bad database path fails at open
// time instead of on the first query.
func TestOpenReadOnly_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")

	store, err := OpenReadOnly(path)
	if err == nil {
		_ = store.Close()
		t.Fatal("OpenReadOnly() expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error = %v, want the offending path included", err)
	}
}

// TestVectorCodec verifies the BLOB encoding round-trips and rejects
// truncated blobs.
func TestVectorCodec(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := []float32{0.1, -2.5, 3.75, 0}
		decoded, err := DecodeVector(EncodeVector(original))
		if err != nil {
			t.Fatalf("DecodeVector() error: %v", err)
		}
		if len(decoded) != len(original) {
			t.Fatalf("len = %d, want %d", len(decoded), len(original))
		}
		for i := range original {
			if decoded[i] != original[i] {
				t.Errorf("decoded[%d] = %f, want %f", i, decoded[i], original[i])
			}
		}
	})

	t.Run("truncated blob", func(t *testing.T) {
		_, err := DecodeVector([]byte{1, 2, 3})
		if err == nil {
			t.Fatal("DecodeVector() expected error for 3-byte blob, got nil")
		}
		if !strings.Contains(err.Error(), "not a multiple of 4") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("empty blob", func(t *testing.T) {
		decoded, err := DecodeVector(nil)
		if err != nil {
			t.Fatalf("DecodeVector() error: %v", err)
		}
		if len(decoded) != 0 {
			t.Errorf("len = %d, want 0", len(decoded))
		}
	})
}

// TestCosineSimilarity verifies similarity scores for known vector pairs.
func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float32
		want    float64
		wantErr bool
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1, false},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0, false},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1, false},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0, false},
		{"dimension mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cosineSimilarity(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("cosineSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}

// TestCollections verifies listing with models and document counts.
func TestCollections(t *testing.T) {
	store := newFixtureStore(t, map[string][]fixtureDoc{
		"articles": {
			{id: "a1", vector: []float32{1, 0}},
			{id: "a2", vector: []float32{0, 1}},
		},
		"notes": {},
	})

	collections, err := store.Collections(context.Background())
	if err != nil {
		t.Fatalf("Collections() error: %v", err)
	}
	if len(collections) != 2 {
		t.Fatalf("len = %d, want 2", len(collections))
	}

	byName := make(map[string]CollectionInfo, len(collections))
	for _, info := range collections {
		byName[info.Name] = info
	}
	if byName["articles"].Count != 2 {
		t.Errorf("articles count = %d, want 2", byName["articles"].Count)
	}
	if byName["notes"].Count != 0 {
		t.Errorf("notes count = %d, want 0", byName["notes"].Count)
	}
	if byName["articles"].Model != "test-model" {
		t.Errorf("articles model = %q, want test-model", byName["articles"].Model)
	}
}

// TestSimilar verifies scoring order, topK limiting, and the error and
// empty-collection edge cases.
func TestSimilar(t *testing.T) {
	store := newFixtureStore(t, map[string][]fixtureDoc{
		"articles": {
			{id: "exact", vector: []float32{1, 0, 0}, content: "exact match"},
			{id: "close", vector: []float32{0.9, 0.1, 0}, content: "close match"},
			{id: "far", vector: []float32{0, 0, 1}, content: "unrelated"},
			{id: "opposite", vector: []float32{-1, 0, 0}, content: "inverse"},
		},
		"empty": {},
	})
	ctx := context.Background()
	query := []float32{1, 0, 0}

	t.Run("orders by score", func(t *testing.T) {
		docs, err := store.Similar(ctx, "articles", query, 4)
		if err != nil {
			t.Fatalf("Similar() error: %v", err)
		}
		if len(docs) != 4 {
			t.Fatalf("len = %d, want 4", len(docs))
		}
		wantOrder := []string{"exact", "close", "far", "opposite"}
		for i, want := range wantOrder {
			if docs[i].ID != want {
				t.Errorf("docs[%d].ID = %q, want %q", i, docs[i].ID, want)
			}
		}
		if math.Abs(docs[0].Score-1) > 1e-6 {
			t.Errorf("top score = %f, want 1", docs[0].Score)
		}
	})

	t.Run("default topK", func(t *testing.T) {
		docs, err := store.Similar(ctx, "articles", query, 0)
		if err != nil {
			t.Fatalf("Similar() error: %v", err)
		}
		if len(docs) != 3 {
			t.Errorf("len = %d, want default 3", len(docs))
		}
	})

	t.Run("unknown collection", func(t *testing.T) {
		_, err := store.Similar(ctx, "missing", query, 3)
		if err == nil {
			t.Fatal("Similar() expected error for unknown collection, got nil")
		}
		if !strings.Contains(err.Error(), `unknown collection "missing"`) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		docs, err := store.Similar(ctx, "empty", query, 3)
		if err != nil {
			t.Fatalf("Similar() error: %v", err)
		}
		if len(docs) != 0 {
			t.Errorf("len = %d, want 0", len(docs))
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := store.Similar(ctx, "articles", []float32{1, 0}, 3)
		if err == nil {
			t.Fatal("Similar() expected error for dimension mismatch, got nil")
		}
		if !strings.Contains(err.Error(), "dimension mismatch") {
			t.Errorf("error = %v", err)
		}
	})
}
