package parse

import (
	"strings"
	"testing"
)

// searchArgs mirrors the argument shape of a typical search tool.
type searchArgs struct {
	Query      string   `json:"query"`
	Count      int      `json:"count,omitempty"`
	Freshness  string   `json:"freshness,omitempty"`
	Domains    []string `json:"domains,omitempty"`
	FullText   bool     `json:"full_text,omitempty"`
	Similarity float64  `json:"similarity,omitempty"`
}

func TestParseStringAs_ValidJSON(t *testing.T) {
	got, err := ParseStringAs[searchArgs](`{"query": "go generics", "count": 5, "domains": ["go.dev", "golang.org"]}`)
	if err != nil {
		t.Fatalf("ParseStringAs() error: %v", err)
	}
	if got.Query != "go generics" {
		t.Errorf("Query = %q, want %q", got.Query, "go generics")
	}
	if got.Count != 5 {
		t.Errorf("Count = %d, want 5", got.Count)
	}
	if len(got.Domains) != 2 || got.Domains[0] != "go.dev" {
		t.Errorf("Domains = %v, want [go.dev golang.org]", got.Domains)
	}
}

// Models routinely emit almost-JSON arguments; the repair pass must recover
// the common corruption patterns.
func TestParseStringAs_RepairsMangledArguments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    searchArgs
	}{
		{
			name:    "single quotes",
			content: `{'query': 'kubernetes operators', 'count': 3}`,
			want:    searchArgs{Query: "kubernetes operators", Count: 3},
		},
		{
			name:    "unquoted keys",
			content: `{query: "vector databases", freshness: "pw"}`,
			want:    searchArgs{Query: "vector databases", Freshness: "pw"},
		},
		{
			name:    "trailing comma",
			content: `{"query": "rust vs go", "count": 10,}`,
			want:    searchArgs{Query: "rust vs go", Count: 10},
		},
		{
			name:    "unclosed object",
			content: `{"query": "transformer attention", "full_text": true`,
			want:    searchArgs{Query: "transformer attention", FullText: true},
		},
		{
			name:    "single-quoted array elements",
			content: `{"query": "golang", "domains": ['go.dev', 'golang.org']}`,
			want:    searchArgs{Query: "golang", Domains: []string{"go.dev", "golang.org"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[searchArgs](tt.content)
			if err != nil {
				t.Fatalf("ParseStringAs(%q) error: %v", tt.content, err)
			}
			if got.Query != tt.want.Query || got.Count != tt.want.Count ||
				got.Freshness != tt.want.Freshness || got.FullText != tt.want.FullText {
				t.Errorf("ParseStringAs(%q) = %+v, want %+v", tt.content, got, tt.want)
			}
			if len(got.Domains) != len(tt.want.Domains) {
				t.Errorf("Domains = %v, want %v", got.Domains, tt.want.Domains)
			}
		})
	}
}

// Some models echo the parameter schema back as the argument value. The
// wrapper objects must be flattened to their values.
func TestParseStringAs_UnwrapsSchemaEchoes(t *testing.T) {
	content := `{"query": {"type": "string", "value": "local embeddings"}, "count": {"type": "integer", "value": 4}}`

	got, err := ParseStringAs[searchArgs](content)
	if err != nil {
		t.Fatalf("ParseStringAs() error: %v", err)
	}
	if got.Query != "local embeddings" {
		t.Errorf("Query = %q, want %q", got.Query, "local embeddings")
	}
	if got.Count != 4 {
		t.Errorf("Count = %d, want 4", got.Count)
	}
}

func TestParseStringAs_UnwrapsNestedSchemaEchoes(t *testing.T) {
	content := `{"query": "a", "domains": {"type": "array", "value": [{"type": "string", "value": "go.dev"}]}}`

	got, err := ParseStringAs[searchArgs](content)
	if err != nil {
		t.Fatalf("ParseStringAs() error: %v", err)
	}
	if len(got.Domains) != 1 || got.Domains[0] != "go.dev" {
		t.Errorf("Domains = %v, want [go.dev]", got.Domains)
	}
}

// A genuine two-field object with "type" and "value" keys plus siblings must
// not be mistaken for a schema wrapper.
func TestParseStringAs_KeepsNonWrapperObjects(t *testing.T) {
	type typed struct {
		Type  string `json:"type"`
		Value string `json:"value"`
		Extra string `json:"extra"`
	}

	got, err := ParseStringAs[typed](`{"type": "news", "value": "breaking", "extra": "kept"}`)
	if err != nil {
		t.Fatalf("ParseStringAs() error: %v", err)
	}
	if got.Type != "news" || got.Value != "breaking" || got.Extra != "kept" {
		t.Errorf("ParseStringAs() = %+v, want all fields preserved", got)
	}
}

func TestParseStringAs_StringPassthrough(t *testing.T) {
	got, err := ParseStringAs[string]("plain text question, no JSON at all")
	if err != nil {
		t.Fatalf("ParseStringAs() error: %v", err)
	}
	if got != "plain text question, no JSON at all" {
		t.Errorf("ParseStringAs() = %q, want the raw content", got)
	}
}

func TestParseStringAs_Primitives(t *testing.T) {
	count, err := ParseStringAs[int]("42")
	if err != nil {
		t.Fatalf("ParseStringAs[int]() error: %v", err)
	}
	if count != 42 {
		t.Errorf("ParseStringAs[int]() = %d, want 42", count)
	}

	flag, err := ParseStringAs[bool]("true")
	if err != nil {
		t.Fatalf("ParseStringAs[bool]() error: %v", err)
	}
	if !flag {
		t.Error("ParseStringAs[bool]() = false, want true")
	}
}

func TestParseStringAs_WrongShapeFails(t *testing.T) {
	// Repairable JSON, but an array can never populate a struct.
	_, err := ParseStringAs[searchArgs](`[1, 2`)
	if err == nil {
		t.Fatal("expected error for array content, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse content") {
		t.Errorf("error = %q, want a parse failure message", err)
	}
}
