package tool

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

type echoInput struct {
	Query string `json:"query" jsonschema:"description=Text to echo back,required"`
}

type echoOutput struct {
	Echo string `json:"echo"`
}

// newEchoTool builds a minimal search-shaped tool for registry tests.
func newEchoTool(name string) *Tool[echoInput, echoOutput] {
	return NewTool(name,
		func(ctx context.Context, input echoInput) (echoOutput, error) {
			return echoOutput{Echo: input.Query}, nil
		},
		WithDescription("Echoes the query back."),
	)
}

func TestCatalogAddAndGet(t *testing.T) {
	catalog := NewCatalogWithTools(newEchoTool("web_search"), newEchoTool("news_search"))

	if catalog.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", catalog.Size())
	}

	got, ok := catalog.Get("web_search")
	if !ok {
		t.Fatal("Get(web_search) not found")
	}
	if got.ToolInfo().Name != "web_search" {
		t.Errorf("got tool %q, want web_search", got.ToolInfo().Name)
	}

	if _, ok := catalog.Get("image_search"); ok {
		t.Error("Get(image_search) should not be found")
	}
}

func TestCatalogCaseInsensitiveNames(t *testing.T) {
	catalog := NewCatalogWithTools(newEchoTool("Exa_Search"))

	for _, name := range []string{"exa_search", "EXA_SEARCH", "Exa_Search"} {
		if !catalog.Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
	}
}

func TestCatalogReplacesSameName(t *testing.T) {
	first := newEchoTool("web_search")
	second := newEchoTool("web_search")

	catalog := NewCatalogWithTools(first)
	catalog.AddTools(second)

	if catalog.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 after replacement", catalog.Size())
	}
	got, _ := catalog.Get("web_search")
	if got != GenericTool(second) {
		t.Error("Get() returned the replaced tool, want the newest registration")
	}
}

func TestCatalogToolsReturnsCopy(t *testing.T) {
	catalog := NewCatalogWithTools(newEchoTool("web_search"))

	tools := catalog.Tools()
	delete(tools, "web_search")

	if !catalog.Has("web_search") {
		t.Error("mutating the Tools() copy must not affect the catalog")
	}
}

func TestCatalogValidate(t *testing.T) {
	valid := NewCatalogWithTools(newEchoTool("web_search"))
	if problems := valid.Validate(); len(problems) != 0 {
		t.Errorf("Validate() = %v, want no problems", problems)
	}

	// A tool built without a description should be reported.
	bare := NewTool("bare_tool", func(ctx context.Context, input echoInput) (echoOutput, error) {
		return echoOutput{}, nil
	})
	invalid := NewCatalogWithTools(bare)

	problems := invalid.Validate()
	if len(problems) != 1 {
		t.Fatalf("Validate() = %v, want one problem", problems)
	}
	if want := `tool "bare_tool" has no description`; problems[0] != want {
		t.Errorf("Validate()[0] = %q, want %q", problems[0], want)
	}
}

func TestCatalogConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			catalog.AddTools(newEchoTool(fmt.Sprintf("tool_%d", n)))
		}(i)
		go func(n int) {
			defer wg.Done()
			catalog.Has(fmt.Sprintf("tool_%d", n))
			catalog.Size()
		}(i)
	}
	wg.Wait()

	if catalog.Size() != 10 {
		t.Errorf("Size() = %d, want 10", catalog.Size())
	}
}
