package tool

import (
	"fmt"
	"strings"
	"sync"
)

// Catalog is the thread-safe name-to-tool registry a host consumes when
// registering and dispatching tools. Names are case-insensitive.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a catalog pre-populated with the given tools.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools registers tools under their ToolInfo().Name, replacing any
// existing tool with the same name.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[strings.ToLower(t.ToolInfo().Name)] = t
	}
}

// Get returns the tool registered under name, and whether it exists.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tool, exists := c.tools[strings.ToLower(name)]
	return tool, exists
}

// Has reports whether a tool is registered under name.
func (c *Catalog) Has(name string) bool {
	_, exists := c.Get(name)
	return exists
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Tools returns a copy of the registry keyed by registered name. Mutating
// the returned map does not affect the catalog.
func (c *Catalog) Tools() map[string]GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tools := make(map[string]GenericTool, len(c.tools))
	for name, t := range c.tools {
		tools[name] = t
	}
	return tools
}

// Validate reports problems that would degrade the catalog when advertised
// to a model: tools without a name, without a description, or without a
// parameter schema. An empty result means the catalog is ready to register.
func (c *Catalog) Validate() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var problems []string
	for name, t := range c.tools {
		info := t.ToolInfo()
		if info.Name == "" {
			problems = append(problems, fmt.Sprintf("tool registered as %q has an empty name", name))
		}
		if info.Description == "" {
			problems = append(problems, fmt.Sprintf("tool %q has no description", info.Name))
		}
		if info.Parameters == nil {
			problems = append(problems, fmt.Sprintf("tool %q has no parameter schema", info.Name))
		}
	}
	return problems
}
