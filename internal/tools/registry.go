// Package tools holds the JobBOSS2 tool catalog and the dispatcher that runs
// tool calls against it.
//
// Every tool is a Descriptor: a name, a JSON input schema, and a Handler that
// turns validated arguments into one upstream request. Most descriptors are
// generated from endpoint tables; a few have hand-written handlers.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
)

// Name identifies a tool.
type Name string

// Caller executes one upstream request. *jobboss2.Client implements it.
type Caller interface {
	Do(ctx context.Context, spec jobboss2.RequestSpec) (any, error)
}

// Handler performs a tool's work. The returned payload is rendered as JSON
// unless the descriptor has a SuccessMessage.
type Handler func(ctx context.Context, args Args, c Caller) (any, error)

// Descriptor describes one tool.
type Descriptor struct {
	Name        Name
	Category    string
	Description string
	InputSchema json.RawMessage
	Handler     Handler

	// SuccessMessage, when set, replaces the payload with a fixed
	// confirmation built from the original arguments.
	SuccessMessage func(args Args) string

	schema *gojsonschema.Schema
}

// Info is the public view of a descriptor.
type Info struct {
	Name        Name            `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

func (d *Descriptor) info() Info {
	return Info{
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		InputSchema: d.InputSchema,
	}
}

// validate checks raw against the compiled input schema.
func (d *Descriptor) validate(raw json.RawMessage) error {
	doc := raw
	if len(doc) == 0 || string(doc) == "null" {
		doc = json.RawMessage(`{}`)
	}
	result, err := d.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &InvalidArgumentsError{Tool: string(d.Name), Details: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return &InvalidArgumentsError{Tool: string(d.Name), Details: details}
}

// Registry is an immutable set of tools in registration order.
type Registry struct {
	tools  []*Descriptor
	byName map[Name]*Descriptor
}

// NewRegistry compiles every descriptor's schema and indexes it by name.
// Duplicate names and invalid schemas are errors.
func NewRegistry(catalogs ...[]Descriptor) (*Registry, error) {
	r := &Registry{byName: make(map[Name]*Descriptor)}
	for _, catalog := range catalogs {
		for i := range catalog {
			d := catalog[i]
			if d.Name == "" {
				return nil, fmt.Errorf("tool in category %q has no name", d.Category)
			}
			if _, exists := r.byName[d.Name]; exists {
				return nil, fmt.Errorf("duplicate tool name %q", d.Name)
			}
			if d.Handler == nil {
				return nil, fmt.Errorf("tool %q has no handler", d.Name)
			}
			compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(d.InputSchema))
			if err != nil {
				return nil, fmt.Errorf("tool %q: invalid input schema: %w", d.Name, err)
			}
			d.schema = compiled
			r.tools = append(r.tools, &d)
			r.byName[d.Name] = &d
		}
	}
	return r, nil
}

// Default returns a registry holding the full JobBOSS2 catalog.
func Default() (*Registry, error) {
	return NewRegistry(
		orderTools(),
		customerTools(),
		quoteTools(),
		inventoryTools(),
		productionTools(),
		employeeTools(),
		generalTools(),
		passthroughTools(),
	)
}

// List returns every tool in registration order.
func (r *Registry) List() []Info {
	out := make([]Info, len(r.tools))
	for i, d := range r.tools {
		out[i] = d.info()
	}
	return out
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name Name) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len returns the number of tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Categories returns the category names in registration order.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range r.tools {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	return out
}
