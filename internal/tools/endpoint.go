package tools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
)

// routing decides where the arguments left over after path expansion go.
type routing int

const (
	// queryAll sends every remaining argument as a query parameter.
	queryAll routing = iota
	// fieldsOnly sends only "fields" as a query parameter.
	fieldsOnly
	// bodyRest sends the remaining arguments as the JSON body.
	bodyRest
	// pathOnly sends nothing beyond the path.
	pathOnly
)

// endpoint is one row of a catalog table: a tool bound to a single REST
// endpoint.
type endpoint struct {
	name        Name
	description string
	method      string
	path        string
	args        routing
	schema      json.RawMessage

	// void replaces whatever the API returns with {"success": true}.
	void bool

	// message is a confirmation template such as
	// "Vendor {vendorCode} updated successfully".
	message string
}

func list(name Name, description, path string) endpoint {
	return endpoint{name: name, description: description, method: http.MethodGet, path: path, args: queryAll, schema: listSchema}
}

func lookup(name Name, description, path string, keys ...prop) endpoint {
	return endpoint{name: name, description: description, method: http.MethodGet, path: path, args: fieldsOnly, schema: keyed(keys...)}
}

func create(name Name, description, path string, schema json.RawMessage) endpoint {
	return endpoint{name: name, description: description, method: http.MethodPost, path: path, args: bodyRest, schema: schema}
}

func update(name Name, description, path string, schema json.RawMessage) endpoint {
	return endpoint{name: name, description: description, method: http.MethodPatch, path: path, args: bodyRest, schema: schema}
}

func (e endpoint) withMessage(message string) endpoint {
	e.message = message
	return e
}

func (e endpoint) voidResult() endpoint {
	e.void = true
	return e
}

// catalog builds descriptors for rows, all filed under category.
func catalog(category string, rows ...endpoint) []Descriptor {
	out := make([]Descriptor, len(rows))
	for i, row := range rows {
		out[i] = row.descriptor(category)
	}
	return out
}

func (e endpoint) descriptor(category string) Descriptor {
	d := Descriptor{
		Name:        e.name,
		Category:    category,
		Description: e.description,
		InputSchema: e.schema,
		Handler:     e.handle,
	}
	if e.message != "" {
		d.SuccessMessage = e.confirm
	}
	return d
}

func (e endpoint) handle(ctx context.Context, args Args, c Caller) (any, error) {
	path, used, err := jobboss2.ExpandPath(e.path, args.Get)
	if err != nil {
		return nil, &InvalidArgumentsError{Tool: string(e.name), Details: []string{err.Error()}}
	}
	rest := args.Without(used...)

	var (
		body  any
		query jobboss2.Query
	)
	switch e.args {
	case queryAll:
		query = rest.Query()
	case fieldsOnly:
		if fields := rest.String("fields"); fields != "" {
			query = jobboss2.Query{{Key: "fields", Value: fields}}
		}
	case bodyRest:
		body = rest
	}

	spec, err := jobboss2.Build(e.method, path, body, query)
	if err != nil {
		return nil, err
	}
	result, err := c.Do(ctx, spec)
	if err != nil {
		return nil, err
	}
	if e.void {
		return map[string]any{"success": true}, nil
	}
	return result, nil
}

func (e endpoint) confirm(args Args) string {
	msg, _, err := jobboss2.Expand(e.message, args.Get, nil)
	if err != nil {
		return e.message
	}
	return msg
}
