package tools

import "encoding/json"

// Shared input schemas. They are written out by hand and avoid constructs such
// as "type": ["null", "object"] that strict MCP clients reject.

// listSchema is the input of every list endpoint. Any key beyond the four
// named ones is forwarded as a filter, e.g. "status[in]" or "orderTotal[gte]".
var listSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"fields": {
			"type": "string",
			"description": "Comma-separated list of fields to return"
		},
		"sort": {
			"type": "string",
			"description": "Sort expression (e.g., -dateEntered for descending, +orderNumber for ascending)"
		},
		"skip": {
			"type": "number",
			"description": "Skip N records (pagination)"
		},
		"take": {
			"type": "number",
			"description": "Take N records (pagination, default 200)"
		}
	},
	"additionalProperties": true
}`)

// noInputSchema accepts only an empty object.
var noInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {},
	"additionalProperties": false
}`)

// anyObjectSchema accepts any object; the whole object becomes the body.
var anyObjectSchema = json.RawMessage(`{
	"type": "object",
	"additionalProperties": true
}`)

// prop is one named property of an object schema.
type prop struct {
	name string
	def  map[string]any
}

func str(name, description string) prop {
	return prop{name, map[string]any{"type": "string", "description": description}}
}

func num(name, description string) prop {
	return prop{name, map[string]any{"type": "number", "description": description}}
}

func boolean(name, description string) prop {
	return prop{name, map[string]any{"type": "boolean", "description": description}}
}

// strOrNum accepts identifiers that JobBOSS2 stores as either text or numbers.
func strOrNum(name, description string) prop {
	return prop{name, map[string]any{
		"oneOf":       []any{map[string]any{"type": "string"}, map[string]any{"type": "number"}},
		"description": description,
	}}
}

func strList(name, description string) prop {
	return prop{name, map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}}
}

func fieldsProp() prop {
	return str("fields", "Comma-separated list of fields to return")
}

// objectSchema assembles an object schema from props.
type objectSchema struct {
	props    []prop
	required []string
	extra    bool
}

func schema(props ...prop) *objectSchema {
	return &objectSchema{props: props}
}

func (s *objectSchema) require(names ...string) *objectSchema {
	s.required = append(s.required, names...)
	return s
}

// open allows properties beyond the declared ones.
func (s *objectSchema) open() *objectSchema {
	s.extra = true
	return s
}

func (s *objectSchema) JSON() json.RawMessage {
	props := make(map[string]any, len(s.props))
	for _, p := range s.props {
		props[p.name] = p.def
	}
	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(s.required) > 0 {
		doc["required"] = s.required
	}
	if s.extra {
		doc["additionalProperties"] = true
	}
	data, err := json.Marshal(doc)
	if err != nil {
		panic("tools: marshal schema: " + err.Error())
	}
	return data
}

// keyed is the schema of a lookup by one or more identifiers plus an
// optional field selection.
func keyed(keys ...prop) json.RawMessage {
	s := schema(append(keys, fieldsProp())...)
	for _, k := range keys {
		s.require(k.name)
	}
	return s.JSON()
}

// patch is the schema of an update addressed by keys. Every other property is
// sent as the body.
func patch(keys ...prop) json.RawMessage {
	s := schema(keys...).open()
	for _, k := range keys {
		s.require(k.name)
	}
	return s.JSON()
}
