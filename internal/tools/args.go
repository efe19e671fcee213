package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
)

// Args is the top-level argument object of a tool call. It remembers the
// order in which the caller supplied keys so that query strings and request
// bodies are forwarded in the same order.
type Args struct {
	keys   []string
	raw    map[string]json.RawMessage
	values map[string]any
}

// ParseArgs decodes a JSON object. Empty input and null yield empty Args.
// Numbers decode as json.Number.
func ParseArgs(data json.RawMessage) (Args, error) {
	a := Args{
		raw:    make(map[string]json.RawMessage),
		values: make(map[string]any),
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return a, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Args{}, fmt.Errorf("decode arguments: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Args{}, errors.New("arguments must be a JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Args{}, fmt.Errorf("decode arguments: %w", err)
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Args{}, fmt.Errorf("decode argument %q: %w", key, err)
		}
		var v any
		vdec := json.NewDecoder(bytes.NewReader(raw))
		vdec.UseNumber()
		if err := vdec.Decode(&v); err != nil {
			return Args{}, fmt.Errorf("decode argument %q: %w", key, err)
		}

		if _, seen := a.values[key]; !seen {
			a.keys = append(a.keys, key)
		}
		a.raw[key] = raw
		a.values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return Args{}, fmt.Errorf("decode arguments: %w", err)
	}
	return a, nil
}

// Len returns the number of arguments.
func (a Args) Len() int { return len(a.keys) }

// Keys returns the argument names in caller order.
func (a Args) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Get returns the decoded value of key.
func (a Args) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// String returns key formatted for a URL, or "" when absent or null.
func (a Args) String(key string) string {
	return jobboss2.FormatValue(a.values[key])
}

// Raw returns the undecoded JSON of key.
func (a Args) Raw(key string) (json.RawMessage, bool) {
	v, ok := a.raw[key]
	return v, ok
}

// Object parses the nested object stored under key, keeping its key order.
func (a Args) Object(key string) (Args, error) {
	return ParseArgs(a.raw[key])
}

// Strings returns the array stored under key as strings.
func (a Args) Strings(key string) []string {
	list, ok := a.values[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s := jobboss2.FormatValue(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Without returns a copy of a lacking the named keys.
func (a Args) Without(names ...string) Args {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := Args{
		raw:    make(map[string]json.RawMessage, len(a.keys)),
		values: make(map[string]any, len(a.keys)),
	}
	for _, k := range a.keys {
		if drop[k] {
			continue
		}
		out.keys = append(out.keys, k)
		out.raw[k] = a.raw[k]
		out.values[k] = a.values[k]
	}
	return out
}

// Query converts the arguments to query parameters. Null values are left
// out by jobboss2.Build.
func (a Args) Query() jobboss2.Query {
	q := make(jobboss2.Query, 0, len(a.keys))
	for _, k := range a.keys {
		v := a.values[k]
		// Operator filters such as status[in] take A|B lists.
		if _, ok := v.([]any); ok {
			v = strings.Join(a.Strings(k), "|")
		}
		q = append(q, jobboss2.Param{Key: k, Value: v})
	}
	return q
}

// MarshalJSON writes the arguments as an object in caller order. Values are
// copied verbatim from the input.
func (a Args) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(a.raw[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
