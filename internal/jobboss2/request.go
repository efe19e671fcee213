package jobboss2

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// APIPrefix is the versioned path prefix of every JobBOSS2 resource.
const APIPrefix = "/api/v1/"

// Param is a single query-string parameter. Keys are passed through as
// given, so filter operators such as "status[in]" or "orderTotal[gte]"
// reach the API unchanged.
type Param struct {
	Key   string
	Value any
}

// Query is an ordered list of query parameters.
type Query []Param

// Get returns the formatted value of the first parameter named key.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return FormatValue(p.Value), true
		}
	}
	return "", false
}

// Encode renders the query in insertion order with both keys and values
// percent-encoded.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(FormatValue(p.Value)))
	}
	return sb.String()
}

// RequestSpec describes one upstream call.
type RequestSpec struct {
	Method string
	Path   string
	Query  Query
	Body   any
}

// URL joins the spec onto baseURL. The path is used as already encoded.
func (s RequestSpec) URL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/") + s.Path
	if q := s.Query.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// Build validates its inputs and returns a RequestSpec. Parameters with a nil
// value are dropped rather than sent empty.
func Build(method, path string, body any, query Query) (RequestSpec, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if !allowedMethods[method] {
		return RequestSpec{}, fmt.Errorf("unsupported HTTP method %q", method)
	}
	if !strings.HasPrefix(path, "/") {
		return RequestSpec{}, fmt.Errorf("path must be absolute: %q", path)
	}

	var q Query
	for _, p := range query {
		if p.Value == nil {
			continue
		}
		q = append(q, p)
	}
	return RequestSpec{Method: method, Path: path, Query: q, Body: body}, nil
}

// EscapeSegment percent-encodes a single path segment so that reserved
// characters, "/" included, cannot split it into several segments.
// The result matches JavaScript's encodeURIComponent.
func EscapeSegment(s string) string {
	return segmentFixups.Replace(url.QueryEscape(s))
}

var segmentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ExpandPath replaces each {name} placeholder in template with the escaped
// value returned by lookup. It returns the names it substituted, in order.
func ExpandPath(template string, lookup func(name string) (any, bool)) (string, []string, error) {
	return Expand(template, lookup, EscapeSegment)
}

// Expand replaces {name} placeholders using lookup, passing each formatted
// value through escape when it is non-nil. With an escape, values that would
// not name exactly one path segment ("", "." and "..") are rejected.
func Expand(template string, lookup func(name string) (any, bool), escape func(string) string) (string, []string, error) {
	var (
		sb   strings.Builder
		used []string
	)
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", nil, fmt.Errorf("unterminated placeholder in %q", template)
		}
		end += open

		name := rest[open+1 : end]
		v, ok := lookup(name)
		if !ok || v == nil {
			return "", nil, fmt.Errorf("missing value for %q", name)
		}
		s := FormatValue(v)
		if escape != nil {
			if s == "" || s == "." || s == ".." {
				return "", nil, fmt.Errorf("%q is not a valid value for %s", s, name)
			}
			s = escape(s)
		}

		sb.WriteString(rest[:open])
		sb.WriteString(s)
		used = append(used, name)
		rest = rest[end+1:]
	}
	return sb.String(), used, nil
}

// FormatValue renders an argument value the way it appears in a URL.
// Numbers never use exponent notation.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}

// NormalizeEndpoint turns a caller-supplied endpoint such as "orders",
// "/orders" or "/api/v1/orders" into an absolute API path. Endpoints that try
// to climb out of the API prefix are rejected.
func NormalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", fmt.Errorf("endpoint is required")
	}
	if strings.Contains(endpoint, "://") {
		return "", fmt.Errorf("endpoint must be a path, not a URL: %q", endpoint)
	}

	if strings.ContainsAny(endpoint, "?#") {
		return "", fmt.Errorf("endpoint may not carry a query string, use params: %q", endpoint)
	}
	for _, seg := range strings.Split(endpoint, "/") {
		if seg == ".." {
			return "", fmt.Errorf("endpoint may not contain '..' segments: %q", endpoint)
		}
	}

	trimmed := strings.TrimLeft(endpoint, "/")
	if strings.HasPrefix("/"+trimmed, APIPrefix) {
		return "/" + trimmed, nil
	}
	return APIPrefix + trimmed, nil
}
