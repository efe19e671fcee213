package jobboss2

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AuthenticationError is returned when the token endpoint rejects the
// configured credentials, when it stays unreachable after all retry attempts,
// or when the API still answers 401/403 after a forced token refresh.
type AuthenticationError struct {
	Status  int
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	var sb strings.Builder
	sb.WriteString("authentication failed")
	if e.Status != 0 {
		fmt.Fprintf(&sb, " (HTTP %d)", e.Status)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// TimeoutError is returned when a request exceeds the configured timeout.
type TimeoutError struct {
	Method  string
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s: %s %s", e.Timeout, e.Method, e.Path)
}

// NetworkError wraps transport-level failures such as refused connections or
// DNS errors.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError is a non-2xx response other than an authorization failure.
// Body holds the decoded JSON error document, or the raw text when the body
// is not JSON.
type UpstreamError struct {
	Method string
	Path   string
	Status int
	Body   any
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("JobBOSS2 API error %d %s: %s %s", e.Status, http.StatusText(e.Status), e.Method, e.Path)
	if detail := bodyText(e.Body); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func bodyText(body any) string {
	switch b := body.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(b)
	case json.RawMessage:
		return string(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Sprint(b)
		}
		return string(data)
	}
}
