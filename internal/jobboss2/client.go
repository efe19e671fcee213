// Package jobboss2 is the authenticated HTTP gateway to the JobBOSS2 REST API.
//
// A Client turns a RequestSpec into a request carrying a bearer token from
// its TokenManager. A 401 or 403 answer triggers one forced token refresh
// and one retry. Failures surface as the typed errors in errors.go.
package jobboss2

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/logging"
)

// Options configures a Client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	TokenURL     string

	// Timeout bounds each request attempt, body read included.
	Timeout time.Duration

	TokenRetries    int
	TokenRetryDelay time.Duration
	TokenLifetime   time.Duration
	TokenExpirySkew time.Duration

	UserAgent  string
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client executes requests against one JobBOSS2 instance.
type Client struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	tokens     *TokenManager
	logger     logging.Logger
}

// New creates a Client with its own TokenManager.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("jobboss2: base URL is required")
	}
	if opts.TokenURL == "" {
		return nil, errors.New("jobboss2: token URL is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		timeout:    opts.Timeout,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultRequestTimeout
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = logging.Nop()
	}
	if c.userAgent == "" {
		c.userAgent = "jobboss2-mcp"
	}

	c.tokens = NewTokenManager(TokenConfig{
		ClientID:         opts.ClientID,
		ClientSecret:     opts.ClientSecret,
		TokenURL:         opts.TokenURL,
		Retries:          opts.TokenRetries,
		RetryDelay:       opts.TokenRetryDelay,
		FallbackLifetime: opts.TokenLifetime,
		ExpirySkew:       opts.TokenExpirySkew,
		Timeout:          c.timeout,
		HTTPClient:       c.httpClient,
		Logger:           c.logger.With("component", "token"),
	})
	return c, nil
}

// Tokens returns the client's token manager.
func (c *Client) Tokens() *TokenManager {
	return c.tokens
}

type requestIDKey struct{}

// WithRequestID returns a context whose requests carry id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// response is one completed exchange.
type response struct {
	status int
	body   []byte
}

func (r *response) authFailure() bool {
	return r.status == http.StatusUnauthorized || r.status == http.StatusForbidden
}

// Do executes spec and returns the decoded result: nil for an empty body,
// json.RawMessage for JSON, or a string for anything else.
func (c *Client) Do(ctx context.Context, spec RequestSpec) (any, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, spec, token)
	if err != nil {
		return nil, err
	}

	if resp.authFailure() {
		c.logger.Debug("authorization rejected, refreshing token",
			"method", spec.Method, "path", spec.Path, "status", resp.status)

		token, err = c.tokens.Refresh(ctx, token)
		if err != nil {
			return nil, err
		}
		resp, err = c.send(ctx, spec, token)
		if err != nil {
			return nil, err
		}
		if resp.authFailure() {
			msg := fmt.Sprintf("%s %s rejected after token refresh", spec.Method, spec.Path)
			if detail := bodyText(decodeBody(resp.body)); detail != "" {
				msg += ": " + detail
			}
			return nil, &AuthenticationError{Status: resp.status, Message: msg}
		}
	}

	if resp.status < 200 || resp.status > 299 {
		return nil, &UpstreamError{
			Method: spec.Method,
			Path:   spec.Path,
			Status: resp.status,
			Body:   decodeBody(resp.body),
		}
	}
	return decodeBody(resp.body), nil
}

func (c *Client) send(ctx context.Context, spec RequestSpec, token string) (*response, error) {
	var body io.Reader
	if spec.Body != nil {
		data, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, spec.Method, spec.URL(c.baseURL), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, spec, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, spec, err)
	}

	c.logger.Debug("api request",
		"method", spec.Method,
		"path", spec.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", RequestID(ctx))

	return &response{status: resp.StatusCode, body: data}, nil
}

// transportError classifies a failed exchange. Cancellation by the caller is
// returned as the context error; the client's own deadline is a TimeoutError.
func (c *Client) transportError(ctx context.Context, spec RequestSpec, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{Method: spec.Method, Path: spec.Path, Timeout: c.timeout}
	}
	return &NetworkError{Method: spec.Method, Path: spec.Path, Err: err}
}

func decodeBody(data []byte) any {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	return string(data)
}
