package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/config"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/tools"
)

type fakeCaller struct {
	mu    sync.Mutex
	calls []jobboss2.RequestSpec
	err   error
}

func (f *fakeCaller) Do(_ context.Context, spec jobboss2.RequestSpec) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, spec)
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"path": spec.Path}, nil
}

func (f *fakeCaller) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestServer(t *testing.T, caller tools.Caller) *Server {
	t.Helper()
	reg, err := tools.Default()
	require.NoError(t, err)
	return New(tools.NewDispatcher(reg, caller, nil), nil)
}

func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestMCP_ListTools(t *testing.T) {
	s := newTestServer(t, &fakeCaller{})
	session := connect(t, s)

	res, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	assert.Len(t, res.Tools, s.Dispatcher().Registry().Len())

	names := make(map[string]bool, len(res.Tools))
	for _, tool := range res.Tools {
		names[tool.Name] = true
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
	}
	for _, name := range []string{"get_orders", "get_attendance_report", "custom_api_call"} {
		assert.True(t, names[name], name)
	}
}

func TestMCP_CallTool(t *testing.T) {
	caller := &fakeCaller{}
	session := connect(t, newTestServer(t, caller))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_order_by_id",
		Arguments: map[string]any{"orderNumber": "A/1"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "{\n  \"path\": \"/api/v1/orders/A%2F1\"\n}", resultText(t, res))
	assert.Equal(t, 1, caller.count())
}

func TestMCP_CallTool_InvalidArguments(t *testing.T) {
	caller := &fakeCaller{}
	session := connect(t, newTestServer(t, caller))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_order_by_id",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "invalid arguments for get_order_by_id")
	assert.Zero(t, caller.count())
}

func TestMCP_CallTool_UpstreamError(t *testing.T) {
	caller := &fakeCaller{err: &jobboss2.UpstreamError{Method: "GET", Path: "/api/v1/orders", Status: 500, Body: "boom"}}
	session := connect(t, newTestServer(t, caller))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_orders",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(resultText(t, res), "Error: "))
}

func TestHTTP_Health(t *testing.T) {
	s := newTestServer(t, &fakeCaller{})
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, s.Dispatcher().Registry().Len(), body["tools"])
}

func TestHTTP_ListTools(t *testing.T) {
	s := newTestServer(t, &fakeCaller{})

	tests := []struct {
		name   string
		target string
		check  func(t *testing.T, list []tools.Info)
	}{
		{
			name:   "all",
			target: "/api/tools",
			check: func(t *testing.T, list []tools.Info) {
				assert.Len(t, list, s.Dispatcher().Registry().Len())
			},
		},
		{
			name:   "category",
			target: "/api/tools?category=quotes",
			check: func(t *testing.T, list []tools.Info) {
				require.NotEmpty(t, list)
				for _, info := range list {
					assert.Equal(t, "quotes", info.Category)
				}
			},
		},
		{
			name:   "no match",
			target: "/api/tools?q=zzzzzz",
			check: func(t *testing.T, list []tools.Info) {
				assert.Empty(t, list)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Tools []tools.Info `json:"tools"`
				Total int          `json:"total"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, len(body.Tools), body.Total)
			tt.check(t, body.Tools)
		})
	}
}

func TestHTTP_CallTool(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		body     string
		err      error
		status   int
		isError  bool
		contains string
	}{
		{"success", "get_customer_by_code", `{"customerCode":"ACME"}`, nil, http.StatusOK, false, "/api/v1/customers/ACME"},
		{"empty body", "get_orders", ``, nil, http.StatusOK, false, "/api/v1/orders"},
		{"invalid arguments", "get_customer_by_code", `{}`, nil, http.StatusBadRequest, true, "invalid arguments"},
		{"unknown tool", "get_order", `{}`, nil, http.StatusNotFound, true, "Unknown tool: get_order"},
		{"malformed json", "get_orders", `{`, nil, http.StatusBadRequest, false, "invalid json"},
		{"upstream failure", "get_orders", `{}`, errors.New("network down"), http.StatusOK, true, "network down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &fakeCaller{err: tt.err})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/tools/"+tt.tool, strings.NewReader(tt.body))
			s.Router().ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)

			var body struct {
				IsError bool `json:"isError"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.isError, body.IsError)
		})
	}
}

func TestHTTP_StreamableMCP(t *testing.T) {
	s := newTestServer(t, &fakeCaller{})
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp"}, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_vendor_by_code",
		Arguments: map[string]any{"vendorCode": "V 1"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "/api/v1/vendors/V%201")
}

func TestNewFromConfig_Invalid(t *testing.T) {
	_, err := NewFromConfig(config.NewConfig(), nil)
	require.Error(t, err)

	var missing *config.MissingError
	assert.True(t, errors.As(err, &missing))
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.APIURL = "https://erp.example.com"
	cfg.APIKey = "id"
	cfg.APISecret = "secret"
	cfg.TokenURL = "https://erp.example.com/oauth/token"

	s, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)
	assert.Positive(t, s.Dispatcher().Registry().Len())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "expired", body["token"])
}
