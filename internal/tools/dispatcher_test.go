package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/logging"
)

// recordingCaller captures every request and answers with respond.
type recordingCaller struct {
	mu      sync.Mutex
	calls   []jobboss2.RequestSpec
	ids     []string
	respond func(spec jobboss2.RequestSpec) (any, error)
}

func (r *recordingCaller) Do(ctx context.Context, spec jobboss2.RequestSpec) (any, error) {
	r.mu.Lock()
	r.calls = append(r.calls, spec)
	r.ids = append(r.ids, jobboss2.RequestID(ctx))
	r.mu.Unlock()
	if r.respond == nil {
		return json.RawMessage(`{}`), nil
	}
	return r.respond(spec)
}

func (r *recordingCaller) last(t *testing.T) jobboss2.RequestSpec {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.calls)
	return r.calls[len(r.calls)-1]
}

func newTestDispatcher(t *testing.T, caller Caller) *Dispatcher {
	t.Helper()
	reg, err := Default()
	require.NoError(t, err)
	return NewDispatcher(reg, caller, nil)
}

func bodyJSON(t *testing.T, spec jobboss2.RequestSpec) string {
	t.Helper()
	data, err := json.Marshal(spec.Body)
	require.NoError(t, err)
	return string(data)
}

func TestCallTool_InvalidArgumentsNeverReachTransport(t *testing.T) {
	tests := []struct {
		tool    string
		args    string
		wantErr string
	}{
		{"get_order_by_id", `{}`, "orderNumber is required"},
		{"get_order_by_id", `{"orderNumber": 1001}`, "orderNumber"},
		{"get_order_line_item_by_id", `{"orderNumber": "1001", "itemNumber": "one"}`, "itemNumber"},
		{"create_order_routing", `{"orderNumber": "1001", "itemNumber": 1}`, "workCenterOrVendor is required"},
		{"create_customer", `{"customerCode": "ACME"}`, "customerName is required"},
		{"get_company", `{"unexpected": true}`, "unexpected"},
		{"get_orders", `[1, 2]`, "object"},
		{"get_orders", `{"take": `, "invalid arguments"},
		{"custom_api_call", `{"method": "TRACE", "endpoint": "orders"}`, "method"},
		{"get_attendance_report", `{"startDate": "2026-01-01"}`, "endDate is required"},
	}

	for _, tt := range tests {
		t.Run(tt.tool+" "+tt.args, func(t *testing.T) {
			caller := &recordingCaller{}
			d := newTestDispatcher(t, caller)

			res := d.CallTool(context.Background(), tt.tool, json.RawMessage(tt.args))
			assert.True(t, res.IsError)
			assert.True(t, res.IsInvalidArguments(), "got %v", res.Err)
			assert.Contains(t, res.Text(), "Error: ")
			assert.Contains(t, res.Text(), tt.wantErr)
			assert.Empty(t, caller.calls)
		})
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	caller := &recordingCaller{}
	d := newTestDispatcher(t, caller)

	res := d.CallTool(context.Background(), "get_order", nil)
	require.True(t, res.IsError)

	var notFound *ToolNotFoundError
	require.True(t, errors.As(res.Err, &notFound))
	assert.NotEmpty(t, notFound.Suggestions)
	assert.LessOrEqual(t, len(notFound.Suggestions), 3)
	assert.Contains(t, res.Text(), "Error: Unknown tool: get_order")
	assert.Contains(t, res.Text(), "Did you mean")
	assert.Empty(t, caller.calls)
}

func TestCallTool_RendersIndentedJSON(t *testing.T) {
	caller := &recordingCaller{respond: func(jobboss2.RequestSpec) (any, error) {
		return json.RawMessage(`{"orderNumber":"1001","status":"Open","lines":[1,2]}`), nil
	}}
	d := newTestDispatcher(t, caller)

	res := d.CallTool(context.Background(), "get_order_by_id", json.RawMessage(`{"orderNumber":"1001","fields":"orderNumber,status"}`))
	require.False(t, res.IsError, res.Text())
	assert.Equal(t, "{\n  \"orderNumber\": \"1001\",\n  \"status\": \"Open\",\n  \"lines\": [\n    1,\n    2\n  ]\n}", res.Text())

	spec := caller.last(t)
	assert.Equal(t, "GET", spec.Method)
	assert.Equal(t, "/api/v1/orders/1001", spec.Path)
	assert.Equal(t, jobboss2.Query{{Key: "fields", Value: "orderNumber,status"}}, spec.Query)
	assert.Nil(t, spec.Body)
	assert.NotEmpty(t, caller.ids[0], "every call carries a call id")
}

func TestCallTool_EmptyBodyRendersSuccess(t *testing.T) {
	caller := &recordingCaller{respond: func(jobboss2.RequestSpec) (any, error) { return nil, nil }}
	d := newTestDispatcher(t, caller)

	res := d.CallTool(context.Background(), "update_order", json.RawMessage(`{"orderNumber":"1001","status":"Closed"}`))
	require.False(t, res.IsError, res.Text())
	assert.Equal(t, "{\n  \"success\": true\n}", res.Text())

	spec := caller.last(t)
	assert.Equal(t, "PATCH", spec.Method)
	assert.Equal(t, `{"status":"Closed"}`, bodyJSON(t, spec))
}

func TestCallTool_VoidResult(t *testing.T) {
	caller := &recordingCaller{respond: func(jobboss2.RequestSpec) (any, error) {
		return json.RawMessage(`{"partNumber":"P-1"}`), nil
	}}
	d := newTestDispatcher(t, caller)

	res := d.CallTool(context.Background(), "update_estimate", json.RawMessage(`{"partNumber":"P-1","description":"Bracket"}`))
	require.False(t, res.IsError, res.Text())
	assert.Equal(t, "{\n  \"success\": true\n}", res.Text())

	spec := caller.last(t)
	assert.Equal(t, "PUT", spec.Method)
	assert.Equal(t, "/api/v1/estimates/P-1", spec.Path)
	assert.Equal(t, `{"description":"Bracket"}`, bodyJSON(t, spec))
}

func TestCallTool_SuccessMessage(t *testing.T) {
	caller := &recordingCaller{}
	d := newTestDispatcher(t, caller)

	res := d.CallTool(context.Background(), "update_vendor", json.RawMessage(`{"vendorCode":"V/100 A","active":false}`))
	require.False(t, res.IsError, res.Text())
	assert.Equal(t, "Vendor V/100 A updated successfully", res.Text())

	spec := caller.last(t)
	assert.Equal(t, "PATCH", spec.Method)
	assert.Equal(t, "/api/v1/vendors/V%2F100%20A", spec.Path)
	assert.Equal(t, `{"active":false}`, bodyJSON(t, spec))
}

func TestCallTool_HandlerErrors(t *testing.T) {
	upstream := &jobboss2.UpstreamError{
		Method: "GET",
		Path:   "/api/v1/orders/404",
		Status: http.StatusNotFound,
		Body:   json.RawMessage(`{"message":"Order not found"}`),
	}
	caller := &recordingCaller{respond: func(jobboss2.RequestSpec) (any, error) { return nil, upstream }}
	d := newTestDispatcher(t, caller)

	res := d.CallTool(context.Background(), "get_order_by_id", json.RawMessage(`{"orderNumber":"404"}`))
	require.True(t, res.IsError)
	assert.False(t, res.IsInvalidArguments())
	assert.Equal(t, "Error: "+upstream.Error(), res.Text())
	assert.Contains(t, res.Text(), "Order not found")

	var got *jobboss2.UpstreamError
	require.True(t, errors.As(res.Err, &got))
	assert.Equal(t, http.StatusNotFound, got.Status)
}

func TestCallTool_RecoversFromPanic(t *testing.T) {
	reg, err := NewRegistry([]Descriptor{{
		Name:        "explode",
		InputSchema: anyObjectSchema,
		Handler: func(context.Context, Args, Caller) (any, error) {
			panic("kaboom")
		},
	}})
	require.NoError(t, err)
	d := NewDispatcher(reg, &recordingCaller{}, nil)

	res := d.CallTool(context.Background(), "explode", nil)
	require.True(t, res.IsError)
	assert.Contains(t, res.Text(), "kaboom")
}

func TestCallTool_ConcurrentCallsAreIndependent(t *testing.T) {
	caller := &recordingCaller{respond: func(spec jobboss2.RequestSpec) (any, error) {
		return json.RawMessage(fmt.Sprintf(`{"path":%q}`, spec.Path)), nil
	}}
	d := newTestDispatcher(t, caller)

	const n = 20
	var wg sync.WaitGroup
	results := make([]*Result, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			args := json.RawMessage(fmt.Sprintf(`{"customerCode":"C%d"}`, i))
			results[i] = d.CallTool(context.Background(), "get_customer_by_code", args)
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		require.False(t, res.IsError, res.Text())
		assert.Contains(t, res.Text(), fmt.Sprintf("/api/v1/customers/C%d", i))
	}
	assert.Len(t, caller.calls, n)
}

// TestCallTool_ThroughClient runs a call against real HTTP fakes of the token
// endpoint and the API.
func TestCallTool_ThroughClient(t *testing.T) {
	tokens := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(tokens.Close)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "/api/v1/shipping-addresses/ACME%20%2F%20WEST/MAIN%20DOCK", r.URL.EscapedPath())
		assert.Equal(t, "location", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"location":"MAIN DOCK"}`)
	}))
	t.Cleanup(api.Close)

	client, err := jobboss2.New(jobboss2.Options{
		BaseURL:      api.URL,
		ClientID:     "key",
		ClientSecret: "secret",
		TokenURL:     tokens.URL,
		Timeout:      2 * time.Second,
	})
	require.NoError(t, err)
	d := newTestDispatcher(t, client)

	res := d.CallTool(context.Background(), "get_shipping_address_by_id",
		json.RawMessage(`{"customerCode":"ACME / WEST","location":"MAIN DOCK","fields":"location"}`))
	require.False(t, res.IsError, res.Text())
	assert.Equal(t, "{\n  \"location\": \"MAIN DOCK\"\n}", res.Text())
}

func TestDispatcher_NilLoggerUsesDefault(t *testing.T) {
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf, slog.LevelDebug, "text"))

	d := newTestDispatcher(t, &recordingCaller{})
	res := d.CallTool(context.Background(), "get_orders", nil)
	require.False(t, res.IsError, res.Text())
	assert.Contains(t, buf.String(), "tool=get_orders")
}
