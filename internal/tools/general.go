package tools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
)

var customAPICallSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"method": {
			"type": "string",
			"enum": ["GET", "POST", "PUT", "PATCH", "DELETE"],
			"description": "HTTP method"
		},
		"endpoint": {
			"type": "string",
			"description": "API endpoint path (e.g., /api/v1/orders or just orders)"
		},
		"data": {
			"description": "Request body for POST/PUT/PATCH requests"
		},
		"params": {
			"type": "object",
			"description": "Query parameters",
			"additionalProperties": true
		}
	},
	"required": ["method", "endpoint"]
}`)

var runReportSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"body": {
			"type": "object",
			"description": "Report request payload (reportName, parameters, output format, etc.)",
			"additionalProperties": true
		}
	},
	"required": ["body"]
}`)

func generalTools() []Descriptor {
	return append(
		[]Descriptor{
			{
				Name:        "custom_api_call",
				Category:    "general",
				Description: "Make a custom API call to any JobBOSS2 API endpoint. Use this for endpoints not covered by other tools. Endpoint will automatically be prefixed with /api/v1/ if not present.",
				InputSchema: customAPICallSchema,
				Handler:     customAPICall,
			},
			{
				Name:        "run_report",
				Category:    "general",
				Description: "Submit a JobBOSS2 report request. Pass the exact payload expected by /api/v1/reports (reportName, parameters, output format, etc.). Returns a requestId for polling.",
				InputSchema: runReportSchema,
				Handler:     runReport,
			},
		},
		catalog("general",
			endpoint{
				name:        "get_report_status",
				description: "Fetch the status/result of a previously submitted report using the requestId returned by run_report.",
				method:      http.MethodGet,
				path:        "/api/v1/reports/{requestId}",
				args:        pathOnly,
				schema:      schema(strOrNum("requestId", "Report request ID returned by run_report")).require("requestId").JSON(),
			},
			list("get_document_controls", "Retrieve document control headers including approval state, revision history, release information, and repository data. Supports filters, field selection, and pagination.",
				"/api/v1/document-controls"),
			list("get_document_histories", "Retrieve document history entries that show revision notes, users, and affected jobs/parts.",
				"/api/v1/document-histories"),
			list("get_document_reviews", "Retrieve document review assignments, including vendor/employee reviewers, start/end dates, and completion status.",
				"/api/v1/document-reviews"),
		)...,
	)
}

// customAPICall forwards a raw request. The endpoint is normalized under the
// API prefix but otherwise used as given, so the caller owns its encoding.
func customAPICall(ctx context.Context, args Args, c Caller) (any, error) {
	path, err := jobboss2.NormalizeEndpoint(args.String("endpoint"))
	if err != nil {
		return nil, &InvalidArgumentsError{Tool: "custom_api_call", Details: []string{err.Error()}}
	}

	var body any
	if raw, ok := args.Raw("data"); ok && string(raw) != "null" {
		body = raw
	}

	params, err := args.Object("params")
	if err != nil {
		return nil, &InvalidArgumentsError{Tool: "custom_api_call", Details: []string{"params: " + err.Error()}}
	}

	spec, err := jobboss2.Build(args.String("method"), path, body, params.Query())
	if err != nil {
		return nil, &InvalidArgumentsError{Tool: "custom_api_call", Details: []string{err.Error()}}
	}
	return c.Do(ctx, spec)
}

func runReport(ctx context.Context, args Args, c Caller) (any, error) {
	body, _ := args.Raw("body")
	spec, err := jobboss2.Build(http.MethodPost, "/api/v1/reports", body, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, spec)
}
