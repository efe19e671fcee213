package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/tools"
)

// registerTools registers every catalog tool with its hand-written schema.
// The SDK's generated schemas use "type": ["null", "object"], which some
// strict clients reject.
func (s *Server) registerTools() {
	for _, info := range s.dispatcher.Registry().List() {
		s.mcpServer.AddTool(
			&mcp.Tool{
				Name:        string(info.Name),
				Description: info.Description,
				InputSchema: info.InputSchema,
			},
			s.callTool,
		)
	}
}

// callTool hands one MCP call to the dispatcher. Tool failures are reported
// in the result, never as protocol errors.
func (s *Server) callTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.dispatcher.CallTool(ctx, req.Params.Name, req.Params.Arguments)
	return toCallToolResult(res), nil
}

func toCallToolResult(res *tools.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, len(res.Content))
	for i, c := range res.Content {
		content[i] = &mcp.TextContent{Text: c.Text}
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: res.IsError,
	}
}
