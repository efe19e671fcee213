// Package server exposes the JobBOSS2 tool catalog over MCP, either on
// stdio or as a streamable HTTP endpoint next to a small JSON API.
package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/config"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/logging"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/tools"
)

const serverName = "jobboss2-mcp"

// Version is the server version reported to MCP clients. It is set at build
// time with -ldflags.
var Version = "0.4.0"

// Server is the jobboss2-mcp server.
type Server struct {
	mcpServer  *mcp.Server
	dispatcher *tools.Dispatcher
	logger     logging.Logger

	// tokens is nil unless the server was built from a config.
	tokens *jobboss2.TokenManager
}

// New creates a Server serving every tool known to dispatcher. A nil logger
// means logging.Default().
func New(dispatcher *tools.Dispatcher, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Server{
		dispatcher: dispatcher,
		logger:     logger,
	}

	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: Version,
		},
		&mcp.ServerOptions{
			Capabilities: &mcp.ServerCapabilities{
				Tools: &mcp.ToolCapabilities{},
			},
		},
	)

	s.registerTools()
	return s
}

// NewFromConfig validates cfg and builds the upstream client, the default
// tool registry and the Server on top of them.
func NewFromConfig(cfg *config.Config, logger logging.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	dispatcher, err := newDispatcher(client, logger)
	if err != nil {
		return nil, err
	}

	s := New(dispatcher, logger)
	s.tokens = client.Tokens()
	return s, nil
}

// NewDispatcher builds a dispatcher over the default registry and a JobBOSS2
// client configured from cfg. cfg must already be valid.
func NewDispatcher(cfg *config.Config, logger logging.Logger) (*tools.Dispatcher, error) {
	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return newDispatcher(client, logger)
}

func newClient(cfg *config.Config, logger logging.Logger) (*jobboss2.Client, error) {
	if logger == nil {
		logger = logging.Default()
	}
	client, err := jobboss2.New(jobboss2.Options{
		BaseURL:         cfg.APIURL,
		ClientID:        cfg.APIKey,
		ClientSecret:    cfg.APISecret,
		TokenURL:        cfg.TokenURL,
		Timeout:         cfg.Timeout,
		TokenRetries:    cfg.TokenRetries,
		TokenRetryDelay: cfg.TokenRetryDelay,
		TokenLifetime:   cfg.TokenLifetime,
		TokenExpirySkew: cfg.TokenExpirySkew,
		UserAgent:       serverName + "/" + Version,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create JobBOSS2 client: %w", err)
	}
	return client, nil
}

func newDispatcher(client *jobboss2.Client, logger logging.Logger) (*tools.Dispatcher, error) {
	registry, err := tools.Default()
	if err != nil {
		return nil, fmt.Errorf("build tool registry: %w", err)
	}
	return tools.NewDispatcher(registry, client, logger), nil
}

// RunStdio runs the server using stdio transport.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("jobboss2-mcp server running on stdio", "tools", s.dispatcher.Registry().Len())
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}

// Dispatcher returns the dispatcher behind every tool.
func (s *Server) Dispatcher() *tools.Dispatcher {
	return s.dispatcher
}
