package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/config"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/logging"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/server"
)

type configLoader func() (*config.Config, logging.Logger, error)

func newServeCmd(load configLoader) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server on stdio, or on HTTP when --port is given.

The HTTP server provides:
  /mcp                    streamable MCP endpoint
  /health                 health check
  GET  /api/tools         list tools (?q= to search, ?category= to filter)
  POST /api/tools/{name}  call a tool; the JSON body is its arguments`,
		Example: `  jobboss2-mcp serve                # stdio transport
  jobboss2-mcp serve --port 8080    # HTTP on port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}

			srv, err := server.NewFromConfig(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if port > 0 {
				return srv.RunHTTP(ctx, port)
			}
			return srv.RunStdio(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "run the HTTP transport on this port (default: stdio)")
	return cmd
}
