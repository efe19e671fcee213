// Command jobboss2-mcp serves the JobBOSS2 ERP API as MCP tools.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/config"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/logging"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/server"
)

// exitError carries an exit code for a failure that has already been
// reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "jobboss2-mcp",
		Short: "MCP server for the JobBOSS2 ERP API",
		Long: `jobboss2-mcp exposes the JobBOSS2 REST API as Model Context Protocol tools.

Configuration is read from, lowest precedence first:
  1. User config: ~/.config/jobboss2-mcp/config.kdl
  2. Project config: .jobboss2-mcp.kdl (or the file given with --config)
  3. Environment: JOBBOSS2_API_URL, JOBBOSS2_API_KEY, JOBBOSS2_API_SECRET,
     JOBBOSS2_OAUTH_TOKEN_URL, API_TIMEOUT, JOBBOSS2_TOKEN_RETRIES`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: .jobboss2-mcp.kdl in the working directory)")

	load := func() (*config.Config, logging.Logger, error) {
		return loadConfig(cfgFile)
	}

	root.AddCommand(
		newServeCmd(load),
		newToolsCmd(),
		newCallCmd(load),
		newVersionCmd(),
	)
	return root
}

// loadConfig merges and validates the configuration and installs the
// process logger it describes.
func loadConfig(file string) (*config.Config, logging.Logger, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(config.Options{ProjectDir: cwd, File: file})
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.NewFromSettings(cfg.LogLevel, cfg.LogFormat)
	logging.SetDefault(logger)
	logger.Debug("configuration loaded", "files", cfg.Files, "config", cfg.Redacted())
	return cfg, logger, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jobboss2-mcp version %s\n", server.Version)
		},
	}
}
