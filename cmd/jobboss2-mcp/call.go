package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/server"
)

func newCallCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [arguments-json]",
		Short: "Call one tool and print its result",
		Long: `Call one tool against the configured JobBOSS2 instance and print the result.

Arguments are a JSON object; use "-" to read them from stdin. The command
exits with status 1 when the tool reports an error.`,
		Example: `  jobboss2-mcp call get_orders '{"status[in]":"Open|InProgress","take":10}'
  jobboss2-mcp call get_order_by_id '{"orderNumber":"10042"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := callArguments(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			cfg, logger, err := load()
			if err != nil {
				return err
			}
			dispatcher, err := server.NewDispatcher(cfg, logger)
			if err != nil {
				return err
			}

			res := dispatcher.CallTool(cmd.Context(), args[0], raw)
			if res.IsError {
				fmt.Fprintln(cmd.ErrOrStderr(), res.Text())
				return &exitError{code: 1}
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text())
			return nil
		},
	}
}

func callArguments(stdin io.Reader, args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return json.RawMessage(`{}`), nil
	}

	text := args[0]
	if text == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read arguments: %w", err)
		}
		text = string(data)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return json.RawMessage(`{}`), nil
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("arguments are not valid JSON: %s", text)
	}
	return json.RawMessage(text), nil
}
