package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/tools"
)

func newToolsCmd() *cobra.Command {
	var (
		asJSON   bool
		category string
	)

	cmd := &cobra.Command{
		Use:   "tools [query]",
		Short: "List or search the tool catalog",
		Long:  "List or search the tool catalog. No configuration or network access is needed.",
		Example: `  jobboss2-mcp tools
  jobboss2-mcp tools order routing
  jobboss2-mcp tools --category quotes --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := tools.Default()
			if err != nil {
				return err
			}

			if category != "" && !slices.Contains(reg.Categories(), category) {
				return fmt.Errorf("unknown category %q (categories: %s)", category, strings.Join(reg.Categories(), ", "))
			}

			query := strings.Join(args, " ")
			list := reg.Search(query, category)
			if list == nil {
				list = []tools.Info{}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}
			printTools(out, list)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().StringVar(&category, "category", "", "only tools in this category")
	return cmd
}

func printTools(w io.Writer, list []tools.Info) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No tools found.")
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	category := ""
	for _, info := range list {
		if info.Category != category {
			category = info.Category
			fmt.Fprintln(w)
			cyan.Fprintln(w, strings.ToUpper(category))
		}
		green.Fprintf(w, "  %s\n", info.Name)
		faint.Fprintf(w, "      %s\n", info.Description)
	}
	fmt.Fprintf(w, "\n%d tools\n", len(list))
}
