package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"gitmcp.dev/gitmcp/internal/output"
	"gitmcp.dev/gitmcp/internal/tools"
)

func newToolsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "tools",
		Short:   "List the operation catalog",
		Aliases: []string{"ls"},
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `List the operations the server exposes, with their descriptions
and required fields. This is the same catalog an agent sees.`,
		Example: `  gitmcp tools          # Human-readable listing
  gitmcp tools --json   # Machine-readable catalog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			catalog := tools.Catalog()

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}

			for _, desc := range catalog {
				if len(desc.Required) > 0 {
					out.Printf("%-10s %s (requires: %s)\n", desc.Op, desc.Description, strings.Join(desc.Required, ", "))
				} else {
					out.Printf("%-10s %s\n", desc.Op, desc.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
