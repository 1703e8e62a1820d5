package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitmcp.dev/gitmcp/internal/gitops"
	"gitmcp.dev/gitmcp/internal/output"
)

func newCallCmd() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:     "call <operation> [json-arguments]",
		Short:   "Invoke a single operation directly",
		GroupID: GroupUtility,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Invoke one operation from the shell, bypassing the protocol layer.

The same dispatcher path is used as in serve mode, so flag mapping,
defaults, and error behavior are identical. Arguments are given as a
JSON object matching the operation's schema (see 'gitmcp tools').`,
		Example: `  gitmcp call status '{"short": true}'
  gitmcp call commit '{"message": "fix parser"}'
  gitmcp call log '{"limit": 5, "oneline": true}' -r ~/Code/project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			req, err := gitops.NewRequest(gitops.Op(args[0]))
			if err != nil {
				return err
			}
			if len(args) == 2 {
				dec := json.NewDecoder(strings.NewReader(args[1]))
				dec.DisallowUnknownFields()
				if err := dec.Decode(req); err != nil {
					return fmt.Errorf("invalid arguments: %w", err)
				}
			}

			d := newDispatcher()
			if repo != "" {
				d.Dir = repo
			}

			text, err := d.Execute(ctx, req)
			if err != nil {
				return err
			}
			out.Print(text)
			if !strings.HasSuffix(text, "\n") {
				out.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repo, "repo", "r", "", "Repository working directory")
	return cmd
}
