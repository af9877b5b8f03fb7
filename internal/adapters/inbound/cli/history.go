package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextcheck/nextcheck/internal/adapters/outbound/tui"
)

func newHistoryCmd(ro *rootOptions) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show recorded validation runs",
		Long:  "List the runs saved with validate --record, oldest first.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := targetPath(args)
			if err != nil {
				return err
			}

			entries, err := ro.historyService(cmd).List(path, limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Show at most this many runs (0 = all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
