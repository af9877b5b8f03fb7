package cli

import (
	"github.com/spf13/cobra"

	"github.com/nextcheck/nextcheck/internal/adapters/outbound/tui"
)

func newRulesCmd(ro *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules [path]",
		Short: "Show the effective rules for a project",
		Long:  "Print the rules after merging defaults, .nextcheck.yaml and NEXTCHECK_ environment variables.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := targetPath(args)
			if err != nil {
				return err
			}

			rules, err := ro.validateService(cmd).Rules(path)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd.OutOrStdout(), rules.View())
			}
			tui.RenderRules(cmd.OutOrStdout(), rules)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
