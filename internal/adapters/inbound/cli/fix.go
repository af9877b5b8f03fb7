package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextcheck/nextcheck/internal/application"
	"github.com/nextcheck/nextcheck/internal/domain"
)

func newFixCmd(ro *rootOptions) *cobra.Command {
	var (
		dryRun bool
		rename bool
	)

	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Create missing directories and plan file renames",
		Long:  "Validate the project, create missing required and recommended directories, and return rename instructions for files that break the naming rules. Pass --rename to apply the renames.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := targetPath(args)
			if err != nil {
				return err
			}

			fixSvc := application.NewFixService(ro.validateService(cmd), logger(cmd))
			plan, err := fixSvc.PlanFixes(path, domain.FixOptions{DryRun: dryRun, Rename: rename})
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			return renderJSON(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without touching the filesystem")
	cmd.Flags().BoolVar(&rename, "rename", false, "Apply rename instructions that have a target")

	return cmd
}
