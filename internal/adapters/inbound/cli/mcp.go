package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/nextcheck/nextcheck/internal/adapters/inbound/mcp"
	"github.com/nextcheck/nextcheck/internal/application"
)

func newMCPCmd(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the nextcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(ro))
	return cmd
}

func newMCPServeCmd(ro *rootOptions) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the nextcheck MCP server (stdio)",
		Long:  "Start the MCP server on stdio so coding assistants can validate the project, read its rules and plan fixes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if projectPath == "" {
				var err error
				if projectPath, err = targetPath(nil); err != nil {
					return err
				}
			}

			validate := ro.validateService(cmd)
			s := mcpadapter.NewNextcheckMCPServer(projectPath, versionString(), mcpadapter.Services{
				Validate: validate,
				Fix:      application.NewFixService(validate, logger(cmd)),
				History:  ro.historyService(cmd),
			})
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
