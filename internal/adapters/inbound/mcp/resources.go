package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	reportURI  = "nextcheck://report"
	historyURI = "nextcheck://history"
)

// registerResources registers the read-only nextcheck resources.
func registerResources(s *server.MCPServer, projectPath string, svc Services) {
	// 1. nextcheck://report - current validation report
	s.AddResource(
		mcplib.NewResource(
			reportURI,
			"Validation Report",
			mcplib.WithResourceDescription("Current structure validation report for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath, svc),
	)

	// 2. nextcheck://history - recorded runs
	if svc.History != nil {
		s.AddResource(
			mcplib.NewResource(
				historyURI,
				"Run History",
				mcplib.WithResourceDescription("Validation runs recorded with --record, oldest first"),
				mcplib.WithMIMEType("application/json"),
			),
			handleHistoryResource(projectPath, svc),
		)
	}
}

func handleReportResource(projectPath string, svc Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := svc.Validate.Run(projectPath)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
		return jsonContents(reportURI, report)
	}
}

func handleHistoryResource(projectPath string, svc Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := svc.History.List(projectPath, 0)
		if err != nil {
			return nil, err
		}
		return jsonContents(historyURI, entries)
	}
}

func jsonContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
