package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// registerTools registers all nextcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, svc Services) {
	// 1. nextcheck_validate
	s.AddTool(
		mcplib.NewTool("nextcheck_validate",
			mcplib.WithDescription("Validates the project structure (directories, file naming, required files) and returns the report as JSON"),
			mcplib.WithBoolean("check_imports", mcplib.Description("Also run the import path check")),
		),
		handleValidate(projectPath, svc),
	)

	// 2. nextcheck_rules
	s.AddTool(
		mcplib.NewTool("nextcheck_rules",
			mcplib.WithDescription("Returns the effective structure rules after config layering"),
		),
		handleRules(projectPath, svc),
	)

	// 3. nextcheck_plan_fixes
	s.AddTool(
		mcplib.NewTool("nextcheck_plan_fixes",
			mcplib.WithDescription("Returns a dry-run fix plan: directories to create and files to rename. Nothing is changed on disk."),
		),
		handlePlanFixes(projectPath, svc),
	)
}

func handleValidate(projectPath string, svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rules, err := svc.Validate.Rules(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		if checkImports, ok := request.GetArguments()["check_imports"].(bool); ok {
			rules.CheckImports = checkImports
		}

		report, err := svc.Validate.RunWithRules(projectPath, rules)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules(projectPath string, svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rules, err := svc.Validate.Rules(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading rules failed: %v", err)), nil
		}
		return jsonResult(rules.View())
	}
}

func handlePlanFixes(projectPath string, svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		plan, err := svc.Fix.PlanFixes(projectPath, domain.FixOptions{DryRun: true})
		if err != nil {
			return errorResult(fmt.Sprintf("fix planning failed: %v", err)), nil
		}
		return jsonResult(plan)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
