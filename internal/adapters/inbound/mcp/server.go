package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/nextcheck/nextcheck/internal/application"
)

// Services are the application services the MCP tools call into.
type Services struct {
	Validate *application.ValidateService
	Fix      *application.FixService
	History  *application.HistoryService
}

// NewNextcheckMCPServer creates an MCP server with the nextcheck tools and
// resources registered. projectPath is the project every call inspects.
func NewNextcheckMCPServer(projectPath, version string, svc Services) *server.MCPServer {
	s := server.NewMCPServer(
		"nextcheck",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, svc)
	registerResources(s, projectPath, svc)

	return s
}
