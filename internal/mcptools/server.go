package mcptools

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/phrazzld/seimei-api/internal/service"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewServer creates the MCP server with every seimei tool registered.
func NewServer(svc service.SeimeiService) *server.MCPServer {
	s := server.NewMCPServer(
		"seimei",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	analyzeTool := NewAnalyzeTool(svc)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	kakusuTool := NewKakusuTool(svc)
	s.AddTool(kakusuTool.Definition(), kakusuTool.Handle)

	return s
}
