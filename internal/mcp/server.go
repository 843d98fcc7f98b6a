package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/tripplan/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the planner and web search as tools.
type Server struct {
	backend     ui.Backend
	planTimeout time.Duration
	mcp         *server.MCPServer
}

// NewServer creates a new MCP server that forwards tool calls to backend.
func NewServer(backend ui.Backend, planTimeout time.Duration) *Server {
	if planTimeout <= 0 {
		planTimeout = ui.DefaultPlanTimeout
	}
	s := &Server{
		backend:     backend,
		planTimeout: planTimeout,
	}

	s.mcp = server.NewMCPServer(
		"tripplan",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generatePlanTool, s.handleGeneratePlan)
	s.mcp.AddTool(webSearchTool, s.handleWebSearch)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
