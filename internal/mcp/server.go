package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"dsmcp/internal/logging"
	"dsmcp/internal/tools"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is reported to clients during initialize.
const ServerName = "dsmcp"

var readOnlyAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(true),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(false),
}

// Server represents an MCP server instance using mcp-go
type Server struct {
	router    *tools.Router
	logger    *logging.AppLogger
	mcpServer *server.MCPServer
}

// NewServer creates the mcp-go server and registers every tool of router.
func NewServer(router *tools.Router, logger *logging.AppLogger, version string) (*Server, error) {
	if logger == nil {
		logger = logging.GetDefault()
	}

	s := &Server{
		router: router,
		logger: logger,
		mcpServer: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}
	if err := s.registerTools(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) registerTools() error {
	for _, d := range s.router.ListTools() {
		schema, err := json.Marshal(d.InputSchema)
		if err != nil {
			return fmt.Errorf("failed to encode schema for %s: %w", d.Name, err)
		}
		tool := mcp.NewToolWithRawSchema(string(d.Name), d.Description, schema)
		tool.Annotations = readOnlyAnnotation
		s.mcpServer.AddTool(tool, s.handleToolCall)
		s.logger.Debug("Registered tool", "name", d.Name)
	}
	return nil
}

func (s *Server) handleToolCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toCallToolResult(s.router.Call(ctx, request.Params.Name, request.GetArguments())), nil
}

func toCallToolResult(res tools.Result) *mcp.CallToolResult {
	result := mcp.NewToolResultText(res.Text())
	result.IsError = res.IsError
	return result
}

// MCPServer exposes the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}
