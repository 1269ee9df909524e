package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/h1v3-io/mcp-teamviewer/internal/tool"
)

const (
	// Name identifies this server to MCP clients.
	Name = "mcp-teamviewer"
	// Version is the server version reported during the MCP handshake.
	Version = "0.1.0"
)

// Server exposes a tool registry over the Model Context Protocol.
type Server struct {
	mcp      *mcpserver.MCPServer
	registry *tool.Registry
	logger   *slog.Logger
}

// New builds an MCP server with every registry tool attached.
func New(reg *tool.Registry, logger *slog.Logger) *Server {
	s := &Server{
		mcp: mcpserver.NewMCPServer(Name, Version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
		registry: reg,
		logger:   logger,
	}

	for _, t := range reg.Tools() {
		schema, err := json.Marshal(t.InputSchema())
		if err != nil {
			// Schemas are built from static descriptors; this cannot fail
			// for well-formed tool tables.
			logger.Error("failed to marshal tool schema", "tool", t.Name, "error", err)
			continue
		}
		s.mcp.AddTool(
			mcp.NewToolWithRawSchema(t.Name, t.Description, schema),
			s.handler(t.Name),
		)
	}
	return s
}

// handler adapts a registry tool to an MCP tool handler. Tool failures
// (validation or upstream) become MCP error results rather than protocol
// errors, so the calling agent sees them.
func (s *Server) handler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		out, err := s.registry.Execute(ctx, name, req.GetArguments())
		if err != nil {
			s.logger.Warn("tool call failed",
				"tool", name,
				"duration", time.Since(start),
				"error", err,
			)
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.logger.Debug("tool call", "tool", name, "duration", time.Since(start))
		return mcp.NewToolResultText(out), nil
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout until ctx is
// cancelled or stdin closes.
func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
