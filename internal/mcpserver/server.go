// Package mcpserver exposes the chunking operations as MCP tools over
// stdio, so coding agents can drive paperchunk without shelling out.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mwiater/paperchunk/internal/appconfig"
)

const (
	// ServerName is the MCP server name.
	ServerName = "paperchunk"
	// ServerVersion is the advertised server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the resolved application configuration.
type Server struct {
	mcp *server.MCPServer
	cfg appconfig.Config
}

// NewServer builds the MCP server and registers the tool set.
func NewServer(cfg appconfig.Config) *Server {
	s := &Server{
		mcp: server.NewMCPServer(ServerName, ServerVersion),
		cfg: cfg,
	}
	s.registerTools()
	return s
}

// Serve runs the server on stdio and blocks until the stream closes.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(chunkPaperTool(), s.handleChunkPaper)
	s.mcp.AddTool(analyzeCodeTool(), s.handleAnalyzeCode)
	s.mcp.AddTool(fetchPaperTool(), s.handleFetchPaper)
}
