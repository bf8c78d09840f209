package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"movieshelf/internal/movies"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes movie catalog tools.
type Server struct {
	store *movies.Store
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over the given catalog store.
func NewServer(store *movies.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"movieshelf",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchMoviesTool, s.handleSearchMovies)
	s.mcp.AddTool(getMovieTool, s.handleGetMovie)
	s.mcp.AddTool(getStatsTool, s.handleGetStats)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
