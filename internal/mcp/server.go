package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"aoimap/internal/service"
)

// Server is the MCP server for the AOI map app.
// It exposes the session, drawing and geocoding operations as tools so AI
// agents can drive the workspace.
type Server struct {
	mcp *server.MCPServer

	session  *service.SessionService
	points   *service.DrawnPointService
	viewport *service.ViewportService
	drafts   *service.DraftService
	geocode  *service.GeocodeService
}

// Deps holds all dependencies passed from the App layer to the MCP server.
type Deps struct {
	Session  *service.SessionService
	Points   *service.DrawnPointService
	Viewport *service.ViewportService
	Drafts   *service.DraftService
	Geocode  *service.GeocodeService
}

// New creates and configures a new MCP server with all tools registered.
func New(deps Deps) *Server {
	s := &Server{
		session:  deps.Session,
		points:   deps.Points,
		viewport: deps.Viewport,
		drafts:   deps.Drafts,
		geocode:  deps.Geocode,
	}

	s.mcp = server.NewMCPServer(
		"aoimap-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerAOITools()
	s.registerMapTools()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
