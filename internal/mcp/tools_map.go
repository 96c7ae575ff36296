package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerMapTools() {
	// ── add_drawn_point ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_drawn_point",
		mcp.WithDescription("Place an ad-hoc labeled point on the map"),
		mcp.WithNumber("lat", mcp.Description("Latitude"), mcp.Required()),
		mcp.WithNumber("lng", mcp.Description("Longitude"), mcp.Required()),
	), s.handleAddDrawnPoint)

	// ── list_drawn_points ──────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_drawn_points",
		mcp.WithDescription("List all drawn points in placement order"),
	), s.handleListDrawnPoints)

	// ── focus_selected_aoi ─────────────────────────────
	s.mcp.AddTool(mcp.NewTool("focus_selected_aoi",
		mcp.WithDescription("Fly the map to the selected AOI"),
	), s.handleFocusSelectedAOI)

	// ── geocode_search ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("geocode_search",
		mcp.WithDescription("Geocode a free-text location and recenter the map on the first result"),
		mcp.WithString("query",
			mcp.Description("Location text to search for"),
			mcp.Required(),
		),
	), s.handleGeocodeSearch)
}

func (s *Server) handleAddDrawnPoint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	lat, err := floatArg(args, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := floatArg(args, "lng")
	if err != nil {
		return nil, err
	}
	p := s.points.Add(ctx, lat, lng)
	return jsonResult(p)
}

func (s *Server) handleListDrawnPoints(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.points.List())
}

func (s *Server) handleFocusSelectedAOI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	aoi := s.session.Selected()
	if aoi == nil {
		return textResult("no AOI selected"), nil
	}
	s.viewport.FocusAOI(ctx, *aoi)
	return textResult(fmt.Sprintf("Focusing map on %s", aoi.Name)), nil
}

func (s *Server) handleGeocodeSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	moved, err := s.geocode.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("geocode search: %w", err)
	}
	if !moved {
		return textResult("no result applied"), nil
	}
	return textResult("map recentered on first result"), nil
}
