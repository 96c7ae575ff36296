package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerAOITools() {
	// ── list_aois ──────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_aois",
		mcp.WithDescription("List all areas of interest in the session"),
	), s.handleListAOIs)

	// ── filter_aois ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("filter_aois",
		mcp.WithDescription("List AOIs whose name or description matches a query (case-insensitive substring)"),
		mcp.WithString("query",
			mcp.Description("Filter text; empty returns the full list"),
		),
	), s.handleFilterAOIs)

	// ── get_selected_aoi ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_selected_aoi",
		mcp.WithDescription("Get the currently selected AOI, if any"),
	), s.handleGetSelectedAOI)

	// ── select_aoi ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("select_aoi",
		mcp.WithDescription("Select an AOI by id; the map flies to it"),
		mcp.WithString("id",
			mcp.Description("ID of the AOI to select"),
			mcp.Required(),
		),
	), s.handleSelectAOI)

	// ── create_aoi ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_aoi",
		mcp.WithDescription("Create a new AOI offset from the selected one and select it"),
	), s.handleCreateAOI)

	// ── remove_selected_aoi ────────────────────────────
	s.mcp.AddTool(mcp.NewTool("remove_selected_aoi",
		mcp.WithDescription("Remove the selected AOI; selection moves to the first remaining AOI"),
	), s.handleRemoveSelectedAOI)

	// ── save_draft ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("save_draft",
		mcp.WithDescription("Save the session snapshot to the local draft store"),
	), s.handleSaveDraft)

	// ── publish ────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("publish",
		mcp.WithDescription("Mark the AOI set as published (simulated, local-only)"),
	), s.handlePublish)
}

func (s *Server) handleListAOIs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.session.AOIs())
}

func (s *Server) handleFilterAOIs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	return jsonResult(s.session.Filter(query))
}

func (s *Server) handleGetSelectedAOI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	aoi := s.session.Selected()
	if aoi == nil {
		return textResult("no AOI selected"), nil
	}
	return jsonResult(aoi)
}

func (s *Server) handleSelectAOI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	if err := s.session.Select(ctx, id); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Selected %s", id)), nil
}

func (s *Server) handleCreateAOI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	aoi := s.session.Create(ctx)
	return jsonResult(aoi)
}

func (s *Server) handleRemoveSelectedAOI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.session.RemoveSelected(ctx) {
		return textResult("no AOI selected"), nil
	}
	return textResult("AOI removed"), nil
}

func (s *Server) handleSaveDraft(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.drafts == nil {
		return nil, fmt.Errorf("draft store unavailable")
	}
	if err := s.drafts.Save(s.session.Snapshot()); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return textResult("Draft saved"), nil
}

func (s *Server) handlePublish(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.session.Publish()
	return textResult("AOI set published (simulated)"), nil
}
