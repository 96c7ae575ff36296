package app

import (
	"context"
	"log"
	"path/filepath"

	mcpserver "aoimap/internal/mcp"
	"aoimap/internal/service"
	"aoimap/internal/storage"
)

// noopEmitter is a no-op EventEmitter used in MCP-only mode (no Wails frontend).
type noopEmitter struct{}

func (noopEmitter) Emit(_ context.Context, _ string, _ any) {}

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with no GUI.
// It initializes storage, services, and runs the MCP server until stdin closes.
func ServeMCP() {
	dataDir := DataDir()
	db, err := storage.New(filepath.Join(dataDir, "aoimap.db"))
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer db.Close()

	emitter := noopEmitter{}

	points := service.NewDrawnPointService(emitter)
	viewport := service.NewViewportService(points, emitter)
	session := service.NewSessionService(emitter)
	session.SetViewport(viewport)
	drafts := service.NewDraftService(storage.NewDraftStore(db))
	geocode := service.NewGeocodeService(storage.NewGeocodeCacheStore(db), viewport)

	// Same one-shot restore as the GUI path, so tools see the saved session.
	if doc, ok := drafts.Restore(); ok {
		session.Apply(context.Background(), doc)
	}

	mcpSrv := mcpserver.New(mcpserver.Deps{
		Session:  session,
		Points:   points,
		Viewport: viewport,
		Drafts:   drafts,
		Geocode:  geocode,
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
