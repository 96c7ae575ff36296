package app

// ─────────────────────────────────────────────────────────────
// Map Handlers — draw mode, clicks, move-end, layer config
// ─────────────────────────────────────────────────────────────

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"aoimap/internal/domain"
	"aoimap/internal/service"
)

// SetDrawMode turns draw mode on or off.
func (a *App) SetDrawMode(on bool) {
	a.viewport.SetDrawMode(a.ctx, on)
}

// GetDrawMode reports whether draw mode is active.
func (a *App) GetDrawMode() bool {
	return a.viewport.DrawMode()
}

// CancelDrawMode exits draw mode (escape key).
func (a *App) CancelDrawMode() {
	a.viewport.CancelDrawMode(a.ctx)
}

// MapClicked forwards a map click. While draw mode is active this adds a
// drawn point; otherwise it is ignored.
func (a *App) MapClicked(lat, lng float64) {
	if a.viewport.HandleMapClick(a.ctx, lat, lng) {
		wailsRuntime.LogDebugf(a.ctx, "drawn point added at (%.4f, %.4f)", lat, lng)
	}
}

// MapMoveEnded reports the settled viewport bounds from the map widget.
func (a *App) MapMoveEnded(minLat, minLng, maxLat, maxLng float64) {
	a.viewport.HandleMoveEnd(a.ctx, domain.Bounds{
		MinLat: minLat,
		MinLng: minLng,
		MaxLat: maxLat,
		MaxLng: maxLng,
	})
}

// ListDrawnPoints returns all drawn points in placement order.
func (a *App) ListDrawnPoints() []domain.DrawnPoint {
	return a.points.List()
}

// GetLayerConfig returns the imagery layer parameters for the map widget.
func (a *App) GetLayerConfig() service.LayerConfig {
	a.layerMu.RLock()
	defer a.layerMu.RUnlock()
	return a.layerConfig
}
