package app

// ─────────────────────────────────────────────────────────────
// AOI Handlers — thin delegates to SessionService
// ─────────────────────────────────────────────────────────────

import (
	"fmt"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"aoimap/internal/domain"
)

// ListAOIs returns all AOIs in insertion order.
func (a *App) ListAOIs() []domain.AOI {
	return a.session.AOIs()
}

// FilterAOIs stores the search query and returns the matching AOIs.
func (a *App) FilterAOIs(query string) []domain.AOI {
	a.session.SetSearchQuery(query)
	return a.session.Filter(query)
}

// GetSelectedAOI returns the selected AOI, or nil when none is selected.
func (a *App) GetSelectedAOI() *domain.AOI {
	return a.session.Selected()
}

// SelectAOI selects the AOI with the given id (empty clears the selection).
// An unknown id leaves the selection unchanged.
func (a *App) SelectAOI(id string) {
	if err := a.session.Select(a.ctx, id); err != nil {
		wailsRuntime.LogWarningf(a.ctx, "SelectAOI: %v", err)
	}
}

// CreateAOI creates a new AOI next to the selected one and selects it.
func (a *App) CreateAOI() domain.AOI {
	aoi := a.session.Create(a.ctx)
	a.toasts.Notify(a.ctx, "New AOI created.")
	return aoi
}

// RemoveSelectedAOI removes the selected AOI, repairing the selection.
func (a *App) RemoveSelectedAOI() {
	if a.session.RemoveSelected(a.ctx) {
		a.toasts.Notify(a.ctx, "AOI removed from this session.")
	}
}

// FocusSelectedAOI re-issues the fly-to command for the selected AOI.
func (a *App) FocusSelectedAOI() {
	aoi := a.session.Selected()
	if aoi == nil {
		return
	}
	a.toasts.Notify(a.ctx, fmt.Sprintf("Focusing map on %s.", aoi.Name))
	a.viewport.FocusAOI(a.ctx, *aoi)
}
