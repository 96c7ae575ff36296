package app

// ─────────────────────────────────────────────────────────────
// Session Handlers — draft save, publish, profile, reset
// ─────────────────────────────────────────────────────────────

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"aoimap/internal/service"
)

// SaveDraft writes the current session snapshot to the local store.
// A failed write is surfaced as a toast; session state is unchanged.
func (a *App) SaveDraft() {
	if a.drafts == nil {
		a.toasts.Notify(a.ctx, "Unable to save draft (storage error).")
		return
	}
	if err := a.drafts.Save(a.session.Snapshot()); err != nil {
		wailsRuntime.LogErrorf(a.ctx, "SaveDraft: %v", err)
		a.toasts.Notify(a.ctx, "Unable to save draft (storage error).")
		return
	}
	a.toasts.Notify(a.ctx, "Draft saved locally.")
}

// Publish marks the AOI set as published. Simulated — no network call.
func (a *App) Publish() {
	a.session.Publish()
	a.toasts.Notify(a.ctx, "AOI set published (simulated).")
}

// IsPublished reports the publish flag.
func (a *App) IsPublished() bool {
	return a.session.IsPublished()
}

// ProfileAction handles the three simulated profile-menu actions.
func (a *App) ProfileAction(action string) {
	switch action {
	case "profile":
		a.toasts.Notify(a.ctx, "Profile view is not implemented in this prototype.")
	case "settings":
		a.toasts.Notify(a.ctx, "Settings panel is not implemented in this prototype.")
	case "logout":
		a.toasts.Notify(a.ctx, "Sign-out is simulated only (no auth wired).")
	default:
		wailsRuntime.LogWarningf(a.ctx, "ProfileAction: unknown action %q", action)
	}
}

// ResetSession restores the seed AOIs and clears all drawn points.
func (a *App) ResetSession() {
	a.points.Reset(a.ctx)
	a.session.Reset(a.ctx)
	a.toasts.Notify(a.ctx, "Session reset to defaults.")
}

// GetWindowSize returns the saved window dimensions.
func (a *App) GetWindowSize() service.WindowSize {
	return a.window.LoadWindowSize()
}

// SaveWindowSize persists the current window dimensions.
func (a *App) SaveWindowSize(width, height int) {
	if err := a.window.SaveWindowSize(width, height); err != nil {
		wailsRuntime.LogDebugf(a.ctx, "SaveWindowSize: %v", err)
	}
}
