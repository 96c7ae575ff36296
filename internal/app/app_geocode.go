package app

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// SearchLocation geocodes the query and recenters the map on the first
// result. Failures are logged only; the viewport stays where it is.
func (a *App) SearchLocation(query string) bool {
	moved, err := a.geocode.Search(a.ctx, query)
	if err != nil {
		wailsRuntime.LogInfof(a.ctx, "SearchLocation: %v", err)
		return false
	}
	return moved
}
