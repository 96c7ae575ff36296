package domain

import (
	"encoding/json"
	"fmt"
)

// LatLng is a geographic coordinate pair. It marshals as a two-element
// [lat, lng] array so the persisted draft stays compatible with the
// browser-era draft documents.
type LatLng struct {
	Lat float64
	Lng float64
}

// MarshalJSON encodes the coordinate as [lat, lng].
func (c LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lng})
}

// UnmarshalJSON decodes a [lat, lng] array.
func (c *LatLng) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode lat/lng pair: %w", err)
	}
	c.Lat, c.Lng = pair[0], pair[1]
	return nil
}

// AOI is a named area of interest: a center point, zoom level and
// descriptive metadata. No polygon geometry.
type AOI struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Center      LatLng `json:"center"`
	Zoom        int    `json:"zoom"`
}

// DrawnPoint is an ad-hoc point placed by a map click while draw mode is
// active. It is never associated with an AOI.
type DrawnPoint struct {
	ID       string `json:"id"`
	Position LatLng `json:"position"`
	Label    string `json:"label"`
}

// Bounds is the visible map extent reported on move-end.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// DraftDocument is the persisted session snapshot, stored under a single
// fixed key. The field set and shapes match the original draft format;
// there is no version field.
type DraftDocument struct {
	AOIs          []AOI   `json:"aois"`
	SelectedAOIID *string `json:"selectedAoiId"`
	IsPublished   bool    `json:"isPublished"`
	NextID        int     `json:"nextId"`
}

const (
	// FallbackZoom is used when a new AOI has no reference AOI to derive from.
	FallbackZoom = 12
	// CreateOffset shifts a new AOI's center from its reference on both axes.
	CreateOffset = 0.03
)

// FallbackCenter is the reference center used when no AOI is selected.
var FallbackCenter = LatLng{Lat: 51.5, Lng: 7.5}

// SeedAOIs returns the default working set for a fresh session.
func SeedAOIs() []AOI {
	return []AOI{
		{
			ID:          "aoi-1",
			Name:        "AOI 1 · Urban Core",
			Description: "Dense urban test AOI near city center with mixed land use.",
			Center:      LatLng{Lat: 51.5, Lng: 7.5},
			Zoom:        12,
		},
		{
			ID:          "aoi-2",
			Name:        "AOI 2 · Farmland",
			Description: "Agricultural region with crop fields and irrigation patterns.",
			Center:      LatLng{Lat: 51.8, Lng: 7.0},
			Zoom:        12,
		},
		{
			ID:          "aoi-3",
			Name:        "AOI 3 · Forest Edge",
			Description: "Transition zone between forested area and nearby roads.",
			Center:      LatLng{Lat: 51.3, Lng: 6.8},
			Zoom:        12,
		},
	}
}
