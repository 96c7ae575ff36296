package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"aoimap/internal/domain"
)

func TestLatLng_MarshalsAsArray(t *testing.T) {
	aoi := domain.AOI{
		ID:     "aoi-1",
		Name:   "Test",
		Center: domain.LatLng{Lat: 51.5, Lng: 7.5},
		Zoom:   12,
	}
	data, err := json.Marshal(aoi)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"center":[51.5,7.5]`) {
		t.Errorf("center should encode as [lat, lng] array, got %s", data)
	}
}

func TestLatLng_UnmarshalFromArray(t *testing.T) {
	var aoi domain.AOI
	payload := `{"id": "aoi-2", "name": "X", "description": "", "center": [51.8, 7.0], "zoom": 12}`
	if err := json.Unmarshal([]byte(payload), &aoi); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if aoi.Center.Lat != 51.8 || aoi.Center.Lng != 7.0 {
		t.Errorf("unexpected center: %+v", aoi.Center)
	}
}

func TestLatLng_RejectsNonArray(t *testing.T) {
	var c domain.LatLng
	if err := json.Unmarshal([]byte(`{"lat": 1, "lng": 2}`), &c); err == nil {
		t.Fatal("expected error for object-shaped coordinate")
	}
}

func TestSeedAOIs_StableDefaults(t *testing.T) {
	seeds := domain.SeedAOIs()
	if len(seeds) != 3 {
		t.Fatalf("expected 3 seed AOIs, got %d", len(seeds))
	}
	if seeds[0].ID != "aoi-1" || seeds[2].Name != "AOI 3 · Forest Edge" {
		t.Errorf("unexpected seeds: %+v", seeds)
	}
	// A second call must not share backing storage with the first
	seeds[0].Name = "mutated"
	if domain.SeedAOIs()[0].Name != "AOI 1 · Urban Core" {
		t.Error("SeedAOIs must return a fresh copy")
	}
}
