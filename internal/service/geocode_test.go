package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"aoimap/internal/service"
	"aoimap/internal/storage"
)

func newGeocode(t *testing.T, handler http.HandlerFunc) (*service.GeocodeService, *service.MockEmitter, *int) {
	t.Helper()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m := &service.MockEmitter{}
	viewport := service.NewViewportService(service.NewDrawnPointService(m), m)
	geo := service.NewGeocodeService(storage.NewGeocodeCacheStore(db), viewport)
	geo.SetEndpoint(srv.URL)
	return geo, m, &hits
}

func TestGeocode_FirstResultCentersViewport(t *testing.T) {
	geo, m, _ := newGeocode(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("expected limit=1, got %q", got)
		}
		w.Write([]byte(`[{"lat": "51.51", "lon": "7.46", "display_name": "Dortmund"}]`))
	})

	moved, err := geo.Search(context.Background(), "Dortmund")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !moved {
		t.Fatal("expected viewport to move")
	}

	flights := m.Filter("map:flyto")
	if len(flights) != 1 {
		t.Fatalf("expected one fly-to, got %d", len(flights))
	}
	cmd := flights[0].Data.(service.FlyToCommand)
	if cmd.Lat != 51.51 || cmd.Lng != 7.46 || cmd.Zoom != service.SearchZoom {
		t.Errorf("unexpected fly-to: %+v", cmd)
	}
}

func TestGeocode_EmptyResultLeavesViewport(t *testing.T) {
	geo, m, _ := newGeocode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	moved, err := geo.Search(context.Background(), "nowhere-at-all")
	if err == nil {
		t.Fatal("expected an error for empty results")
	}
	if moved {
		t.Fatal("viewport must not move on empty results")
	}
	if n := len(m.Filter("map:flyto")); n != 0 {
		t.Errorf("expected no fly-to, got %d", n)
	}
}

func TestGeocode_ServerErrorLeavesViewport(t *testing.T) {
	geo, m, _ := newGeocode(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if moved, err := geo.Search(context.Background(), "anything"); err == nil || moved {
		t.Fatalf("expected failure without movement, got moved=%v err=%v", moved, err)
	}
	if n := len(m.Filter("map:flyto")); n != 0 {
		t.Errorf("expected no fly-to, got %d", n)
	}
}

func TestGeocode_MalformedResponse(t *testing.T) {
	geo, _, _ := newGeocode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	})

	if moved, err := geo.Search(context.Background(), "x"); err == nil || moved {
		t.Fatalf("expected parse failure, got moved=%v err=%v", moved, err)
	}
}

func TestGeocode_UnparsableCoordinates(t *testing.T) {
	geo, _, _ := newGeocode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": "abc", "lon": "7.4"}]`))
	})

	if moved, err := geo.Search(context.Background(), "x"); err == nil || moved {
		t.Fatalf("expected coordinate parse failure, got moved=%v err=%v", moved, err)
	}
}

func TestGeocode_SecondSearchHitsCache(t *testing.T) {
	geo, m, hits := newGeocode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": "50.94", "lon": "6.96", "display_name": "Köln"}]`))
	})
	ctx := context.Background()

	if _, err := geo.Search(ctx, "Köln"); err != nil {
		t.Fatalf("first search: %v", err)
	}
	if _, err := geo.Search(ctx, "Köln"); err != nil {
		t.Fatalf("second search: %v", err)
	}

	if *hits != 1 {
		t.Errorf("expected one network hit, got %d", *hits)
	}
	if n := len(m.Filter("map:flyto")); n != 2 {
		t.Errorf("both searches should center the map, got %d fly-tos", n)
	}
}

func TestGeocode_BlankQueryIsNoop(t *testing.T) {
	geo, m, hits := newGeocode(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	moved, err := geo.Search(context.Background(), "   ")
	if err != nil || moved {
		t.Fatalf("blank query should be a silent no-op, got moved=%v err=%v", moved, err)
	}
	if *hits != 0 {
		t.Errorf("blank query must not hit the network, got %d hits", *hits)
	}
	if n := len(m.Filter("map:flyto")); n != 0 {
		t.Errorf("expected no fly-to, got %d", n)
	}
}
