package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"aoimap/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Geocode Service — free-text location search
// ─────────────────────────────────────────────────────────────
//
// One GET against the search endpoint with limit=1; the first result, if
// any, recenters the viewport. Failures (network, non-200, empty result,
// unparsable coordinates) leave the viewport unchanged and are logged, not
// surfaced. Results are cached in SQLite so repeated searches skip the
// network; a cron job prunes stale cache rows.

const (
	// DefaultGeocodeEndpoint is the public Nominatim search API.
	DefaultGeocodeEndpoint = "https://nominatim.openstreetmap.org/search"
	// SearchZoom is the zoom applied when centering on a geocode result.
	SearchZoom = 13
	// geocodeCacheMaxAge is how long a cached result stays usable.
	geocodeCacheMaxAge = 24 * time.Hour
)

// GeocodeService resolves free-text queries to coordinates.
type GeocodeService struct {
	client   *http.Client
	endpoint string
	cache    *storage.GeocodeCacheStore
	viewport *ViewportService

	mu    sync.Mutex
	gen   int // supersession counter: only the newest search may move the map
	sched *cron.Cron
}

// NewGeocodeService creates a GeocodeService against the default endpoint.
func NewGeocodeService(cache *storage.GeocodeCacheStore, viewport *ViewportService) *GeocodeService {
	return &GeocodeService{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: DefaultGeocodeEndpoint,
		cache:    cache,
		viewport: viewport,
	}
}

// SetEndpoint overrides the search endpoint. Used by tests.
func (s *GeocodeService) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

// Search resolves the query and, when a result is found and the search has
// not been superseded by a newer one, recenters the viewport on it. It
// reports whether the viewport was moved.
func (s *GeocodeService) Search(ctx context.Context, query string) (bool, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return false, nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	if s.cache != nil {
		if loc, ok, err := s.cache.Get(query); err == nil && ok &&
			time.Since(loc.FetchedAt) < geocodeCacheMaxAge {
			return s.applyResult(ctx, gen, loc.Lat, loc.Lng), nil
		}
	}

	lat, lng, display, err := s.lookup(ctx, query)
	if err != nil {
		return false, err
	}

	if s.cache != nil {
		if err := s.cache.Put(&storage.CachedLocation{
			Query: query, Lat: lat, Lng: lng, DisplayName: display,
		}); err != nil {
			log.Printf("geocode: cache write failed: %v", err)
		}
	}

	return s.applyResult(ctx, gen, lat, lng), nil
}

// applyResult centers the viewport unless a newer search was issued while
// this one was in flight.
func (s *GeocodeService) applyResult(ctx context.Context, gen int, lat, lng float64) bool {
	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if stale {
		return false
	}
	s.viewport.CenterOn(ctx, lat, lng, SearchZoom)
	return true
}

func (s *GeocodeService) lookup(ctx context.Context, query string) (lat, lng float64, display string, err error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, "", fmt.Errorf("build geocode request: %w", err)
	}
	// Nominatim usage policy requires an identifying agent
	req.Header.Set("User-Agent", "aoimap/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, 0, "", fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, "", fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, 0, "", fmt.Errorf("read geocode response: %w", err)
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return 0, 0, "", fmt.Errorf("parse geocode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, "", fmt.Errorf("geocode: no results for %q", query)
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("parse geocode latitude: %w", err)
	}
	lng, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("parse geocode longitude: %w", err)
	}
	return lat, lng, results[0].DisplayName, nil
}

// StartCachePruning schedules an hourly prune of expired cache rows.
func (s *GeocodeService) StartCachePruning() {
	if s.cache == nil {
		return
	}
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		n, err := s.cache.PruneExpired(geocodeCacheMaxAge)
		if err != nil {
			log.Printf("geocode: cache prune failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("geocode: pruned %d expired cache row(s)", n)
		}
	})
	if err != nil {
		log.Printf("geocode: schedule cache prune: %v", err)
		return
	}
	c.Start()

	s.mu.Lock()
	s.sched = c
	s.mu.Unlock()
}

// Stop halts the pruning schedule.
func (s *GeocodeService) Stop() {
	s.mu.Lock()
	c := s.sched
	s.sched = nil
	s.mu.Unlock()
	if c != nil {
		c.Stop()
	}
}
