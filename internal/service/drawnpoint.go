package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"aoimap/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Drawn-Point Service — ad-hoc map-clicked points
// ─────────────────────────────────────────────────────────────

// DrawnPointService owns the ordered list of points placed in draw mode.
// Points are never tied to an AOI and survive selection changes; only a
// full session reset clears them. Coordinates are stored as given — no
// range validation.
type DrawnPointService struct {
	mu      sync.Mutex
	points  []domain.DrawnPoint
	seq     int
	emitter EventEmitter
}

// NewDrawnPointService creates a DrawnPointService.
func NewDrawnPointService(emitter EventEmitter) *DrawnPointService {
	return &DrawnPointService{emitter: emitter}
}

// Add appends a new point at the clicked coordinate with a generated
// sequence label. Always succeeds.
func (s *DrawnPointService) Add(ctx context.Context, lat, lng float64) domain.DrawnPoint {
	s.mu.Lock()
	s.seq++
	p := domain.DrawnPoint{
		ID:       uuid.New().String(),
		Position: domain.LatLng{Lat: lat, Lng: lng},
		Label:    fmt.Sprintf("Point %d", s.seq),
	}
	s.points = append(s.points, p)
	count := len(s.points)
	s.mu.Unlock()

	if s.emitter != nil {
		s.emitter.Emit(ctx, "points:changed", map[string]any{"count": count})
	}
	return p
}

// List returns a copy of all points in placement order.
func (s *DrawnPointService) List() []domain.DrawnPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.DrawnPoint(nil), s.points...)
}

// Reset drops all points and restarts the label sequence.
func (s *DrawnPointService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.points = nil
	s.seq = 0
	s.mu.Unlock()

	if s.emitter != nil {
		s.emitter.Emit(ctx, "points:changed", map[string]any{"count": 0})
	}
}
