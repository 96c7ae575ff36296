package service

import (
	"context"
	"log"
	"sync"
	"time"

	"aoimap/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Viewport Service — fly-to commands, draw mode, move-end settle
// ─────────────────────────────────────────────────────────────
//
// The map widget lives in the frontend; this service only issues commands
// to it (as runtime events) and reacts to the callbacks it forwards. It
// never mutates AOI state, and touches drawn-point state only by forwarding
// clicks while draw mode is on.

// FlyToDuration is the fixed animation length for every fly-to command,
// in seconds (the unit the map widget expects).
const FlyToDuration = 0.7

// DefaultSettleDelay is how long the viewport must hold still after a
// move-end before the settle side effect fires.
const DefaultSettleDelay = 400 * time.Millisecond

// FlyToCommand is the payload of a map:flyto event.
type FlyToCommand struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Zoom     int     `json:"zoom"`
	Duration float64 `json:"duration"`
}

// ViewportService drives the map viewport and owns the draw-mode flag.
type ViewportService struct {
	mu        sync.Mutex
	drawMode  bool
	settleGen int
	settleTmr *time.Timer

	settleDelay time.Duration
	points      *DrawnPointService
	emitter     EventEmitter
}

// NewViewportService creates a ViewportService.
func NewViewportService(points *DrawnPointService, emitter EventEmitter) *ViewportService {
	return &ViewportService{
		settleDelay: DefaultSettleDelay,
		points:      points,
		emitter:     emitter,
	}
}

// SetSettleDelay overrides the move-end settle delay. Used by tests.
func (s *ViewportService) SetSettleDelay(d time.Duration) {
	s.mu.Lock()
	s.settleDelay = d
	s.mu.Unlock()
}

// FocusAOI issues one fly-to command for the AOI's center and zoom.
func (s *ViewportService) FocusAOI(ctx context.Context, aoi domain.AOI) {
	s.CenterOn(ctx, aoi.Center.Lat, aoi.Center.Lng, aoi.Zoom)
}

// CenterOn issues a fly-to command for an arbitrary reference point,
// independent of selection state. Used for geocode results and the
// focus-this-AOI action.
func (s *ViewportService) CenterOn(ctx context.Context, lat, lng float64, zoom int) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(ctx, "map:flyto", FlyToCommand{
		Lat:      lat,
		Lng:      lng,
		Zoom:     zoom,
		Duration: FlyToDuration,
	})
}

// SetDrawMode turns draw mode on or off.
func (s *ViewportService) SetDrawMode(ctx context.Context, on bool) {
	s.mu.Lock()
	changed := s.drawMode != on
	s.drawMode = on
	s.mu.Unlock()

	if changed && s.emitter != nil {
		s.emitter.Emit(ctx, "map:drawmode", map[string]bool{"active": on})
	}
}

// DrawMode reports whether draw mode is active.
func (s *ViewportService) DrawMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawMode
}

// CancelDrawMode exits draw mode. Bound to the escape key in the frontend.
func (s *ViewportService) CancelDrawMode(ctx context.Context) {
	s.SetDrawMode(ctx, false)
}

// HandleMapClick forwards a click to the drawn-point store while draw mode
// is active; otherwise the click is ignored here. Reports whether a point
// was added.
func (s *ViewportService) HandleMapClick(ctx context.Context, lat, lng float64) bool {
	s.mu.Lock()
	active := s.drawMode
	s.mu.Unlock()

	if !active || s.points == nil {
		return false
	}
	s.points.Add(ctx, lat, lng)
	return true
}

// HandleMoveEnd restarts the settle timer. Only the timer that survives the
// delay without being superseded by a newer move-end fires, so a settling
// burst produces at most one side effect. The current side effect logs the
// bounds; it is the hook for future viewport-scoped loading.
func (s *ViewportService) HandleMoveEnd(ctx context.Context, b domain.Bounds) {
	s.mu.Lock()
	s.settleGen++
	gen := s.settleGen
	if s.settleTmr != nil {
		s.settleTmr.Stop()
	}
	s.settleTmr = time.AfterFunc(s.settleDelay, func() {
		s.settle(ctx, gen, b)
	})
	s.mu.Unlock()
}

func (s *ViewportService) settle(ctx context.Context, gen int, b domain.Bounds) {
	s.mu.Lock()
	if gen != s.settleGen {
		s.mu.Unlock()
		return
	}
	s.settleTmr = nil
	s.mu.Unlock()

	log.Printf("viewport settled: [%.4f, %.4f] – [%.4f, %.4f]", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
	if s.emitter != nil {
		s.emitter.Emit(ctx, "map:settled", b)
	}
}

// Stop cancels any pending settle timer. Called on shutdown.
func (s *ViewportService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settleTmr != nil {
		s.settleTmr.Stop()
		s.settleTmr = nil
	}
	s.settleGen++
}
