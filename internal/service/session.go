package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"aoimap/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Session Service — canonical AOI list, selection and publish state
// ─────────────────────────────────────────────────────────────
//
// All session state lives here and is only mutated through the methods
// below. Selection repair on removal happens inside the same locked
// transition, so no caller can observe a dangling selected id.

// SessionService owns the AOI list and the current selection.
type SessionService struct {
	mu          sync.Mutex
	aois        []domain.AOI
	selectedID  string // "" means no selection
	published   bool
	nextID      int
	searchQuery string

	viewport *ViewportService
	emitter  EventEmitter
}

// NewSessionService creates a SessionService seeded with the default AOIs.
func NewSessionService(emitter EventEmitter) *SessionService {
	return &SessionService{
		aois:       domain.SeedAOIs(),
		selectedID: "aoi-1",
		nextID:     4,
		emitter:    emitter,
	}
}

// SetViewport wires the viewport controller that receives fly-to commands
// whenever the selection changes. Set once during startup.
func (s *SessionService) SetViewport(v *ViewportService) {
	s.viewport = v
}

// AOIs returns a copy of the full AOI list in insertion order.
func (s *SessionService) AOIs() []domain.AOI {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AOI(nil), s.aois...)
}

// Selected returns the currently selected AOI, or nil. It is derived from
// (aois, selectedID) on every call and never cached.
func (s *SessionService) Selected() *domain.AOI {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *SessionService) selectedLocked() *domain.AOI {
	if s.selectedID == "" {
		return nil
	}
	for i := range s.aois {
		if s.aois[i].ID == s.selectedID {
			aoi := s.aois[i]
			return &aoi
		}
	}
	return nil
}

// Select sets the selection to the AOI with the given id, or clears it when
// id is empty. Selecting an unknown id is a defensive no-op: the previous
// selection stays and an error is returned for the caller to log.
func (s *SessionService) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	if id == "" {
		s.selectedID = ""
		s.mu.Unlock()
		s.emitChanged(ctx)
		return nil
	}
	found := false
	for i := range s.aois {
		if s.aois[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("select aoi: unknown id %q", id)
	}
	changed := s.selectedID != id
	s.selectedID = id
	target := s.selectedLocked()
	s.mu.Unlock()

	if changed && target != nil {
		s.flyTo(ctx, *target)
	}
	s.emitChanged(ctx)
	return nil
}

// Create mints a new AOI derived from the selected AOI (or the fixed
// fallback), appends it and selects it. It always succeeds.
func (s *SessionService) Create(ctx context.Context) domain.AOI {
	s.mu.Lock()
	ref := s.selectedLocked()
	base := domain.FallbackCenter
	zoom := domain.FallbackZoom
	if ref != nil {
		base = ref.Center
		zoom = ref.Zoom
	}
	aoi := domain.AOI{
		ID:          fmt.Sprintf("aoi-%d", s.nextID),
		Name:        fmt.Sprintf("AOI %d · New", s.nextID),
		Description: "Newly created AOI (placeholder metadata).",
		Center:      domain.LatLng{Lat: base.Lat + domain.CreateOffset, Lng: base.Lng + domain.CreateOffset},
		Zoom:        zoom,
	}
	s.aois = append(s.aois, aoi)
	s.selectedID = aoi.ID
	s.nextID++
	s.mu.Unlock()

	s.flyTo(ctx, aoi)
	s.emitChanged(ctx)
	return aoi
}

// RemoveSelected removes the currently selected AOI. It reports false when
// no AOI is selected. Selection repair is part of the same transition: an
// empty list clears the selection, otherwise the first remaining AOI is
// selected.
func (s *SessionService) RemoveSelected(ctx context.Context) bool {
	s.mu.Lock()
	target := s.selectedLocked()
	if target == nil {
		s.mu.Unlock()
		return false
	}
	remaining := s.aois[:0:0]
	for _, a := range s.aois {
		if a.ID != target.ID {
			remaining = append(remaining, a)
		}
	}
	s.aois = remaining
	var next *domain.AOI
	if len(remaining) == 0 {
		s.selectedID = ""
	} else {
		s.selectedID = remaining[0].ID
		aoi := remaining[0]
		next = &aoi
	}
	s.mu.Unlock()

	if next != nil {
		s.flyTo(ctx, *next)
	}
	s.emitChanged(ctx)
	return true
}

// Filter returns the AOIs whose name or description contains the query,
// case-insensitively. An empty or whitespace-only query returns the full
// list in original order. Pure derived view, no mutation.
func (s *SessionService) Filter(query string) []domain.AOI {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]domain.AOI(nil), s.aois...)
	}
	var out []domain.AOI
	for _, a := range s.aois {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			out = append(out, a)
		}
	}
	return out
}

// SetSearchQuery stores the volatile sidebar filter text.
func (s *SessionService) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
}

// FilteredAOIs applies the stored search query.
func (s *SessionService) FilteredAOIs() []domain.AOI {
	s.mu.Lock()
	q := s.searchQuery
	s.mu.Unlock()
	return s.Filter(q)
}

// Publish marks the AOI set as published. Simulated — nothing leaves the
// machine. The flag is never reset in normal flow.
func (s *SessionService) Publish() {
	s.mu.Lock()
	s.published = true
	s.mu.Unlock()
}

// IsPublished reports whether Publish has been called this session (or a
// restored draft carried the flag).
func (s *SessionService) IsPublished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published
}

// Snapshot returns the persistable view of the session.
func (s *SessionService) Snapshot() domain.DraftDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := domain.DraftDocument{
		AOIs:        append([]domain.AOI(nil), s.aois...),
		IsPublished: s.published,
		NextID:      s.nextID,
	}
	if s.selectedID != "" {
		id := s.selectedID
		doc.SelectedAOIID = &id
	}
	return doc
}

// Apply replaces the session state with a restored draft. The draft service
// has already defaulted missing fields, so the document is taken as-is.
func (s *SessionService) Apply(ctx context.Context, doc domain.DraftDocument) {
	s.mu.Lock()
	s.aois = append([]domain.AOI(nil), doc.AOIs...)
	s.selectedID = ""
	if doc.SelectedAOIID != nil {
		s.selectedID = *doc.SelectedAOIID
	}
	s.published = doc.IsPublished
	s.nextID = doc.NextID
	target := s.selectedLocked()
	s.mu.Unlock()

	if target != nil {
		s.flyTo(ctx, *target)
	}
	s.emitChanged(ctx)
}

// Reset restores the seed state. Drawn points are cleared by the app layer
// as part of the same session reset.
func (s *SessionService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.aois = domain.SeedAOIs()
	s.selectedID = "aoi-1"
	s.published = false
	s.nextID = 4
	s.searchQuery = ""
	target := s.selectedLocked()
	s.mu.Unlock()

	if target != nil {
		s.flyTo(ctx, *target)
	}
	s.emitChanged(ctx)
}

func (s *SessionService) flyTo(ctx context.Context, aoi domain.AOI) {
	if s.viewport != nil {
		s.viewport.FocusAOI(ctx, aoi)
	}
}

func (s *SessionService) emitChanged(ctx context.Context) {
	if s.emitter == nil {
		return
	}
	s.mu.Lock()
	data := map[string]any{
		"selectedAoiId": s.selectedID,
		"count":         len(s.aois),
	}
	s.mu.Unlock()
	s.emitter.Emit(ctx, "aoi:changed", data)
}
