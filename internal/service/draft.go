package service

import (
	"encoding/json"
	"fmt"

	"aoimap/internal/domain"
	"aoimap/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Draft Service — explicit save / one-shot restore of the session
// ─────────────────────────────────────────────────────────────
//
// The draft is one JSON document under one fixed key. It is written only
// when the user saves and read exactly once, at startup. A missing or
// malformed document is never an error: the in-memory defaults stand.

// DraftKey is the fixed storage key for the session draft. The key name
// carries the only format-version signal; the document itself has none.
const DraftKey = "aoi-map-draft-v1"

// DraftService serializes the session snapshot to the local store.
type DraftService struct {
	store *storage.DraftStore
}

// NewDraftService creates a DraftService.
func NewDraftService(store *storage.DraftStore) *DraftService {
	return &DraftService{store: store}
}

// Save writes the snapshot under the fixed key. A failed write (store
// closed, disk error, serialization failure) is returned to the caller,
// which surfaces it as a notification; session state is untouched either way.
func (s *DraftService) Save(doc domain.DraftDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize draft: %w", err)
	}
	if err := s.store.Put(DraftKey, string(payload)); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Restore reads the fixed key and returns the restored document, or false
// when no usable draft exists. A malformed payload or an empty AOI list is
// treated the same as an absent draft. Missing fields are defaulted:
// selection to the first AOI, published to false, nextId to len(aois)+1.
func (s *DraftService) Restore() (domain.DraftDocument, bool) {
	payload, ok, err := s.store.Get(DraftKey)
	if err != nil || !ok {
		return domain.DraftDocument{}, false
	}

	var raw struct {
		AOIs          []domain.AOI `json:"aois"`
		SelectedAOIID *string      `json:"selectedAoiId"`
		IsPublished   *bool        `json:"isPublished"`
		NextID        *int         `json:"nextId"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return domain.DraftDocument{}, false
	}
	if len(raw.AOIs) == 0 {
		return domain.DraftDocument{}, false
	}

	doc := domain.DraftDocument{AOIs: raw.AOIs}

	if raw.SelectedAOIID != nil {
		doc.SelectedAOIID = raw.SelectedAOIID
	} else {
		first := raw.AOIs[0].ID
		doc.SelectedAOIID = &first
	}
	if raw.IsPublished != nil {
		doc.IsPublished = *raw.IsPublished
	}
	if raw.NextID != nil {
		doc.NextID = *raw.NextID
	} else {
		doc.NextID = len(raw.AOIs) + 1
	}
	return doc, true
}
