package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"aoimap/internal/service"
	"aoimap/internal/storage"
)

func newDraftService(t *testing.T) (*service.DraftService, *storage.DraftStore) {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	store := storage.NewDraftStore(db)
	return service.NewDraftService(store), store
}

func TestDraft_RoundTrip(t *testing.T) {
	svc, _ := newDraftService(t)
	ctx := context.Background()

	s, _ := newSession(t)
	s.Create(ctx)
	s.Publish()
	saved := s.Snapshot()

	if err := svc.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	restored, ok := svc.Restore()
	if !ok {
		t.Fatal("expected draft to restore")
	}

	if len(restored.AOIs) != len(saved.AOIs) {
		t.Fatalf("expected %d AOIs, got %d", len(saved.AOIs), len(restored.AOIs))
	}
	for i := range saved.AOIs {
		if restored.AOIs[i] != saved.AOIs[i] {
			t.Errorf("AOI %d mismatch: %+v != %+v", i, restored.AOIs[i], saved.AOIs[i])
		}
	}
	if restored.SelectedAOIID == nil || *restored.SelectedAOIID != *saved.SelectedAOIID {
		t.Error("selected id mismatch")
	}
	if restored.IsPublished != saved.IsPublished || restored.NextID != saved.NextID {
		t.Errorf("flags mismatch: %+v vs %+v", restored, saved)
	}
}

func TestDraft_AbsentReturnsFalse(t *testing.T) {
	svc, _ := newDraftService(t)

	if _, ok := svc.Restore(); ok {
		t.Fatal("expected no draft on a fresh store")
	}
}

func TestDraft_MalformedFallsBack(t *testing.T) {
	svc, store := newDraftService(t)

	for _, payload := range []string{
		"not json at all",
		"{}",
		`{"aois": []}`,
		`{"aois": "wrong type"}`,
	} {
		if err := store.Put(service.DraftKey, payload); err != nil {
			t.Fatalf("seed payload: %v", err)
		}
		if _, ok := svc.Restore(); ok {
			t.Errorf("payload %q should be treated as absent", payload)
		}
	}
}

func TestDraft_DefaultsMissingFields(t *testing.T) {
	svc, store := newDraftService(t)

	payload := `{"aois": [
		{"id": "aoi-7", "name": "A", "description": "d", "center": [51.1, 7.1], "zoom": 10},
		{"id": "aoi-8", "name": "B", "description": "d", "center": [51.2, 7.2], "zoom": 11}
	]}`
	if err := store.Put(service.DraftKey, payload); err != nil {
		t.Fatalf("seed payload: %v", err)
	}

	doc, ok := svc.Restore()
	if !ok {
		t.Fatal("expected restore to succeed")
	}
	if doc.SelectedAOIID == nil || *doc.SelectedAOIID != "aoi-7" {
		t.Errorf("expected selection to default to first AOI, got %v", doc.SelectedAOIID)
	}
	if doc.IsPublished {
		t.Error("expected isPublished to default to false")
	}
	if doc.NextID != 3 {
		t.Errorf("expected nextId to default to len(aois)+1 = 3, got %d", doc.NextID)
	}
}

func TestDraft_NullSelectionDefaultsToFirst(t *testing.T) {
	svc, store := newDraftService(t)

	payload := `{"aois": [{"id": "aoi-9", "name": "A", "description": "", "center": [51, 7], "zoom": 9}],
		"selectedAoiId": null, "isPublished": true, "nextId": 10}`
	if err := store.Put(service.DraftKey, payload); err != nil {
		t.Fatalf("seed payload: %v", err)
	}

	doc, ok := svc.Restore()
	if !ok {
		t.Fatal("expected restore to succeed")
	}
	if doc.SelectedAOIID == nil || *doc.SelectedAOIID != "aoi-9" {
		t.Errorf("null selection should default to first AOI, got %v", doc.SelectedAOIID)
	}
	if !doc.IsPublished || doc.NextID != 10 {
		t.Errorf("explicit fields should survive: %+v", doc)
	}
}
