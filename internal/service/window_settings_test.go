package service_test

import (
	"path/filepath"
	"testing"

	"aoimap/internal/service"
	"aoimap/internal/storage"
)

func TestWindowSettings_RoundTrip(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := service.NewWindowSettingsService(db)
	if err := svc.SaveWindowSize(1500, 950); err != nil {
		t.Fatalf("save: %v", err)
	}

	size := svc.LoadWindowSize()
	if size.Width != 1500 || size.Height != 950 {
		t.Errorf("expected 1500x950, got %+v", size)
	}
}

func TestWindowSettings_RejectsTinySizes(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := service.NewWindowSettingsService(db)
	if err := svc.SaveWindowSize(100, 80); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Saved values below the floor fall back to defaults on load
	size := svc.LoadWindowSize()
	if size.Width < 800 || size.Height < 600 {
		t.Errorf("implausible saved size should not be restored: %+v", size)
	}
}
