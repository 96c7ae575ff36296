package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"aoimap/internal/service"
	"aoimap/internal/storage"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	db       *storage.DB
	session  *service.SessionService
	drafts   *service.DraftService
	points   *service.DrawnPointService
	viewport *service.ViewportService
	toasts   *service.NotificationService
	geocode  *service.GeocodeService
	window   *service.WindowSettingsService

	layerMu         sync.RWMutex
	layerConfig     service.LayerConfig
	layerConfigPath string
	watcher         *configWatcher
}

// setLayerConfig replaces the active layer config. Called from Startup and
// from the config watcher goroutine.
func (a *App) setLayerConfig(cfg service.LayerConfig) {
	a.layerMu.Lock()
	a.layerConfig = cfg
	a.layerMu.Unlock()
}

// New creates a new App.
func New() *App {
	return &App{}
}

// Emit implements service.EventEmitter by delegating to the Wails runtime.
func (a *App) Emit(ctx context.Context, event string, data any) {
	if a.ctx == nil {
		return
	}
	wailsRuntime.EventsEmit(a.ctx, event, data)
}

// DataDir returns the app's local data directory.
func DataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "aoimap")
}

// Startup is called when the app starts. It opens the local store, wires
// the services and restores the saved draft — once, before any user
// interaction is possible.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	dataDir := DataDir()
	db, err := storage.New(filepath.Join(dataDir, "aoimap.db"))
	if err != nil {
		// The session still works without a store; saving will surface the
		// failure as a toast when attempted.
		wailsRuntime.LogErrorf(ctx, "Failed to open local store: %v", err)
	}
	a.db = db

	a.toasts = service.NewNotificationService(a)
	a.points = service.NewDrawnPointService(a)
	a.viewport = service.NewViewportService(a.points, a)
	a.session = service.NewSessionService(a)
	a.session.SetViewport(a.viewport)
	a.window = service.NewWindowSettingsService(db)

	// Restore the window size saved last session.
	size := a.window.LoadWindowSize()
	wailsRuntime.WindowSetSize(ctx, size.Width, size.Height)

	if db != nil {
		a.drafts = service.NewDraftService(storage.NewDraftStore(db))
		a.geocode = service.NewGeocodeService(storage.NewGeocodeCacheStore(db), a.viewport)
	} else {
		a.geocode = service.NewGeocodeService(nil, a.viewport)
	}
	a.geocode.StartCachePruning()

	// One-shot restore: a missing or malformed draft leaves the defaults.
	if a.drafts != nil {
		if doc, ok := a.drafts.Restore(); ok {
			a.session.Apply(ctx, doc)
			a.toasts.Notify(ctx, "Loaded last saved draft.")
		}
	}

	// Layer config with hot reload
	a.layerConfigPath = filepath.Join(dataDir, "map_config.json")
	cfg, err := service.LoadLayerConfig(a.layerConfigPath)
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Layer config: %v", err)
	}
	a.setLayerConfig(cfg)

	w, err := newConfigWatcher(ctx, a)
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to watch layer config: %v", err)
	} else {
		a.watcher = w
		a.watcher.Start()
	}
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.geocode != nil {
		a.geocode.Stop()
	}
	if a.viewport != nil {
		a.viewport.Stop()
	}
	if a.toasts != nil {
		a.toasts.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}
