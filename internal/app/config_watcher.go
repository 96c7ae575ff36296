package app

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"aoimap/internal/service"
)

// configWatcher watches map_config.json and hot-pushes layer parameter
// changes to the frontend, so imagery endpoints can be adjusted without a
// restart.
type configWatcher struct {
	ctx     context.Context
	app     *App
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

func newConfigWatcher(ctx context.Context, app *App) (*configWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory — editors replace files on save, which would
	// otherwise drop a file-level watch.
	if err := w.Add(filepath.Dir(app.layerConfigPath)); err != nil {
		w.Close()
		return nil, err
	}
	return &configWatcher{ctx: ctx, app: app, watcher: w, stopCh: make(chan struct{})}, nil
}

// Start begins the watch loop. Should be called once on app startup.
func (w *configWatcher) Start() {
	go w.loop()
}

// Stop terminates the watch loop.
func (w *configWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}

func (w *configWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.app.layerConfigPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			wailsRuntime.LogDebugf(w.ctx, "config watcher: %v", err)
		case <-w.stopCh:
			return
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *configWatcher) reload() {
	cfg, err := service.LoadLayerConfig(w.app.layerConfigPath)
	if err != nil {
		wailsRuntime.LogErrorf(w.ctx, "config watcher: reload failed: %v", err)
		return
	}
	w.app.setLayerConfig(cfg)
	wailsRuntime.EventsEmit(w.ctx, "map:layer-config", cfg)
}
