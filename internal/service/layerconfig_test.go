package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"aoimap/internal/service"
)

func TestLayerConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := service.LoadLayerConfig(filepath.Join(t.TempDir(), "map_config.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	def := service.DefaultLayerConfig()
	if cfg != def {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.WMSLayers != "nw_dop_rgb" || cfg.WMSVersion != "1.3.0" {
		t.Errorf("unexpected default WMS parameters: %+v", cfg)
	}
}

func TestLayerConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map_config.json")
	err := os.WriteFile(path, []byte(`{"wmsLayers": "custom_layer", "baseLayer": true}`), 0644)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := service.LoadLayerConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WMSLayers != "custom_layer" {
		t.Errorf("override lost: %+v", cfg)
	}
	if !cfg.BaseLayer {
		t.Error("baseLayer override lost")
	}
	if cfg.WMSURL != service.DefaultLayerConfig().WMSURL {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLayerConfig_MalformedFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map_config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := service.LoadLayerConfig(path)
	if err == nil {
		t.Fatal("expected parse error to be reported")
	}
	if cfg != service.DefaultLayerConfig() {
		t.Errorf("defaults should stand on parse failure, got %+v", cfg)
	}
}

func TestWindowSettings_DefaultsWithoutDB(t *testing.T) {
	svc := service.NewWindowSettingsService(nil)

	size := svc.LoadWindowSize()
	if size.Width < 800 || size.Height < 600 {
		t.Errorf("defaults too small: %+v", size)
	}
	if err := svc.SaveWindowSize(1000, 700); err == nil {
		t.Error("saving without a db should error")
	}
}
