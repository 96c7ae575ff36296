package service

import (
	"encoding/json"
	"fmt"
	"os"
)

// ─────────────────────────────────────────────────────────────
// Map Layer Configuration
// ─────────────────────────────────────────────────────────────
//
// The imagery layers are a frontend concern; the core only supplies their
// parameters. Defaults point at the NRW orthophoto WMS; a map_config.json
// in the data dir overrides them and is hot-reloaded by the app layer.

// LayerConfig holds the base and WMS imagery layer parameters.
type LayerConfig struct {
	WMSURL      string `json:"wmsUrl"`
	WMSLayers   string `json:"wmsLayers"`
	WMSFormat   string `json:"wmsFormat"`
	WMSVersion  string `json:"wmsVersion"`
	Attribution string `json:"attribution"`
	BaseLayer   bool   `json:"baseLayer"`
}

// DefaultLayerConfig returns the built-in layer parameters.
func DefaultLayerConfig() LayerConfig {
	return LayerConfig{
		WMSURL:      "https://www.wms.nrw.de/geobasis/wms_nw_dop",
		WMSLayers:   "nw_dop_rgb",
		WMSFormat:   "image/jpeg",
		WMSVersion:  "1.3.0",
		Attribution: "© Land NRW – Geobasis NRW",
		BaseLayer:   false,
	}
}

// LoadLayerConfig reads the config file at path, falling back to defaults
// field-by-field for anything unset. A missing file is not an error.
func LoadLayerConfig(path string) (LayerConfig, error) {
	cfg := DefaultLayerConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read layer config: %w", err)
	}

	var overrides LayerConfig
	if err := json.Unmarshal(data, &overrides); err != nil {
		return cfg, fmt.Errorf("parse layer config: %w", err)
	}
	if overrides.WMSURL != "" {
		cfg.WMSURL = overrides.WMSURL
	}
	if overrides.WMSLayers != "" {
		cfg.WMSLayers = overrides.WMSLayers
	}
	if overrides.WMSFormat != "" {
		cfg.WMSFormat = overrides.WMSFormat
	}
	if overrides.WMSVersion != "" {
		cfg.WMSVersion = overrides.WMSVersion
	}
	if overrides.Attribution != "" {
		cfg.Attribution = overrides.Attribution
	}
	cfg.BaseLayer = overrides.BaseLayer
	return cfg, nil
}
