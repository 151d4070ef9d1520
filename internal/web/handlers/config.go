package handlers

import (
	"net/http"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/layout"
)

// ConfigHandler handles configuration endpoints
type ConfigHandler struct {
	config *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		config: cfg,
	}
}

// ConfigResponse represents the configuration response
type ConfigResponse struct {
	DefaultFormat layout.Format      `json:"default_format"`
	Options       compose.Options    `json:"options"`
	Modes         []layout.PrintMode `json:"modes"`
	TextSize      TextSizeRange      `json:"text_size"`
}

// TextSizeRange is the accepted text size multiplier range.
type TextSizeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Get returns the composition defaults
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ConfigResponse{
		DefaultFormat: h.config.Print.Format,
		Options:       h.config.ComposeOptions(),
		Modes:         []layout.PrintMode{layout.ModeNormal, layout.ModeCommercial},
		TextSize: TextSizeRange{
			Min: compose.MinTextSizeMultiplier,
			Max: compose.MaxTextSizeMultiplier,
		},
	})
}
