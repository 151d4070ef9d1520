package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/layout"
)

// FormatsHandler serves the print size catalog and safe-area geometry.
type FormatsHandler struct {
	catalog *layout.Catalog
}

// NewFormatsHandler creates a new formats handler.
func NewFormatsHandler(catalog *layout.Catalog) *FormatsHandler {
	return &FormatsHandler{catalog: catalog}
}

// FormatResponse describes one print format.
type FormatResponse struct {
	Key         layout.Format `json:"key"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	WidthIn     float64       `json:"width_in"`
	HeightIn    float64       `json:"height_in"`
	AspectRatio float64       `json:"aspect_ratio"`
	Square      bool          `json:"square"`
}

// SafeAreaResponse is the single-print geometry for a format and mode.
type SafeAreaResponse struct {
	Format        layout.Format     `json:"format"`
	Mode          layout.PrintMode  `json:"mode"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	TextPad       int               `json:"text_pad"`
	ImageMargin   int               `json:"image_margin"`
	FontSize      int               `json:"font_size"`
	TextArea      int               `json:"text_area"`
	ImageRegion   layout.DrawRect   `json:"image_region"`
	ContactMargin int               `json:"contact_margin"`
	Tolerance     ToleranceResponse `json:"cutting_tolerance_in"`
}

// ToleranceResponse is the commercial cutting tolerance range in inches.
type ToleranceResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// List returns every format in catalog order.
func (h *FormatsHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.catalog.ListFormats()
	out := make([]FormatResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FormatResponse{
			Key:         e.Key,
			Width:       e.Size.Width,
			Height:      e.Size.Height,
			WidthIn:     layout.PixelsToInches(float64(e.Size.Width)),
			HeightIn:    layout.PixelsToInches(float64(e.Size.Height)),
			AspectRatio: h.catalog.AspectRatio(e.Key),
			Square:      h.catalog.IsSquare(e.Key),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// SafeArea returns margins for {format}. Query parameters: mode, text_size.
func (h *FormatsHandler) SafeArea(w http.ResponseWriter, r *http.Request) {
	format := layout.Format(chi.URLParam(r, "format"))
	if !h.catalog.Known(format) {
		respondError(w, http.StatusNotFound, "unknown format")
		return
	}

	mode, err := layout.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	multiplier := 1.0
	if s := r.URL.Query().Get("text_size"); s != "" {
		multiplier, err = strconv.ParseFloat(s, 64)
		if err != nil || multiplier < compose.MinTextSizeMultiplier || multiplier > compose.MaxTextSizeMultiplier {
			respondError(w, http.StatusBadRequest, "text_size must be between 0.5 and 3.0")
			return
		}
	}

	size := h.catalog.GetSize(format)
	cfg := layout.ConfigFor(mode)
	safe := cfg.SafeArea(size.Width, multiplier)
	m := float64(safe.ImageMargin)

	respondJSON(w, http.StatusOK, SafeAreaResponse{
		Format:      format,
		Mode:        mode,
		Width:       size.Width,
		Height:      size.Height,
		TextPad:     safe.TextPad,
		ImageMargin: safe.ImageMargin,
		FontSize:    safe.FontSizePx,
		TextArea:    safe.TextArea(),
		ImageRegion: layout.DrawRect{
			X:      m,
			Y:      m,
			Width:  float64(size.Width) - 2*m,
			Height: float64(size.Height) - 2*m,
		},
		ContactMargin: cfg.ContactMargin,
		Tolerance: ToleranceResponse{
			Min: layout.MinCuttingToleranceIn,
			Max: layout.MaxCuttingToleranceIn,
		},
	})
}
