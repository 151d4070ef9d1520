package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/layout"
)

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondPNG sends encoded PNG bytes.
func respondPNG(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// parseOptions overlays request parameters (query or form) on base.
// Absent parameters keep the base value.
func parseOptions(r *http.Request, base compose.Options) (compose.Options, error) {
	opts := base
	if s := r.FormValue("mode"); s != "" {
		mode, err := layout.ParseMode(s)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if s := r.FormValue("text_size"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid text_size %q", s)
		}
		opts.TextSizeMultiplier = f
	}
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{"show_filenames", &opts.ShowFilenames},
		{"show_exif", &opts.ShowExif},
	} {
		if s := r.FormValue(b.name); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				return opts, fmt.Errorf("invalid %s %q", b.name, s)
			}
			*b.dst = v
		}
	}
	for _, n := range []struct {
		name string
		dst  *int
	}{
		{"margin", &opts.Margin},
		{"spacing", &opts.Spacing},
		{"font_size", &opts.FontSize},
	} {
		if s := r.FormValue(n.name); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return opts, fmt.Errorf("invalid %s %q", n.name, s)
			}
			*n.dst = v
		}
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
