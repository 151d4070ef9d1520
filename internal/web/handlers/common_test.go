package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/layout"
)

func TestRespondJSON_SetsContentType(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondJSON(recorder, http.StatusOK, map[string]string{"status": "ok"})

	contentType := recorder.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", contentType)
	}
}

func TestRespondJSON_SetsStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"Created", http.StatusCreated},
		{"BadRequest", http.StatusBadRequest},
		{"NotFound", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respondJSON(recorder, tc.statusCode, nil)

			if recorder.Code != tc.statusCode {
				t.Errorf("expected status %d, got %d", tc.statusCode, recorder.Code)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondError(recorder, http.StatusBadRequest, "bad input")

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body["error"] != "bad input" {
		t.Errorf("expected error 'bad input', got '%s'", body["error"])
	}
}

func TestHealthCheck(t *testing.T) {
	recorder := httptest.NewRecorder()
	HealthCheck(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", recorder.Body.String())
	}
}

func TestSanitizeForLog(t *testing.T) {
	if got := sanitizeForLog("a\nb\rc"); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}
}

func TestParseOptions(t *testing.T) {
	q := url.Values{
		"mode":           {"commercial"},
		"text_size":      {"1.5"},
		"show_filenames": {"false"},
		"margin":         {"40"},
		"font_size":      {"12"},
	}
	req := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)

	opts, err := parseOptions(req, compose.DefaultOptions())
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.Mode != layout.ModeCommercial || opts.TextSizeMultiplier != 1.5 {
		t.Errorf("unexpected mode/multiplier %s/%v", opts.Mode, opts.TextSizeMultiplier)
	}
	if opts.ShowFilenames || !opts.ShowExif {
		t.Errorf("expected filenames off and EXIF on, got %v/%v", opts.ShowFilenames, opts.ShowExif)
	}
	if opts.Margin != 40 || opts.Spacing != 8 || opts.FontSize != 12 {
		t.Errorf("unexpected geometry %d/%d/%d", opts.Margin, opts.Spacing, opts.FontSize)
	}
}

func TestParseOptions_Invalid(t *testing.T) {
	tests := []string{
		"mode=glossy",
		"text_size=abc",
		"text_size=4",
		"show_exif=perhaps",
		"spacing=-3",
		"font_size=x",
	}
	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+q, nil)
			if _, err := parseOptions(req, compose.DefaultOptions()); err == nil {
				t.Errorf("expected error for %s", q)
			}
		})
	}
}
