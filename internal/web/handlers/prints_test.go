package handlers

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kozaktomas/photo-print/internal/compose"
)

func newTestPrintsHandler() *PrintsHandler {
	return NewPrintsHandler(testConfig(), compose.NewEngine(), testIngester())
}

func TestPrintsHandler_Create(t *testing.T) {
	handler := newTestPrintsHandler()
	req := multipartRequest(t, "/api/v1/prints",
		map[string]string{"format": "5x7", "mode": "commercial"},
		[]upload{{field: "photo", name: "IMG_0042.png", data: pngBytes(t, 60, 40)}})
	recorder := httptest.NewRecorder()
	handler.Create(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %s", ct)
	}
	if cd := recorder.Header().Get("Content-Disposition"); !strings.Contains(cd, "IMG_0042_print.png") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if recorder.Header().Get("X-Effective-DPI") == "" {
		t.Error("expected X-Effective-DPI header")
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(recorder.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if cfg.Width != 2100 || cfg.Height != 1500 {
		t.Errorf("expected 2100x1500, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPrintsHandler_Portrait(t *testing.T) {
	handler := newTestPrintsHandler()
	req := multipartRequest(t, "/api/v1/prints",
		map[string]string{"orientation": "portrait"},
		[]upload{{field: "photo", name: "tall.png", data: pngBytes(t, 40, 60)}})
	recorder := httptest.NewRecorder()
	handler.Create(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(recorder.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if cfg.Width != 1200 || cfg.Height != 1800 {
		t.Errorf("expected 1200x1800, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPrintsHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		files      []upload
		wantStatus int
	}{
		{
			name:       "no photo",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown format",
			fields:     map[string]string{"format": "poster"},
			files:      []upload{{field: "photo", name: "a.png", data: []byte("x")}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid text size",
			fields:     map[string]string{"text_size": "7"},
			files:      []upload{{field: "photo", name: "a.png", data: []byte("x")}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported extension",
			files:      []upload{{field: "photo", name: "notes.txt", data: []byte("x")}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "undecodable image",
			files:      []upload{{field: "photo", name: "broken.jpg", data: []byte("not a jpeg")}},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := multipartRequest(t, "/api/v1/prints", tt.fields, tt.files)
			recorder := httptest.NewRecorder()
			newTestPrintsHandler().Create(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestPrintsHandler_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prints", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	newTestPrintsHandler().Create(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", recorder.Code)
	}
}
