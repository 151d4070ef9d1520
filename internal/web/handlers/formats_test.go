package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/photo-print/internal/layout"
)

func TestFormatsHandler_List(t *testing.T) {
	handler := NewFormatsHandler(layout.DefaultCatalog())
	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var formats []FormatResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &formats); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(formats) != 7 {
		t.Fatalf("expected 7 formats, got %d", len(formats))
	}
	first := formats[0]
	if first.Key != layout.Format4x6 || first.Width != 1800 || first.Height != 1200 {
		t.Errorf("unexpected first format %+v", first)
	}
	if first.WidthIn != 6 || first.HeightIn != 4 {
		t.Errorf("expected 6x4 inches, got %vx%v", first.WidthIn, first.HeightIn)
	}
	for _, f := range formats {
		if f.Key == layout.FormatSquare && !f.Square {
			t.Error("expected square format to be flagged")
		}
	}
}

func TestFormatsHandler_SafeArea(t *testing.T) {
	handler := NewFormatsHandler(layout.DefaultCatalog())

	tests := []struct {
		name       string
		format     string
		query      string
		wantStatus int
		wantPad    int
		wantMargin int
	}{
		{"normal default", "4x6", "", http.StatusOK, 30, 90},
		{"commercial", "4x6", "?mode=commercial", http.StatusOK, 75, 180},
		{"normal large text lifts margin", "11x14", "?text_size=1.0", http.StatusOK, 30, 93},
		{"unknown format", "poster", "", http.StatusNotFound, 0, 0},
		{"bad mode", "4x6", "?mode=glossy", http.StatusBadRequest, 0, 0},
		{"bad text size", "4x6", "?text_size=9", http.StatusBadRequest, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/formats/"+tt.format+"/safe-area"+tt.query, nil)
			req = requestWithChiParams(req, map[string]string{"format": tt.format})
			recorder := httptest.NewRecorder()
			handler.SafeArea(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, recorder.Code, recorder.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp SafeAreaResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.TextPad != tt.wantPad || resp.ImageMargin != tt.wantMargin {
				t.Errorf("expected pad %d margin %d, got %d/%d", tt.wantPad, tt.wantMargin, resp.TextPad, resp.ImageMargin)
			}
			wantW := float64(resp.Width - 2*resp.ImageMargin)
			if resp.ImageRegion.Width != wantW {
				t.Errorf("expected region width %v, got %v", wantW, resp.ImageRegion.Width)
			}
			if resp.Tolerance.Min != 0.125 || resp.Tolerance.Max != 0.25 {
				t.Errorf("unexpected tolerance %+v", resp.Tolerance)
			}
		})
	}
}
