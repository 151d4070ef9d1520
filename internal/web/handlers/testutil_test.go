package handlers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/layout"
	"github.com/kozaktomas/photo-print/internal/photofs"
)

// testConfig creates a config with the stock composition defaults
func testConfig() *config.Config {
	opts := compose.DefaultOptions()
	return &config.Config{
		Print: config.PrintConfig{
			Mode:               opts.Mode,
			Format:             layout.Format4x6,
			TextSizeMultiplier: opts.TextSizeMultiplier,
			ShowFilenames:      opts.ShowFilenames,
			ShowExif:           opts.ShowExif,
		},
		ContactSheet: config.ContactSheetConfig{
			Margin:   opts.Margin,
			Spacing:  opts.Spacing,
			FontSize: opts.FontSize,
		},
		Ingest: config.IngestConfig{Concurrency: 2},
		Server: config.ServerConfig{RenderCacheTTLMinutes: 1},
	}
}

func testIngester() *photofs.Ingester {
	return photofs.NewIngester(photofs.WithClock(func() time.Time {
		return time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	}))
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// pngBytes encodes a solid w x h image
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{0x30, 0x60, 0x90, 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type upload struct {
	field string
	name  string
	data  []byte
}

// multipartRequest builds a POST with form fields and file parts
func multipartRequest(t *testing.T, path string, fields map[string]string, files []upload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
