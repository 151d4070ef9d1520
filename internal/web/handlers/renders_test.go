package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRenderStore_PutGet(t *testing.T) {
	store := NewRenderStore(time.Minute, time.Minute)
	r := store.Put("sheet.png", []byte("png-bytes"))

	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("expected UUID id, got %q", r.ID)
	}
	got, ok := store.Get(r.ID)
	if !ok {
		t.Fatal("expected render to be stored")
	}
	if !bytes.Equal(got.Data, []byte("png-bytes")) || got.Filename != "sheet.png" {
		t.Errorf("unexpected render %+v", got)
	}
	if store.Count() != 1 {
		t.Errorf("expected 1 render, got %d", store.Count())
	}
}

func TestRenderStore_Expires(t *testing.T) {
	store := NewRenderStore(10*time.Millisecond, time.Hour)
	r := store.Put("sheet.png", []byte("x"))
	time.Sleep(30 * time.Millisecond)

	if _, ok := store.Get(r.ID); ok {
		t.Error("expected render to expire")
	}
}

func TestRendersHandler_Get(t *testing.T) {
	store := NewRenderStore(time.Minute, time.Minute)
	r := store.Put("sheet.png", []byte("\x89PNG"))
	handler := NewRendersHandler(store)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", r.ID, http.StatusOK},
		{"unknown", uuid.NewString(), http.StatusNotFound},
		{"malformed", "../etc/passwd", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/renders/x", nil), map[string]string{"id": tt.id})
			recorder := httptest.NewRecorder()
			handler.Get(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, recorder.Code)
			}
			if tt.wantStatus == http.StatusOK && recorder.Header().Get("Content-Type") != "image/png" {
				t.Errorf("expected image/png, got %s", recorder.Header().Get("Content-Type"))
			}
		})
	}
}
