package handlers

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/constants"
	"github.com/kozaktomas/photo-print/internal/layout"
	"github.com/kozaktomas/photo-print/internal/photofs"
)

// ContactSheetsHandler renders contact sheets from uploads.
type ContactSheetsHandler struct {
	config   *config.Config
	engine   *compose.Engine
	ingester *photofs.Ingester
	store    *RenderStore
}

// NewContactSheetsHandler creates a new contact sheets handler.
func NewContactSheetsHandler(cfg *config.Config, engine *compose.Engine, ingester *photofs.Ingester, store *RenderStore) *ContactSheetsHandler {
	return &ContactSheetsHandler{
		config:   cfg,
		engine:   engine,
		ingester: ingester,
		store:    store,
	}
}

// ContactSheetResponse summarizes a rendered sheet. The image itself is
// fetched from URL.
type ContactSheetResponse struct {
	ID        string                     `json:"id"`
	URL       string                     `json:"url"`
	Title     string                     `json:"title"`
	Grid      layout.GridPlan            `json:"grid"`
	Placed    int                        `json:"placed"`
	Skipped   int                        `json:"skipped"`
	Truncated int                        `json:"truncated"`
	Failures  []FailureResponse          `json:"failures,omitempty"`
	Warnings  []layout.ValidationWarning `json:"warnings,omitempty"`
}

// FailureResponse is a photo that could not be placed.
type FailureResponse struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// Create renders every uploaded "photos" file onto one sheet and stores
// the PNG for later download.
func (h *ContactSheetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	if err := r.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	opts, err := parseOptions(r, h.config.ComposeOptions())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "no photos uploaded")
		return
	}
	if len(files) > constants.MaxContactSheetUploads {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d photos per contact sheet", constants.MaxContactSheetUploads))
		return
	}

	photos := make([]compose.Photo, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		photos = append(photos, h.ingester.IngestBytes(fh.Filename, data))
	}

	res, err := h.engine.RenderContactSheet(r.Context(), photos, opts)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, res.Canvas); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to encode contact sheet")
		return
	}
	render := h.store.Put(photofs.ContactSheetFileName(time.Now()), buf.Bytes())
	log.Printf("Contact sheet %s: %d placed, %d skipped, %d truncated",
		render.ID, res.Placed, res.Skipped, res.Truncated)

	resp := ContactSheetResponse{
		ID:        render.ID,
		URL:       "/api/v1/renders/" + render.ID,
		Title:     res.Title,
		Grid:      res.Grid,
		Placed:    res.Placed,
		Skipped:   res.Skipped,
		Truncated: res.Truncated,
		Warnings:  res.Warnings,
	}
	for _, f := range res.Failures {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		resp.Failures = append(resp.Failures, FailureResponse{Index: f.Index, Name: f.Name, Error: msg})
	}
	w.Header().Set(constants.RenderIDHeader, render.ID)
	respondJSON(w, http.StatusCreated, resp)
}
