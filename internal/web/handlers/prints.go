package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/constants"
	"github.com/kozaktomas/photo-print/internal/layout"
	"github.com/kozaktomas/photo-print/internal/photofs"
)

// PrintsHandler renders single framed prints from uploads.
type PrintsHandler struct {
	config   *config.Config
	engine   *compose.Engine
	ingester *photofs.Ingester
}

// NewPrintsHandler creates a new prints handler.
func NewPrintsHandler(cfg *config.Config, engine *compose.Engine, ingester *photofs.Ingester) *PrintsHandler {
	return &PrintsHandler{
		config:   cfg,
		engine:   engine,
		ingester: ingester,
	}
}

// readUpload reads one multipart file into memory, rejecting unsupported
// extensions.
func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	if !photofs.IsImageFile(fh.Filename) {
		return nil, fmt.Errorf("unsupported file type: %s", fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %s", fh.Filename)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %s", fh.Filename)
	}
	return data, nil
}

// Create renders the uploaded "photo" onto the requested "format" and
// returns the PNG. Options come from form fields.
func (h *PrintsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	if err := r.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	format := h.config.Print.Format
	if s := r.FormValue("format"); s != "" {
		format = layout.Format(s)
		if !h.engine.Catalog().Known(format) {
			respondError(w, http.StatusBadRequest, "unknown format")
			return
		}
	}
	opts, err := parseOptions(r, h.config.ComposeOptions())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	files := r.MultipartForm.File["photo"]
	if len(files) != 1 {
		respondError(w, http.StatusBadRequest, "exactly one photo is required")
		return
	}
	data, err := readUpload(files[0])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	photo := h.ingester.IngestBytes(files[0].Filename, data)
	size := h.engine.Catalog().GetSize(format)
	if r.FormValue("orientation") == "portrait" {
		size = layout.Size{Width: size.Height, Height: size.Width}
	}

	res, err := h.engine.RenderPrintOn(r.Context(), photo, size, opts)
	switch {
	case errors.Is(err, compose.ErrAssetUnavailable):
		respondError(w, http.StatusUnprocessableEntity, "photo could not be decoded")
		return
	case err != nil:
		log.Printf("WARNING: print render failed for %s: %v", sanitizeForLog(photo.Name), err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, res.Canvas); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to encode print")
		return
	}
	w.Header().Set("X-Effective-DPI", strconv.FormatFloat(res.EffectiveDPI, 'f', 1, 64))
	w.Header().Set("X-Layout-Warnings", strconv.Itoa(len(res.Warnings)))
	respondPNG(w, photofs.PrintFileName(photo.Name, "png"), buf.Bytes())
}
