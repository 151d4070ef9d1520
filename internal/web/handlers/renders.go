package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// RenderStore keeps encoded renders for a limited time so clients can
// download them after the request that produced them.
type RenderStore struct {
	cache *cache.Cache
}

// Render is a stored output image.
type Render struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Data      []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRenderStore creates a store whose entries expire after ttl.
func NewRenderStore(ttl, cleanupInterval time.Duration) *RenderStore {
	return &RenderStore{cache: cache.New(ttl, cleanupInterval)}
}

// Put stores data under a new ID.
func (s *RenderStore) Put(filename string, data []byte) *Render {
	r := &Render{
		ID:        uuid.NewString(),
		Filename:  filename,
		Data:      data,
		CreatedAt: time.Now(),
	}
	s.cache.SetDefault(r.ID, r)
	return r
}

// Get returns a stored render.
func (s *RenderStore) Get(id string) (*Render, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	r, ok := v.(*Render)
	return r, ok
}

// Count is the number of unexpired renders.
func (s *RenderStore) Count() int {
	return s.cache.ItemCount()
}

// RendersHandler serves stored renders.
type RendersHandler struct {
	store *RenderStore
}

// NewRendersHandler creates a new renders handler.
func NewRendersHandler(store *RenderStore) *RendersHandler {
	return &RendersHandler{store: store}
}

// Get streams the render {id} as PNG.
func (h *RendersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "invalid render id")
		return
	}
	render, ok := h.store.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "render not found or expired")
		return
	}
	respondPNG(w, render.Filename, render.Data)
}
