package compose

import (
	"time"

	"github.com/kozaktomas/photo-print/internal/layout"
)

// Engine composes prints and contact sheets. It holds only read-only
// configuration, so one Engine may serve concurrent calls as long as each
// call renders to its own canvas.
type Engine struct {
	catalog *layout.Catalog
	now     func() time.Time
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithCatalog replaces the default format catalog.
func WithCatalog(c *layout.Catalog) EngineOption {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithClock sets the clock used for the contact sheet date.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an Engine backed by the embedded format catalog.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: layout.DefaultCatalog(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's format catalog.
func (e *Engine) Catalog() *layout.Catalog {
	return e.catalog
}
