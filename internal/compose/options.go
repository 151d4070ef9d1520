// Package compose renders single framed prints and contact sheets onto
// raster canvases.
package compose

import (
	"errors"
	"fmt"

	"github.com/kozaktomas/photo-print/internal/layout"
)

// Configuration errors, reported before anything is drawn.
var (
	ErrInvalidCanvas  = errors.New("invalid canvas size")
	ErrInvalidOptions = errors.New("invalid composition options")
)

// ErrAssetUnavailable wraps a failed image load.
var ErrAssetUnavailable = errors.New("image asset unavailable")

// Text size multiplier bounds.
const (
	MinTextSizeMultiplier = 0.5
	MaxTextSizeMultiplier = 3.0
)

// Options configures a composition call.
type Options struct {
	Mode               layout.PrintMode `json:"mode" yaml:"mode"`
	TextSizeMultiplier float64          `json:"text_size_multiplier" yaml:"text_size_multiplier"`
	ShowFilenames      bool             `json:"show_filenames" yaml:"show_filenames"`
	ShowExif           bool             `json:"show_exif" yaml:"show_exif"`

	// Contact sheet geometry in pixels: outer margin, gap between cells and
	// caption font size.
	Margin   int `json:"margin" yaml:"margin"`
	Spacing  int `json:"spacing" yaml:"spacing"`
	FontSize int `json:"font_size" yaml:"font_size"`

	// Concurrency caps simultaneous asset loads on a contact sheet. Zero
	// means one goroutine per cell.
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// OnPhoto, when set, is called once per laid-out contact sheet photo as
	// soon as that photo is drawn or skipped. It may be called from several
	// goroutines at once.
	OnPhoto func(PhotoOutcome) `json:"-" yaml:"-"`
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Mode:               layout.ModeNormal,
		TextSizeMultiplier: 1.0,
		ShowFilenames:      true,
		ShowExif:           true,
		Margin:             20,
		Spacing:            8,
		FontSize:           8,
	}
}

// Validate rejects options that cannot produce a layout.
func (o Options) Validate() error {
	if o.Mode != layout.ModeNormal && o.Mode != layout.ModeCommercial {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOptions, o.Mode)
	}
	if o.TextSizeMultiplier < MinTextSizeMultiplier || o.TextSizeMultiplier > MaxTextSizeMultiplier {
		return fmt.Errorf("%w: text size multiplier %.2f outside [%.1f, %.1f]",
			ErrInvalidOptions, o.TextSizeMultiplier, MinTextSizeMultiplier, MaxTextSizeMultiplier)
	}
	if o.Margin < 0 {
		return fmt.Errorf("%w: negative margin %d", ErrInvalidOptions, o.Margin)
	}
	if o.Spacing < 0 {
		return fmt.Errorf("%w: negative spacing %d", ErrInvalidOptions, o.Spacing)
	}
	if o.Concurrency < 0 {
		return fmt.Errorf("%w: negative concurrency %d", ErrInvalidOptions, o.Concurrency)
	}
	if o.FontSize < 1 {
		return fmt.Errorf("%w: font size must be at least 1px, got %d", ErrInvalidOptions, o.FontSize)
	}
	return nil
}

func (o Options) showCaptions() bool {
	return o.ShowFilenames || o.ShowExif
}
