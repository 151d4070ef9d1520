package layout

import (
	"fmt"
	"math"
	"strings"
)

// PrintMode selects how aggressively margins protect against trimming.
type PrintMode string

const (
	// ModeNormal assumes careful manual trimming.
	ModeNormal PrintMode = "normal"
	// ModeCommercial assumes a machine cutter with up to 1/4" tolerance.
	ModeCommercial PrintMode = "commercial"
)

// Commercial cutting tolerance band in inches.
const (
	MinCuttingToleranceIn = 0.125
	MaxCuttingToleranceIn = 0.25
)

// ParseMode parses a mode name. The empty string is normal mode.
func ParseMode(s string) (PrintMode, error) {
	switch PrintMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeNormal:
		return ModeNormal, nil
	case ModeCommercial:
		return ModeCommercial, nil
	default:
		return "", fmt.Errorf("unknown print mode %q (expected normal or commercial)", s)
	}
}

// ModeConfig holds every margin constant for one print mode, all in pixels
// at DPI. Resolve it once per render with ConfigFor and pass it down.
type ModeConfig struct {
	Mode          PrintMode
	TextPadPx     int // distance from the canvas edge to caption text
	ImageMarginPx int // default distance from the canvas edge to the photo
	ContactMargin int // minimum outer margin for contact sheets
	MinTextAreaPx int // required gap between text pad and image margin
}

var modeConfigs = map[PrintMode]ModeConfig{
	ModeNormal: {
		Mode:          ModeNormal,
		TextPadPx:     30,
		ImageMarginPx: 90,
		ContactMargin: 60,
		MinTextAreaPx: 30,
	},
	ModeCommercial: {
		Mode:          ModeCommercial,
		TextPadPx:     75,
		ImageMarginPx: 180,
		ContactMargin: 180,
		MinTextAreaPx: 50,
	},
}

// ConfigFor returns the margin configuration for a mode. Unknown modes
// resolve to normal.
func ConfigFor(mode PrintMode) ModeConfig {
	if cfg, ok := modeConfigs[mode]; ok {
		return cfg
	}
	return modeConfigs[ModeNormal]
}

// SafeAreaSpec is the derived padding for a single print.
type SafeAreaSpec struct {
	TextPad     int `json:"text_pad"`
	ImageMargin int `json:"image_margin"`
	FontSizePx  int `json:"font_size_px"`
}

// TextArea is the band between caption text and the photo edge.
func (s SafeAreaSpec) TextArea() int {
	return s.ImageMargin - s.TextPad
}

// InchesToPixels converts inches to pixels at DPI.
func InchesToPixels(in float64) float64 {
	return in * DPI
}

// PixelsToInches converts pixels at DPI to inches.
func PixelsToInches(px float64) float64 {
	return px / DPI
}

// FontSizePx is the caption font size for a canvas: 1% of its width scaled
// by the text size multiplier, floored.
func FontSizePx(canvasWidth int, multiplier float64) int {
	return int(math.Floor(float64(canvasWidth) / 100 * multiplier))
}

// MinMargin is the smallest image margin that keeps a caption of the given
// font size clear of the photo.
func MinMargin(textPad, fontSizePx int) float64 {
	return float64(textPad) + float64(fontSizePx)*1.5
}

// SafeArea derives the text pad and image margin for a single print. The
// mode's image margin is raised when a large multiplier needs more room.
func (c ModeConfig) SafeArea(canvasWidth int, multiplier float64) SafeAreaSpec {
	fontPx := FontSizePx(canvasWidth, multiplier)
	margin := c.ImageMarginPx
	if minM := int(math.Ceil(MinMargin(c.TextPadPx, fontPx))); minM > margin {
		margin = minM
	}
	return SafeAreaSpec{
		TextPad:     c.TextPadPx,
		ImageMargin: margin,
		FontSizePx:  fontPx,
	}
}

// ContactSheetMargin returns the outer margin for a contact sheet. A
// requested margin below the mode minimum is raised to it.
func (c ModeConfig) ContactSheetMargin(requested int) int {
	if requested < c.ContactMargin {
		return c.ContactMargin
	}
	return requested
}
