package exif

import (
	"math"
	"strconv"
	"strings"
)

// Filename truncation for captions.
const (
	MaxNameLength  = 20
	TruncatedName  = 17
	ellipsisMarker = "..."
)

// Tokens returns the compact settings tokens in fixed order: focal length,
// aperture, shutter speed, ISO. Absent fields contribute nothing.
func Tokens(m Metadata) []string {
	var tokens []string
	if v := m[KeyFocalLength]; v != "" {
		tokens = append(tokens, v+"mm")
	}
	if v := m[KeyFNumber]; v != "" {
		tokens = append(tokens, "f/"+v)
	}
	if v := m[KeyExposureTime]; v != "" {
		tokens = append(tokens, FormatShutter(v))
	}
	if v := firstNonEmpty(m[KeyISO], m[KeyISOSpeedRatings]); v != "" {
		tokens = append(tokens, v)
	}
	return tokens
}

// Caption joins Tokens with single spaces, e.g. "85mm f/1.4 1/125 800".
// Empty metadata yields "".
func Caption(m Metadata) string {
	return strings.Join(Tokens(m), " ")
}

// FormatShutter renders an exposure time. Values of a second or more keep
// their decimal form with an "s" suffix; shorter ones become 1/N. Values
// that do not parse as a positive number are returned unchanged.
func FormatShutter(raw string) string {
	v, ok := ParseExposure(raw)
	if !ok {
		return raw
	}
	if v >= 1 {
		return strconv.FormatFloat(v, 'f', -1, 64) + "s"
	}
	return "1/" + strconv.FormatFloat(math.Round(1/v), 'f', -1, 64)
}

// ParseExposure parses a decimal ("0.008") or fractional ("1/125")
// exposure time in seconds.
func ParseExposure(raw string) (float64, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "s")
	var v float64
	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		v = n / d
	} else {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// TruncateName shortens names longer than 20 characters to their first 17
// characters plus "...". Only the caption text changes.
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) <= MaxNameLength {
		return name
	}
	return string(r[:TruncatedName]) + ellipsisMarker
}

// CameraLine describes the camera body and lens, e.g.
// "Canon EOS R5, RF 85mm F1.2". A model that already names the maker is not
// prefixed twice.
func CameraLine(m Metadata) string {
	body := strings.TrimSpace(m[KeyModel])
	if maker := strings.TrimSpace(m[KeyMake]); maker != "" &&
		!strings.HasPrefix(strings.ToLower(body), strings.ToLower(maker)) {
		body = strings.TrimSpace(maker + " " + body)
	}

	var parts []string
	if body != "" {
		parts = append(parts, body)
	}
	if lens := firstNonEmpty(m[KeyLensModel], m[KeyLensMake]); lens != "" {
		parts = append(parts, lens)
	}
	return strings.Join(parts, ", ")
}
