package exif

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ErrNoMetadata is returned when the input carries no readable EXIF block.
var ErrNoMetadata = errors.New("no EXIF metadata")

// Parser extracts metadata from encoded image bytes.
type Parser interface {
	Parse(r io.Reader) (Metadata, error)
}

// GoexifParser reads EXIF blocks from JPEG and TIFF data.
type GoexifParser struct{}

// NewParser returns the default parser.
func NewParser() Parser {
	return GoexifParser{}
}

// Parse decodes the EXIF block and returns every recognized tag it finds,
// normalized to plain decimal strings ("85", "1.4", "1/125", "800").
func (GoexifParser) Parse(r io.Reader) (Metadata, error) {
	x, err := goexif.Decode(r)
	if x == nil {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, ErrNoMetadata
		}
		return nil, fmt.Errorf("%w: %w", ErrNoMetadata, err)
	}
	if err != nil && goexif.IsCriticalError(err) {
		return nil, fmt.Errorf("failed to decode EXIF: %w", err)
	}

	m := make(Metadata)
	for _, key := range Keys {
		tag, err := x.Get(goexif.FieldName(key))
		if err != nil {
			continue
		}
		if v := tagValue(key, tag); v != "" {
			m[key] = v
		}
	}
	return m, nil
}

func tagValue(key string, tag *tiff.Tag) string {
	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.Trim(s, "\x00"))
	case tiff.RatVal:
		r, err := tag.Rat(0)
		if err != nil {
			return ""
		}
		if key == KeyExposureTime {
			return r.RatString()
		}
		f, _ := r.Float64()
		return formatDecimal(f)
	case tiff.IntVal:
		n, err := tag.Int(0)
		if err != nil {
			return ""
		}
		return strconv.Itoa(n)
	case tiff.FloatVal:
		f, err := tag.Float(0)
		if err != nil {
			return ""
		}
		return formatDecimal(f)
	default:
		return strings.Trim(tag.String(), `"`)
	}
}

// formatDecimal keeps one decimal place and drops trailing zeros.
func formatDecimal(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}
