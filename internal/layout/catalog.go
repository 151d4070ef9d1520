package layout

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed formats.yaml
var formatsYAML []byte

// DPI is the raster resolution every catalog size is expressed in.
const DPI = 300

// Format is a named print format key such as "4x6" or "contact".
type Format string

const (
	Format4x6     Format = "4x6"
	Format5x7     Format = "5x7"
	Format8x10    Format = "8x10"
	Format8x12    Format = "8x12"
	Format11x14   Format = "11x14"
	FormatSquare  Format = "square"
	FormatContact Format = "contact"

	// DefaultFormat is used for any key the catalog does not know.
	DefaultFormat = Format4x6
)

// Size is a canvas size in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// FormatEntry pairs a format key with its canvas size.
type FormatEntry struct {
	Key  Format `json:"key"`
	Size Size   `json:"size"`
}

type catalogFile struct {
	Formats []struct {
		Key    string `yaml:"key"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"formats"`
}

// Catalog is the static table of print formats. It is never written after
// construction, so a single instance is shared by concurrent renders.
type Catalog struct {
	order []Format
	sizes map[Format]Size
}

var defaultCatalog = mustLoadCatalog(formatsYAML)

// DefaultCatalog returns the catalog built from the embedded format table.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func mustLoadCatalog(data []byte) *Catalog {
	c, err := parseCatalog(data)
	if err != nil {
		// Embedded file, so this only fails on a broken build.
		panic("failed to load embedded formats.yaml: " + err.Error())
	}
	return c
}

func parseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse format table: %w", err)
	}

	c := &Catalog{sizes: make(map[Format]Size, len(file.Formats))}
	for _, f := range file.Formats {
		key := Format(f.Key)
		size := Size{Width: f.Width, Height: f.Height}
		if !size.Valid() {
			return nil, fmt.Errorf("format %q has non-positive size %dx%d", f.Key, f.Width, f.Height)
		}
		if _, dup := c.sizes[key]; dup {
			return nil, fmt.Errorf("format %q defined twice", f.Key)
		}
		c.order = append(c.order, key)
		c.sizes[key] = size
	}
	if _, ok := c.sizes[DefaultFormat]; !ok {
		return nil, fmt.Errorf("format table is missing the default %q entry", DefaultFormat)
	}
	return c, nil
}

// GetSize returns the canvas size for a format, falling back to 4x6 for
// unknown keys.
func (c *Catalog) GetSize(format Format) Size {
	if s, ok := c.sizes[format]; ok {
		return s
	}
	return c.sizes[DefaultFormat]
}

// Known reports whether the key is defined in the catalog.
func (c *Catalog) Known(format Format) bool {
	_, ok := c.sizes[format]
	return ok
}

// AspectRatio returns width/height of the format.
func (c *Catalog) AspectRatio(format Format) float64 {
	s := c.GetSize(format)
	return float64(s.Width) / float64(s.Height)
}

// IsSquare reports whether the format's width equals its height.
func (c *Catalog) IsSquare(format Format) bool {
	s := c.GetSize(format)
	return s.Width == s.Height
}

// ListFormats returns every entry in definition order. The slice and its
// elements are fresh copies.
func (c *Catalog) ListFormats() []FormatEntry {
	out := make([]FormatEntry, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, FormatEntry{Key: key, Size: c.sizes[key]})
	}
	return out
}

// GetSize looks up a format in the default catalog.
func GetSize(format Format) Size {
	return defaultCatalog.GetSize(format)
}

// AspectRatio looks up a format's aspect ratio in the default catalog.
func AspectRatio(format Format) float64 {
	return defaultCatalog.AspectRatio(format)
}

// IsSquare reports whether a default-catalog format is square.
func IsSquare(format Format) bool {
	return defaultCatalog.IsSquare(format)
}

// ListFormats lists the default catalog.
func ListFormats() []FormatEntry {
	return defaultCatalog.ListFormats()
}
