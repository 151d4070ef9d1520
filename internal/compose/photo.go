package compose

import (
	"context"
	"errors"
	"image"
	"strings"

	"github.com/kozaktomas/photo-print/internal/exif"
)

// Asset resolves to a decoded bitmap. Load is the only call during a
// composition that may block.
type Asset interface {
	Load(ctx context.Context) (image.Image, error)
}

// AssetFunc adapts a function to Asset.
type AssetFunc func(ctx context.Context) (image.Image, error)

// Load calls f.
func (f AssetFunc) Load(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// ImageAsset is an already decoded image.
type ImageAsset struct {
	Image image.Image
}

// Load returns the wrapped image.
func (a ImageAsset) Load(ctx context.Context) (image.Image, error) {
	if a.Image == nil {
		return nil, errors.New("nil image")
	}
	return a.Image, nil
}

// Photo is a caller-owned photo. The engine reads it during a call and
// keeps no reference afterwards.
type Photo struct {
	ID       string
	Name     string
	Asset    Asset
	Metadata exif.Metadata
}

// PhotoOutcome reports what happened to one contact sheet photo.
type PhotoOutcome struct {
	Index   int    `json:"index"`
	PhotoID string `json:"photo_id"`
	Name    string `json:"name"`
	Placed  bool   `json:"placed"`
	Err     error  `json:"-"`
}

func loadAsset(ctx context.Context, p Photo) (image.Image, error) {
	if p.Asset == nil {
		return nil, errors.New("photo has no asset")
	}
	img, err := p.Asset.Load(ctx)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("decoded image is empty")
	}
	return img, nil
}

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}
