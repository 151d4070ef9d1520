package compose

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/kozaktomas/photo-print/internal/exif"
	"github.com/kozaktomas/photo-print/internal/layout"
)

// PrintResult is a rendered single print.
type PrintResult struct {
	Canvas       *image.RGBA
	Format       layout.Format
	SafeArea     layout.SafeAreaSpec
	ImageRegion  layout.DrawRect // canvas minus the image margin on every side
	ImageRect    layout.DrawRect // fitted photo inside ImageRegion
	Caption      []string        // lines in drawing order
	EffectiveDPI float64
	Warnings     []layout.ValidationWarning
}

// RenderPrint renders photo onto the canvas of a catalog format. Unknown
// formats fall back to 4x6.
func (e *Engine) RenderPrint(ctx context.Context, photo Photo, format layout.Format, opts Options) (*PrintResult, error) {
	if !e.catalog.Known(format) {
		format = layout.DefaultFormat
	}
	res, err := e.RenderPrintOn(ctx, photo, e.catalog.GetSize(format), opts)
	if err != nil {
		return nil, err
	}
	res.Format = format
	return res, nil
}

// RenderPrintOn renders photo onto a canvas of an explicit size, e.g. a
// catalog size the caller has rotated to portrait.
func (e *Engine) RenderPrintOn(ctx context.Context, photo Photo, size layout.Size, opts Options) (*PrintResult, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, size.Width, size.Height)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg := layout.ConfigFor(opts.Mode)
	safe := cfg.SafeArea(size.Width, opts.TextSizeMultiplier)
	m := float64(safe.ImageMargin)
	region := layout.DrawRect{
		X:      m,
		Y:      m,
		Width:  float64(size.Width) - 2*m,
		Height: float64(size.Height) - 2*m,
	}
	if region.Empty() {
		return nil, fmt.Errorf("%w: %dx%d leaves no room inside a %dpx margin",
			ErrInvalidCanvas, size.Width, size.Height, safe.ImageMargin)
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	img, err := loadAsset(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetUnavailable, photo.Name, err)
	}

	b := img.Bounds()
	rect := layout.FitImage(b.Dx(), b.Dy(), region)
	dpi := layout.EffectiveDPI(b.Dx(), rect.Width)

	canvas := newCanvas(size)
	drawPhoto(canvas, img, rect)

	caption, err := drawPrintCaption(canvas, fonts, photo, safe, opts)
	if err != nil {
		return nil, err
	}

	warnings := layout.ValidatePlacements([]layout.Placement{{
		Index:        0,
		Cell:         region,
		Image:        rect,
		EffectiveDPI: dpi,
	}}, size)
	for _, w := range warnings {
		log.Printf("WARNING: print %s: %s", sanitizeForLog(photo.Name), w.Message)
	}

	return &PrintResult{
		Canvas:       canvas,
		SafeArea:     safe,
		ImageRegion:  region,
		ImageRect:    rect,
		Caption:      caption,
		EffectiveDPI: dpi,
		Warnings:     warnings,
	}, nil
}

// drawPrintCaption writes the caption into the band between the text pad
// and the photo: filename top left, settings bottom left, camera bottom
// right. The filename is drawn at full emphasis, the metadata muted.
func drawPrintCaption(canvas *image.RGBA, fonts fontSet, photo Photo, safe layout.SafeAreaSpec, opts Options) ([]string, error) {
	if !opts.showCaptions() {
		return nil, nil
	}
	face, err := newFace(fonts.regular, safe.FontSizePx)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()
	pad := safe.TextPad
	var lines []string

	if opts.ShowFilenames && photo.Name != "" {
		name := exif.ASCII(exif.TruncateName(photo.Name))
		drawText(canvas, name, face, colorCaption, pad, pad+ascent(face), anchorLeft)
		lines = append(lines, name)
	}

	if opts.ShowExif {
		baseline := h - pad - descent(face)
		if settings := exif.ASCII(exif.Caption(photo.Metadata)); settings != "" {
			drawText(canvas, settings, face, colorMetadata, pad, baseline, anchorLeft)
			lines = append(lines, settings)
		}
		if camera := exif.ASCII(exif.CameraLine(photo.Metadata)); camera != "" {
			drawText(canvas, camera, face, colorMetadata, w-pad, baseline, anchorRight)
			lines = append(lines, camera)
		}
	}
	return lines, nil
}
