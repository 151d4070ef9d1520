package compose

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/kozaktomas/photo-print/internal/layout"
)

func newCanvas(size layout.Size) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	return canvas
}

// drawPhoto scales src into rect. Nothing outside rect ∩ dst.Bounds() is
// written.
func drawPhoto(dst draw.Image, src image.Image, rect layout.DrawRect) image.Rectangle {
	dr := rect.Inner().Intersect(dst.Bounds())
	if dr.Empty() {
		return dr
	}
	draw.BiLinear.Scale(dst, dr, src, src.Bounds(), draw.Over, nil)
	return dr
}

// strokeRect draws a one pixel outline just inside r.
func strokeRect(dst draw.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	u := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), u, image.Point{}, draw.Src)
	}
}
