package compose

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Palette.
var (
	colorBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorTitle      = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	colorMuted      = color.RGBA{0x6b, 0x72, 0x80, 0xff}
	colorCaption    = color.RGBA{0x37, 0x41, 0x51, 0xff}
	colorMetadata   = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	colorBorder     = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
)

type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// Parsed fonts are safe for concurrent use; faces are not, so every
// goroutine makes its own.
var loadFonts = sync.OnceValues(func() (fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return fontSet{regular: regular, bold: bold}, nil
})

// newFace returns a face whose em size is sizePx canvas pixels.
func newFace(f *opentype.Font, sizePx int) (font.Face, error) {
	if sizePx < 1 {
		sizePx = 1
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %dpx font face: %w", sizePx, err)
	}
	return face, nil
}

type anchor int

const (
	anchorLeft anchor = iota
	anchorRight
)

// drawText draws s with its baseline at y. For anchorRight, x is the right
// edge of the text.
func drawText(dst draw.Image, s string, face font.Face, c color.Color, x, y int, a anchor) {
	if s == "" {
		return
	}
	if a == anchorRight {
		x -= font.MeasureString(face, s).Ceil()
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

func descent(face font.Face) int {
	return face.Metrics().Descent.Ceil()
}
