package layout

import (
	"image"
	"math"
)

// DrawRect is a rectangle in canvas pixels. X/Y is the top-left corner.
type DrawRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether the rect has no area.
func (r DrawRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset returns the rect translated by (dx, dy).
func (r DrawRect) Offset(dx, dy float64) DrawRect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks the rect by d on every side.
func (r DrawRect) Inset(d float64) DrawRect {
	return DrawRect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Contains reports whether o lies within r, allowing eps of float slack.
func (r DrawRect) Contains(o DrawRect, eps float64) bool {
	return o.X >= r.X-eps && o.Y >= r.Y-eps &&
		o.X+o.Width <= r.X+r.Width+eps &&
		o.Y+o.Height <= r.Y+r.Height+eps
}

// Inner snaps the rect to whole pixels without growing it.
func (r DrawRect) Inner() image.Rectangle {
	return image.Rect(
		int(math.Ceil(r.X)), int(math.Ceil(r.Y)),
		int(math.Floor(r.X+r.Width)), int(math.Floor(r.Y+r.Height)),
	)
}

// Pixels snaps both corners down. Rects separated by a non-negative gap
// never share a pixel after snapping.
func (r DrawRect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Floor(r.X+r.Width)), int(math.Floor(r.Y+r.Height)),
	)
}

// Fit scales an image of the given aspect ratio (width/height) to the
// largest size that fits a cellWidth x cellHeight cell, centered, without
// cropping. The result is relative to the cell's top-left corner.
func Fit(srcAspect, cellWidth, cellHeight float64) DrawRect {
	if srcAspect <= 0 || cellWidth <= 0 || cellHeight <= 0 ||
		math.IsNaN(srcAspect) || math.IsInf(srcAspect, 0) {
		return DrawRect{}
	}

	cellAspect := cellWidth / cellHeight
	if srcAspect > cellAspect {
		// Wider than the cell: width-constrained.
		h := math.Min(cellWidth/srcAspect, cellHeight)
		return DrawRect{
			X:      0,
			Y:      (cellHeight - h) / 2,
			Width:  cellWidth,
			Height: h,
		}
	}

	w := math.Min(cellHeight*srcAspect, cellWidth)
	return DrawRect{
		X:      (cellWidth - w) / 2,
		Y:      0,
		Width:  w,
		Height: cellHeight,
	}
}

// FitImage fits an image with pixel dimensions w x h into cell, returning
// a rect in the cell's coordinate space.
func FitImage(w, h int, cell DrawRect) DrawRect {
	if w <= 0 || h <= 0 {
		return DrawRect{}
	}
	return Fit(float64(w)/float64(h), cell.Width, cell.Height).Offset(cell.X, cell.Y)
}

// EffectiveDPI is the print resolution of srcPx source pixels drawn across
// drawPx canvas pixels, rounded to one decimal.
func EffectiveDPI(srcPx int, drawPx float64) float64 {
	if drawPx <= 0 {
		return 0
	}
	dpi := float64(srcPx) / drawPx * DPI
	return math.Round(dpi*10) / 10
}

// CellRects divides area into plan.Cols x plan.Rows equal cells separated
// by spacing, in row-major order.
func CellRects(area DrawRect, plan GridPlan, spacing float64) []DrawRect {
	if plan.Cols <= 0 || plan.Rows <= 0 {
		return nil
	}
	cellW := (area.Width - spacing*float64(plan.Cols-1)) / float64(plan.Cols)
	cellH := (area.Height - spacing*float64(plan.Rows-1)) / float64(plan.Rows)

	cells := make([]DrawRect, 0, plan.Capacity())
	for row := range plan.Rows {
		for col := range plan.Cols {
			cells = append(cells, DrawRect{
				X:      area.X + float64(col)*(cellW+spacing),
				Y:      area.Y + float64(row)*(cellH+spacing),
				Width:  cellW,
				Height: cellH,
			})
		}
	}
	return cells
}
