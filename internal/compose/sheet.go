package compose

import (
	"context"
	"fmt"
	"image"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kozaktomas/photo-print/internal/exif"
	"github.com/kozaktomas/photo-print/internal/layout"
)

// SheetResult is a rendered contact sheet.
type SheetResult struct {
	Canvas    *image.RGBA
	Grid      layout.GridPlan
	Cells     []layout.DrawRect
	Title     string
	Date      string
	Placed    int            // photos drawn
	Skipped   int            // laid-out photos whose asset failed
	Truncated int            // photos beyond grid capacity, never laid out
	Outcomes  []PhotoOutcome // one per laid-out photo, in input order
	Failures  []PhotoOutcome
	Warnings  []layout.ValidationWarning
}

// SheetOutcome is delivered by StartContactSheet.
type SheetOutcome struct {
	Result *SheetResult
	Err    error
}

// HeaderHeight is the band above the grid that holds the title and date.
func HeaderHeight(fontSize int) int {
	return (fontSize + 2) * 2
}

// CaptionSpace is the height reserved under each photo for its caption.
func CaptionSpace(fontSize int) int {
	return fontSize * 3
}

// SheetTitle is the contact sheet heading for n photos.
func SheetTitle(n int) string {
	return fmt.Sprintf("CONTACT SHEET — %d IMAGES", n)
}

// StartContactSheet renders in the background. The channel receives
// exactly one outcome and is then closed.
func (e *Engine) StartContactSheet(ctx context.Context, photos []Photo, opts Options) <-chan SheetOutcome {
	ch := make(chan SheetOutcome, 1)
	go func() {
		defer close(ch)
		res, err := e.RenderContactSheet(ctx, photos, opts)
		ch <- SheetOutcome{Result: res, Err: err}
	}()
	return ch
}

// RenderContactSheet lays photos out on the contact canvas. Photos beyond
// the largest grid are dropped and counted in Truncated; the title still
// counts every photo supplied. A photo whose
// asset fails leaves its cell blank; the rest of the sheet is still drawn.
func (e *Engine) RenderContactSheet(ctx context.Context, photos []Photo, opts Options) (*SheetResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	size := e.catalog.GetSize(layout.FormatContact)
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, size.Width, size.Height)
	}

	margin := float64(layout.ConfigFor(opts.Mode).ContactSheetMargin(opts.Margin))
	header := float64(HeaderHeight(opts.FontSize))
	area := layout.DrawRect{
		X:      margin,
		Y:      margin + header,
		Width:  float64(size.Width) - 2*margin,
		Height: float64(size.Height) - 2*margin - header,
	}
	if area.Empty() {
		return nil, fmt.Errorf("%w: margin %.0fpx leaves no room for the grid", ErrInvalidOptions, margin)
	}

	grid := layout.PlanGrid(len(photos))
	cells := layout.CellRects(area, grid, float64(opts.Spacing))
	if err := checkCellGeometry(cells[0], opts); err != nil {
		return nil, err
	}
	count := min(len(photos), grid.Capacity())
	if dropped := len(photos) - count; dropped > 0 {
		log.Printf("WARNING: contact sheet holds %d photos, dropping %d", count, dropped)
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	canvas := newCanvas(size)
	title := SheetTitle(len(photos))
	date := strings.ToUpper(e.now().Format("Jan 2, 2006"))
	if err := drawHeader(canvas, fonts, title, date, int(margin), opts.FontSize); err != nil {
		return nil, err
	}

	outcomes := make([]PhotoOutcome, count)
	placements := make([]layout.Placement, count)

	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i := range count {
		g.Go(func() error {
			// Each task writes only inside its own cell.
			sub := canvas.SubImage(cells[i].Pixels()).(*image.RGBA)
			p, err := drawCell(ctx, sub, fonts, photos[i], cells[i], opts)
			out := PhotoOutcome{
				Index:   i,
				PhotoID: photos[i].ID,
				Name:    photos[i].Name,
				Placed:  err == nil,
				Err:     err,
			}
			if err != nil {
				log.Printf("WARNING: contact sheet photo %d (%s): %v", i, sanitizeForLog(photos[i].Name), err)
			} else {
				p.Index = i
				placements[i] = p
			}
			outcomes[i] = out
			if opts.OnPhoto != nil {
				opts.OnPhoto(out)
			}
			return nil
		})
	}
	_ = g.Wait() // tasks report through outcomes

	res := &SheetResult{
		Canvas:    canvas,
		Grid:      grid,
		Cells:     cells,
		Title:     title,
		Date:      date,
		Truncated: len(photos) - count,
		Outcomes:  outcomes,
	}
	var placed []layout.Placement
	for i, out := range outcomes {
		if out.Placed {
			res.Placed++
			placed = append(placed, placements[i])
			continue
		}
		res.Skipped++
		res.Failures = append(res.Failures, out)
	}
	res.Warnings = layout.ValidatePlacements(placed, size)
	for _, w := range res.Warnings {
		log.Printf("WARNING: contact sheet %s", w)
	}
	return res, nil
}

// checkCellGeometry rejects spacing or font sizes that leave a cell, or the
// image part of a cell, without area. All cells share one size.
func checkCellGeometry(cell layout.DrawRect, opts Options) error {
	if cell.Empty() {
		return fmt.Errorf("%w: spacing %dpx leaves %.1fx%.1fpx cells",
			ErrInvalidOptions, opts.Spacing, cell.Width, cell.Height)
	}
	if opts.showCaptions() && cell.Height-float64(CaptionSpace(opts.FontSize)) <= 0 {
		return fmt.Errorf("%w: font size %dpx leaves no image room in %.1fpx tall cells",
			ErrInvalidOptions, opts.FontSize, cell.Height)
	}
	return nil
}

func drawHeader(canvas *image.RGBA, fonts fontSet, title, date string, margin, fontSize int) error {
	bold, err := newFace(fonts.bold, fontSize+2)
	if err != nil {
		return err
	}
	defer bold.Close()
	regular, err := newFace(fonts.regular, fontSize)
	if err != nil {
		return err
	}
	defer regular.Close()

	baseline := margin + fontSize + 2
	drawText(canvas, title, bold, colorTitle, margin, baseline, anchorLeft)
	drawText(canvas, date, regular, colorMuted, canvas.Bounds().Dx()-margin, baseline, anchorRight)
	return nil
}

// drawCell loads one photo and draws it with its border and caption into
// dst, the cell's sub-image.
func drawCell(ctx context.Context, dst *image.RGBA, fonts fontSet, photo Photo, cell layout.DrawRect, opts Options) (layout.Placement, error) {
	img, err := loadAsset(ctx, photo)
	if err != nil {
		return layout.Placement{}, fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
	}

	region := cell
	if opts.showCaptions() {
		region.Height -= float64(CaptionSpace(opts.FontSize))
	}
	b := img.Bounds()
	rect := layout.FitImage(b.Dx(), b.Dy(), region)
	if drawn := drawPhoto(dst, img, rect); !drawn.Empty() {
		strokeRect(dst, drawn.Inset(-1).Intersect(dst.Bounds()), colorBorder)
	}

	if opts.showCaptions() {
		if err := drawCellCaption(dst, fonts, photo, region, opts); err != nil {
			return layout.Placement{}, err
		}
	}

	return layout.Placement{
		Cell:         region,
		Image:        rect,
		EffectiveDPI: layout.EffectiveDPI(b.Dx(), rect.Width),
	}, nil
}

// drawCellCaption writes the filename line, then the settings line in a
// smaller muted face, below the image region.
func drawCellCaption(dst *image.RGBA, fonts fontSet, photo Photo, region layout.DrawRect, opts Options) error {
	x := int(region.X)
	y := int(region.Y+region.Height) + opts.FontSize + 2

	if opts.ShowFilenames && photo.Name != "" {
		face, err := newFace(fonts.regular, opts.FontSize)
		if err != nil {
			return err
		}
		drawText(dst, exif.ASCII(exif.TruncateName(photo.Name)), face, colorCaption, x, y, anchorLeft)
		face.Close()
		y += opts.FontSize + 1
	}

	if opts.ShowExif {
		if line := exif.ASCII(exif.Caption(photo.Metadata)); line != "" {
			face, err := newFace(fonts.regular, opts.FontSize-2)
			if err != nil {
				return err
			}
			drawText(dst, line, face, colorMetadata, x, y, anchorLeft)
			face.Close()
		}
	}
	return nil
}
