package layout

import (
	"fmt"

	"github.com/kozaktomas/photo-print/internal/constants"
)

// LowResDPIThreshold is the effective print resolution below which a
// placement is flagged.
const LowResDPIThreshold = constants.LowResDPIThreshold

// Severity levels for validation warnings.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Placement is one photo positioned on a canvas.
type Placement struct {
	Index        int
	Cell         DrawRect // region the photo is allowed to occupy
	Image        DrawRect // fitted draw rect
	EffectiveDPI float64
}

// ValidationWarning describes a layout issue found during validation.
type ValidationWarning struct {
	Index    int    `json:"index"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func (w ValidationWarning) String() string {
	return fmt.Sprintf("photo %d: %s (%s)", w.Index, w.Message, w.Severity)
}

// ValidatePlacements checks that every placement stays inside its cell and
// the canvas, and flags low effective resolution.
func ValidatePlacements(placements []Placement, canvas Size) []ValidationWarning {
	var warnings []ValidationWarning
	bounds := DrawRect{Width: float64(canvas.Width), Height: float64(canvas.Height)}
	const eps = 0.01

	for _, p := range placements {
		if p.Image.Empty() {
			warnings = append(warnings, ValidationWarning{
				Index:    p.Index,
				Message:  fmt.Sprintf("draw rect %.2fx%.2f has no area", p.Image.Width, p.Image.Height),
				Severity: SeverityError,
			})
			continue
		}

		if !bounds.Contains(p.Cell, eps) {
			warnings = append(warnings, ValidationWarning{
				Index: p.Index,
				Message: fmt.Sprintf("cell (%.2f, %.2f, %.2f, %.2f) extends past canvas %dx%d",
					p.Cell.X, p.Cell.Y, p.Cell.Width, p.Cell.Height, canvas.Width, canvas.Height),
				Severity: SeverityError,
			})
		}

		if p.Image.X < p.Cell.X-eps {
			warnings = append(warnings, ValidationWarning{
				Index:    p.Index,
				Message:  fmt.Sprintf("image left edge (%.2f) extends past cell left edge (%.2f)", p.Image.X, p.Cell.X),
				Severity: SeverityError,
			})
		}
		if p.Image.X+p.Image.Width > p.Cell.X+p.Cell.Width+eps {
			warnings = append(warnings, ValidationWarning{
				Index:    p.Index,
				Message:  fmt.Sprintf("image right edge (%.2f) extends past cell right edge (%.2f)", p.Image.X+p.Image.Width, p.Cell.X+p.Cell.Width),
				Severity: SeverityError,
			})
		}
		if p.Image.Y < p.Cell.Y-eps {
			warnings = append(warnings, ValidationWarning{
				Index:    p.Index,
				Message:  fmt.Sprintf("image top (%.2f) extends above cell top (%.2f)", p.Image.Y, p.Cell.Y),
				Severity: SeverityError,
			})
		}
		if p.Image.Y+p.Image.Height > p.Cell.Y+p.Cell.Height+eps {
			warnings = append(warnings, ValidationWarning{
				Index:    p.Index,
				Message:  fmt.Sprintf("image bottom (%.2f) extends below cell bottom (%.2f)", p.Image.Y+p.Image.Height, p.Cell.Y+p.Cell.Height),
				Severity: SeverityError,
			})
		}

		if p.EffectiveDPI > 0 && p.EffectiveDPI < LowResDPIThreshold {
			warnings = append(warnings, ValidationWarning{
				Index:    p.Index,
				Message:  fmt.Sprintf("effective DPI %.0f is below %d", p.EffectiveDPI, int(LowResDPIThreshold)),
				Severity: SeverityWarning,
			})
		}
	}
	return warnings
}
