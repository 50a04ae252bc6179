package timer

import (
	"context"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
)

// MaxDimOpacity caps the overlay so the screen never goes fully black.
const MaxDimOpacity = 0.9

// DimController maps session progress to overlay opacity and applies it to
// the display surface.
type DimController struct {
	surface port.DimSurface
}

// NewDimController creates a controller over the given surface.
// A nil surface makes Apply a no-op.
func NewDimController(surface port.DimSurface) *DimController {
	return &DimController{surface: surface}
}

// Opacity maps a progress fraction in [0,1] to an opacity in [0, MaxDimOpacity].
func (d *DimController) Opacity(progress float64) float64 {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	return progress * MaxDimOpacity
}

// Apply pushes the opacity for the given progress to the surface.
func (d *DimController) Apply(ctx context.Context, progress float64) {
	if d.surface == nil {
		return
	}
	d.surface.SetOpacity(ctx, d.Opacity(progress))
}

// Reset clears the overlay.
func (d *DimController) Reset(ctx context.Context) {
	d.Apply(ctx, 0)
}
