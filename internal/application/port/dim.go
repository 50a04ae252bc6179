package port

import "context"

// DimSurface is a full-viewport overlay whose opacity increases as the
// session elapses.
type DimSurface interface {
	// SetOpacity applies an overlay opacity in [0.0, 0.9].
	SetOpacity(ctx context.Context, opacity float64)
}
