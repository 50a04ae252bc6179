package ui

import (
	"context"
	"fmt"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/webkit"
)

// overlayDim implements the dim surface as the fixed #dim-overlay element in
// the UI page. Opacity is applied as an rgba background so the overlay stays
// click-through while darkening everything beneath it.
type overlayDim struct {
	webview *webkit.WebView
}

// NewOverlayDim creates a DimSurface over the UI page's dim overlay.
func NewOverlayDim(wv *webkit.WebView) port.DimSurface {
	return &overlayDim{webview: wv}
}

func (d *overlayDim) SetOpacity(ctx context.Context, opacity float64) {
	script := fmt.Sprintf(
		`(function(){var o=document.getElementById("dim-overlay");`+
			`if(o){o.style.background="rgba(0, 0, 0, %.3f)";}})();`,
		opacity,
	)
	d.webview.RunJavaScript(ctx, script)
}
