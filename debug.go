package retrospector

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// globalDebug gates stderr diagnostics for the whole package. Retrospector
// is single-threaded, so a plain bool suffices.
var globalDebug bool

// SetDebugMode enables or disables debug diagnostics. When enabled,
// rejected draws and setup steps are logged to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[retrospector] "+format+"\n", args...)
}

// DrawFPS draws the current frames-per-second and ticks-per-second readout
// at the given location. Intended for development overlays; call it from
// App.Render after your own drawing.
func DrawFPS(r *Renderer, at Location) {
	r.DrawText(fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), at)
}
