package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/retrobridge/pkg/retrobridge"
	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

// Immersive hides window chrome and the cursor when the layout is stable,
// and restores them when touch or pointer input must stay reachable.
type Immersive struct{}

func (Immersive) SetImmersiveMode(window retrobridge.Window, stable bool) {
	w, ok := window.(*Window)
	if !ok || w == nil || w.Window == nil {
		internal.GetInternalLogger().Debug("Immersive mode skipped, no SDL window", "window", window)
		return
	}

	var flags uint32
	cursor := sdl.ENABLE
	if stable {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
		cursor = sdl.DISABLE
	}

	if err := w.Window.SetFullscreen(flags); err != nil {
		internal.GetInternalLogger().Error("Failed to set fullscreen", "stable", stable, "error", err)
	}
	if _, err := sdl.ShowCursor(cursor); err != nil {
		internal.GetInternalLogger().Error("Failed to toggle cursor", "stable", stable, "error", err)
	}

	internal.GetInternalLogger().Debug("Immersive mode applied", "stable", stable)
}
