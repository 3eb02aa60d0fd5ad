// Package sdl hosts the bridge in an SDL2 window: fullscreen and cursor
// handling for immersive mode, controller discovery, a native message box
// menu and the event pump that feeds lifecycle changes to a Screen.
package sdl

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
)

type Window struct {
	Window *sdl.Window
	Title  string
}

// Init starts the SDL subsystems the bridge needs. Call it from the main
// goroutine with the OS thread locked.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialise SDL: %w", err)
	}
	return nil
}

func Quit() {
	sdl.Quit()
}

// NewWindow opens a window covering the current display. In dev mode it
// opens a borderless window sized by WINDOW_WIDTH and WINDOW_HEIGHT.
func NewWindow(title string) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	x, y := int32(0), int32(0)
	width, height := displayMode.W, displayMode.H

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envDimension("WINDOW_WIDTH", devWindowWidth)
		height = envDimension("WINDOW_HEIGHT", devWindowHeight)
	}

	var windowFlags uint32 = sdl.WINDOW_SHOWN
	if constants.IsDevMode() {
		windowFlags |= sdl.WINDOW_BORDERLESS
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	return &Window{Window: w, Title: title}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) Close() {
	if w.Window != nil {
		w.Window.Destroy()
	}
}
