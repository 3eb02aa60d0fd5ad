package sdl

import (
	"context"
	"slices"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

// Lifecycle is the part of a Screen the event pump drives.
type Lifecycle interface {
	OnResume()
	OnPause()
	SetImmersiveMode()
	ShowMenu()
}

// TaskRunner drains work posted to the UI thread.
type TaskRunner interface {
	RunPending() int
}

type HostOptions struct {
	Screen      Lifecycle
	Tasks       TaskRunner
	Controllers *Controllers

	// MenuKeys and MenuButtons open the overlay menu. Defaults are Escape,
	// the Menu key and the controller Guide button.
	MenuKeys    []sdl.Keycode
	MenuButtons []sdl.GameControllerButton
}

// Host pumps SDL events on the thread that owns the window and turns them
// into lifecycle calls.
type Host struct {
	screen      Lifecycle
	tasks       TaskRunner
	controllers *Controllers
	menuKeys    []sdl.Keycode
	menuButtons []sdl.GameControllerButton
	running     bool
}

func NewHost(options HostOptions) *Host {
	h := &Host{
		screen:      options.Screen,
		tasks:       options.Tasks,
		controllers: options.Controllers,
		menuKeys:    options.MenuKeys,
		menuButtons: options.MenuButtons,
	}
	if len(h.menuKeys) == 0 {
		h.menuKeys = []sdl.Keycode{sdl.K_ESCAPE, sdl.K_MENU}
	}
	if len(h.menuButtons) == 0 {
		h.menuButtons = []sdl.GameControllerButton{sdl.CONTROLLER_BUTTON_GUIDE}
	}
	return h
}

// Run pumps events until SDL quits or ctx is done. It must be called on
// the thread that created the window.
func (h *Host) Run(ctx context.Context) error {
	h.running = true

	for h.running {
		if err := ctx.Err(); err != nil {
			return nil
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			h.HandleEvent(event)
		}

		if h.tasks != nil {
			h.tasks.RunPending()
		}

		sdl.Delay(uint32(constants.DefaultFrameGap.Milliseconds()))
	}

	return nil
}

func (h *Host) Running() bool {
	return h.running
}

// HandleEvent applies a single SDL event.
func (h *Host) HandleEvent(event sdl.Event) {
	logger := internal.GetInternalLogger()

	switch e := event.(type) {
	case *sdl.QuitEvent:
		h.running = false
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			logger.Debug("Window focused")
			h.screen.OnResume()
		case sdl.WINDOWEVENT_FOCUS_LOST:
			logger.Debug("Window lost focus")
			h.screen.OnPause()
		}
	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			if h.controllers != nil {
				h.controllers.Add(int(e.Which))
			}
			h.screen.SetImmersiveMode()
		case sdl.CONTROLLERDEVICEREMOVED:
			if h.controllers != nil {
				h.controllers.Remove(e.Which)
			}
			h.screen.SetImmersiveMode()
		}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 && slices.Contains(h.menuKeys, e.Keysym.Sym) {
			logger.Debug("Menu key pressed", "key", sdl.GetKeyName(e.Keysym.Sym))
			h.screen.ShowMenu()
		}
	case *sdl.ControllerButtonEvent:
		if e.Type == sdl.CONTROLLERBUTTONDOWN && slices.Contains(h.menuButtons, sdl.GameControllerButton(e.Button)) {
			logger.Debug("Menu button pressed", "button", e.Button)
			h.screen.ShowMenu()
		}
	}
}
