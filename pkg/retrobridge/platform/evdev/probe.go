// Package evdev reads Linux input devices directly. It finds gamepads for
// the immersive-mode probe and watches a device for the menu button on
// handhelds where the hotkey never reaches the window.
package evdev

import (
	"slices"

	"github.com/holoplot/go-evdev"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

// gamepadButtons are the key codes only gamepads report.
var gamepadButtons = []evdev.EvCode{
	evdev.BTN_SOUTH,
	evdev.BTN_EAST,
	evdev.BTN_START,
	evdev.BTN_SELECT,
	evdev.BTN_MODE,
}

// Probe reports whether any /dev/input device looks like a gamepad.
type Probe struct {
	// Skip lists device names that should not count, such as the built-in
	// controls of a handheld.
	Skip []string
}

func (p Probe) HasGamepads() bool {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		internal.GetInternalLogger().Debug("Unable to list input devices", "error", err)
		return false
	}

	for _, path := range paths {
		if slices.Contains(p.Skip, path.Name) {
			continue
		}
		if p.deviceIsGamepad(path.Path) {
			internal.GetInternalLogger().Debug("Found gamepad", "name", path.Name, "path", path.Path)
			return true
		}
	}
	return false
}

func (p Probe) deviceIsGamepad(path string) bool {
	dev, err := evdev.Open(path)
	if err != nil {
		internal.GetInternalLogger().Debug("Unable to open input device", "path", path, "error", err)
		return false
	}
	defer dev.Close()

	return isGamepad(dev.CapableEvents(evdev.EV_KEY))
}

func isGamepad(keys []evdev.EvCode) bool {
	for _, code := range keys {
		if slices.Contains(gamepadButtons, code) {
			return true
		}
	}
	return false
}
