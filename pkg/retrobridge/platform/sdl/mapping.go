package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

// MenuKeysFromNames resolves SDL key names such as "Escape" or "Menu".
// Unknown names are logged and skipped.
func MenuKeysFromNames(names []string) []sdl.Keycode {
	keys := make([]sdl.Keycode, 0, len(names))
	for _, name := range names {
		code := sdl.GetKeyFromName(name)
		if code == sdl.K_UNKNOWN {
			internal.GetInternalLogger().Warn("Unknown menu key", "name", name)
			continue
		}
		keys = append(keys, code)
	}
	return keys
}

// MenuButtonsFromNames resolves controller button names as SDL spells them,
// such as "guide" or "back".
func MenuButtonsFromNames(names []string) []sdl.GameControllerButton {
	buttons := make([]sdl.GameControllerButton, 0, len(names))
	for _, name := range names {
		button := sdl.GameControllerGetButtonFromString(name)
		if button == sdl.CONTROLLER_BUTTON_INVALID {
			internal.GetInternalLogger().Warn("Unknown menu button", "name", name)
			continue
		}
		buttons = append(buttons, button)
	}
	return buttons
}
