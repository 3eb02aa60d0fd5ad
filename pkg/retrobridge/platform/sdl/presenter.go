package sdl

import (
	"context"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/retrobridge/pkg/retrobridge"
	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
)

// MessageBoxPresenter shows the menu as a native SDL message box with one
// button per item. The Cancel item answers the escape key.
type MessageBoxPresenter struct {
	Window *Window
}

func (p MessageBoxPresenter) Present(ctx context.Context, menu *retrobridge.Menu) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, retrobridge.ErrCancelled
	}

	items := menu.Items()
	buttons := make([]sdl.MessageBoxButtonData, 0, len(items))
	for _, item := range items {
		var flags uint32
		if item.ID == constants.MenuCancelID {
			flags = sdl.MESSAGEBOX_BUTTON_ESCAPEKEY_DEFAULT
		}
		buttons = append(buttons, sdl.MessageBoxButtonData{
			Flags:    flags,
			ButtonID: int32(item.ID),
			Text:     item.Label,
		})
	}

	data := &sdl.MessageBoxData{
		Flags:      sdl.MESSAGEBOX_INFORMATION,
		Title:      menu.Title,
		Message:    menu.Title,
		NumButtons: int32(len(buttons)),
		Buttons:    buttons,
	}
	if p.Window != nil {
		data.Window = p.Window.Window
	}

	id, err := sdl.ShowMessageBox(data)
	if err != nil {
		return 0, fmt.Errorf("failed to show menu: %w", err)
	}
	if id < 0 {
		return 0, retrobridge.ErrCancelled
	}
	return int(id), nil
}
