package retrobridge

import (
	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
	"github.com/pawndev/retrobridge/pkg/retrobridge/i18n"
)

var (
	labelCancel   = &i18n.Message{ID: "menu_cancel", Other: "Cancel"}
	labelSave     = &i18n.Message{ID: "menu_save_state", Other: "Save State"}
	labelLoad     = &i18n.Message{ID: "menu_load_state", Other: "Load State"}
	labelNextSlot = &i18n.Message{ID: "menu_next_save_slot", Other: "Next save slot"}
	labelPrevSlot = &i18n.Message{ID: "menu_prev_save_slot", Other: "Prev save slot"}
	labelSwapDisk = &i18n.Message{ID: "menu_swap_disk", Other: "Swap Disk"}
	labelReset    = &i18n.Message{ID: "menu_reset", Other: "Reset"}
	labelQuit     = &i18n.Message{ID: "menu_quit", Other: "Quit"}
	labelTitle    = &i18n.Message{ID: "menu_title", Other: "Paused"}
)

func newItem(id int, label *i18n.Message) MenuItem {
	action, _ := constants.LookupMenuAction(id)
	return MenuItem{
		ID:     id,
		Label:  i18n.Localize(label, nil),
		Action: action,
	}
}

// BuildMenu fills ctx with the in-session menu. The order is fixed; Swap
// Disk only appears when the running content declared more than one disk.
// It always returns true: the menu should be shown.
func BuildMenu(ctx MenuContext, multiDisk bool) bool {
	ctx.Add(newItem(constants.MenuCancelID, labelCancel))
	ctx.Add(newItem(constants.MenuSaveID, labelSave))
	ctx.Add(newItem(constants.MenuLoadID, labelLoad))
	ctx.Add(newItem(constants.MenuSaveSlotPlusID, labelNextSlot))
	ctx.Add(newItem(constants.MenuSaveSlotMinusID, labelPrevSlot))
	if multiDisk {
		ctx.Add(newItem(constants.MenuSwapID, labelSwapDisk))
	}
	ctx.Add(newItem(constants.MenuResetID, labelReset))
	ctx.Add(newItem(constants.MenuQuitID, labelQuit))

	return true
}

// MenuTitle is the heading presenters show above the items.
func MenuTitle() string {
	return i18n.Localize(labelTitle, nil)
}

// NewMenu builds a titled menu in one call.
func NewMenu(multiDisk bool) *Menu {
	menu := &Menu{Title: MenuTitle()}
	BuildMenu(menu, multiDisk)
	return menu
}
