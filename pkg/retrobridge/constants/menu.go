package constants

// MenuFirst is the first identifier available to application menu items.
// Identifiers below it are reserved by the platform.
const MenuFirst = 1

const (
	MenuCancelID = MenuFirst + iota
	MenuLoadID
	MenuSaveID
	MenuQuitID
	MenuResetID
	MenuSaveSlotPlusID
	MenuSaveSlotMinusID
	MenuSwapID
)

// MenuAction is what selecting a menu item does: either dismiss the menu
// (Cancel) or forward Command to the core.
type MenuAction struct {
	Command Command
	Cancel  bool
}

var menuTable = map[int]MenuAction{
	MenuCancelID:        {Cancel: true},
	MenuLoadID:          {Command: CommandLoadState},
	MenuSaveID:          {Command: CommandSaveState},
	MenuQuitID:          {Command: CommandQuit},
	MenuResetID:         {Command: CommandReset},
	MenuSaveSlotPlusID:  {Command: CommandSaveSlotPlus},
	MenuSaveSlotMinusID: {Command: CommandSaveSlotMinus},
	MenuSwapID:          {Command: CommandSwapDisk},
}

// LookupMenuAction returns the action bound to a menu item id. ok is false
// for ids this package does not own.
func LookupMenuAction(id int) (action MenuAction, ok bool) {
	action, ok = menuTable[id]
	return action, ok
}

// MenuIDs returns every known menu item id in ascending order.
func MenuIDs() []int {
	ids := make([]int, 0, len(menuTable))
	for id := MenuCancelID; id <= MenuSwapID; id++ {
		ids = append(ids, id)
	}
	return ids
}
