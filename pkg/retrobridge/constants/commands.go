package constants

import "strings"

// Command is a control request sent to the emulation core. The integer
// value of a Command is its wire code: the core reads commands by ordinal,
// so the declaration order below must never change without a matching
// change on the core side.
type Command int

const (
	CommandQuit Command = iota
	CommandReset
	CommandLoadState
	CommandSaveState
	CommandSaveSlotPlus
	CommandSaveSlotMinus
	CommandSwapDisk

	commandCount
)

var commandNames = [commandCount]string{
	CommandQuit:          "QUIT",
	CommandReset:         "RESET",
	CommandLoadState:     "LOAD_STATE",
	CommandSaveState:     "SAVE_STATE",
	CommandSaveSlotPlus:  "SAVE_SLOT_PLUS",
	CommandSaveSlotMinus: "SAVE_SLOT_MINUS",
	CommandSwapDisk:      "SWAP_DISK",
}

// Code returns the value forwarded to the core for this command.
func (c Command) Code() int {
	return int(c)
}

func (c Command) Valid() bool {
	return c >= CommandQuit && c < commandCount
}

func (c Command) String() string {
	if !c.Valid() {
		return "UNKNOWN"
	}
	return commandNames[c]
}

// Commands returns every command in declaration (wire) order.
func Commands() []Command {
	all := make([]Command, 0, commandCount)
	for c := CommandQuit; c < commandCount; c++ {
		all = append(all, c)
	}
	return all
}

// ParseCommand looks a command up by its symbolic name, ignoring case.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name {
			return Command(c), true
		}
	}
	return 0, false
}
