package retrobridge

import "errors"

var (
	ErrCancelled = errors.New("menu dismissed by user")
)

// MenuState is the state of the session with respect to the overlay menu.
type MenuState int32

const (
	StateRunning MenuState = iota
	StateMenuOpen
)

func (s MenuState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateMenuOpen:
		return "MenuOpen"
	default:
		return "Unknown"
	}
}
