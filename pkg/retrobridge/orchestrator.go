package retrobridge

import (
	"go.uber.org/atomic"
)

// Session is the running emulation hosted by the screen.
type Session interface {
	Pause()
	Resume()
}

// Orchestrator keeps the session paused exactly while the menu is open.
// Transitions run on the UI thread; State may be read from anywhere.
type Orchestrator struct {
	session Session
	state   *atomic.Int32

	// OnResumed runs after every MenuOpen -> Running transition.
	OnResumed func()
}

func NewOrchestrator(session Session) *Orchestrator {
	return &Orchestrator{
		session: session,
		state:   atomic.NewInt32(int32(StateRunning)),
	}
}

func (o *Orchestrator) State() MenuState {
	return MenuState(o.state.Load())
}

// Paused reports whether the menu currently holds the session paused.
func (o *Orchestrator) Paused() bool {
	return o.State() == StateMenuOpen
}

// MenuOpened pauses the session. It returns false, doing nothing, when the
// menu was already open.
func (o *Orchestrator) MenuOpened() bool {
	if !o.state.CompareAndSwap(int32(StateRunning), int32(StateMenuOpen)) {
		return false
	}

	if o.session != nil {
		o.session.Pause()
	}
	return true
}

// MenuClosed resumes the session and runs OnResumed. It returns false,
// doing nothing, when the menu was not open.
func (o *Orchestrator) MenuClosed() bool {
	if !o.state.CompareAndSwap(int32(StateMenuOpen), int32(StateRunning)) {
		return false
	}

	if o.session != nil {
		o.session.Resume()
	}
	if o.OnResumed != nil {
		o.OnResumed()
	}
	return true
}
