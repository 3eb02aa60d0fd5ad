package retrobridge

import (
	"log/slog"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

// CommandSink is the one-way channel into the emulation core. code is the
// command's ordinal. ForwardCommand must not block on the core and reports
// nothing back.
type CommandSink interface {
	ForwardCommand(code int)
}

// SinkFunc adapts a plain function to CommandSink.
type SinkFunc func(code int)

func (f SinkFunc) ForwardCommand(code int) {
	f(code)
}

// Dispatcher turns menu selections into core commands.
type Dispatcher struct {
	sink   CommandSink
	logger *slog.Logger
}

func NewDispatcher(sink CommandSink) *Dispatcher {
	return &Dispatcher{
		sink:   sink,
		logger: internal.GetInternalLogger(),
	}
}

// OnMenuSelection handles the menu item id. It returns false for ids the
// bridge does not own so the host can apply its default handling.
func (d *Dispatcher) OnMenuSelection(id int) bool {
	action, ok := constants.LookupMenuAction(id)
	if !ok {
		d.logger.Debug("Menu item not owned by bridge", "id", id)
		return false
	}

	if action.Cancel {
		return true
	}

	d.Forward(action.Command)
	return true
}

// Forward sends cmd to the core without waiting for it.
func (d *Dispatcher) Forward(cmd constants.Command) {
	if d.sink == nil {
		d.logger.Warn("No core attached, dropping command", "command", cmd.String())
		return
	}

	d.logger.Debug("Forwarding command", "command", cmd.String(), "code", cmd.Code())
	d.sink.ForwardCommand(cmd.Code())
}
