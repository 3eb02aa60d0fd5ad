package retrobridge

import "github.com/pawndev/retrobridge/pkg/retrobridge/internal"

// ControllerProbe reports whether physical game controllers are attached.
type ControllerProbe interface {
	HasGamepads() bool
}

// ProbeFunc adapts a plain function to ControllerProbe.
type ProbeFunc func() bool

func (f ProbeFunc) HasGamepads() bool {
	return f()
}

// HasPhysicalControllers asks probe for attached controllers. A missing or
// failing probe counts as "no controllers", which keeps touch controls
// reachable.
func HasPhysicalControllers(probe ControllerProbe) (present bool) {
	if probe == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			internal.GetInternalLogger().Debug("Controller probe unavailable", "panic", r)
			present = false
		}
	}()

	return probe.HasGamepads()
}

// AnyProbe reports controllers when at least one of its probes does.
type AnyProbe []ControllerProbe

func (a AnyProbe) HasGamepads() bool {
	for _, probe := range a {
		if HasPhysicalControllers(probe) {
			return true
		}
	}
	return false
}
