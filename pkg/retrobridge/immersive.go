package retrobridge

// Window is the opaque platform window handle passed to the immersive-mode
// service.
type Window = any

// ImmersiveService hides or shows system chrome for a window. stable is true
// when physical controllers are attached and no touch controls are needed.
// Implementations swallow their own failures.
type ImmersiveService interface {
	SetImmersiveMode(window Window, stable bool)
}

// UIThread accepts work that must run on the thread owning presentation
// state. Post must not block.
type UIThread interface {
	Post(fn func())
}

type ImmersiveController struct {
	service ImmersiveService
	probe   ControllerProbe
	window  Window
	thread  UIThread
}

func NewImmersiveController(service ImmersiveService, probe ControllerProbe, window Window, thread UIThread) *ImmersiveController {
	return &ImmersiveController{
		service: service,
		probe:   probe,
		window:  window,
		thread:  thread,
	}
}

// StableLayout reports whether immersive mode can be forced right now.
func (ic *ImmersiveController) StableLayout() bool {
	return HasPhysicalControllers(ic.probe)
}

// ApplyDeferred schedules immersive mode to run after the current UI pass.
// It never applies synchronously; the controller probe is consulted when
// the task runs. Overlapping requests all run, which is harmless.
func (ic *ImmersiveController) ApplyDeferred() {
	if ic.service == nil || ic.thread == nil {
		return
	}
	ic.thread.Post(ic.ApplyNow)
}

// ApplyNow sets immersive mode immediately.
func (ic *ImmersiveController) ApplyNow() {
	if ic.service == nil {
		return
	}
	ic.service.SetImmersiveMode(ic.window, ic.StableLayout())
}
