package sdl

import (
	"io"
	"os"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

func TestMain(m *testing.M) {
	internal.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

type recordingLifecycle struct {
	calls []string
}

func (r *recordingLifecycle) OnResume()         { r.calls = append(r.calls, "resume") }
func (r *recordingLifecycle) OnPause()          { r.calls = append(r.calls, "pause") }
func (r *recordingLifecycle) SetImmersiveMode() { r.calls = append(r.calls, "immersive") }
func (r *recordingLifecycle) ShowMenu()         { r.calls = append(r.calls, "menu") }

func TestHostHandleEvent(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  []string
	}{
		{"focus gained", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED}, []string{"resume"}},
		{"focus lost", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST}, []string{"pause"}},
		{"resized", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED}, nil},
		{"escape", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, []string{"menu"}},
		{"escape repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, nil},
		{"escape released", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, nil},
		{"other key", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_a}}, nil},
		{"guide", &sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_GUIDE)}, []string{"menu"}},
		{"a button", &sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_A)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lifecycle := &recordingLifecycle{}
			host := NewHost(HostOptions{Screen: lifecycle})

			host.HandleEvent(tt.event)

			if len(lifecycle.calls) != len(tt.want) {
				t.Fatalf("expected calls %v, got %v", tt.want, lifecycle.calls)
			}
			for i := range tt.want {
				if lifecycle.calls[i] != tt.want[i] {
					t.Errorf("expected calls %v, got %v", tt.want, lifecycle.calls)
				}
			}
		})
	}
}

func TestHostQuitStopsLoop(t *testing.T) {
	host := NewHost(HostOptions{Screen: &recordingLifecycle{}})
	host.running = true

	host.HandleEvent(&sdl.QuitEvent{Type: sdl.QUIT})

	if host.Running() {
		t.Error("expected quit event to stop the host")
	}
}

func TestHostCustomMenuKeys(t *testing.T) {
	lifecycle := &recordingLifecycle{}
	host := NewHost(HostOptions{Screen: lifecycle, MenuKeys: []sdl.Keycode{sdl.K_m}})

	host.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}})
	host.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_m}})

	if len(lifecycle.calls) != 1 || lifecycle.calls[0] != "menu" {
		t.Errorf("expected only the custom key to open the menu, got %v", lifecycle.calls)
	}
}

func TestImmersiveWithoutWindow(t *testing.T) {
	// must not touch SDL when there is no window
	Immersive{}.SetImmersiveMode(nil, true)
	Immersive{}.SetImmersiveMode("not a window", false)
}
