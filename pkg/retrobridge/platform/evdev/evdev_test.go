package evdev

import (
	"io"
	"os"
	"testing"

	"github.com/holoplot/go-evdev"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

func TestMain(m *testing.M) {
	internal.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestIsGamepad(t *testing.T) {
	tests := []struct {
		name string
		keys []evdev.EvCode
		want bool
	}{
		{"none", nil, false},
		{"keyboard", []evdev.EvCode{evdev.KEY_A, evdev.KEY_ENTER}, false},
		{"mouse", []evdev.EvCode{evdev.BTN_LEFT, evdev.BTN_RIGHT}, false},
		{"gamepad", []evdev.EvCode{evdev.BTN_SOUTH, evdev.BTN_EAST}, true},
		{"guide only", []evdev.EvCode{evdev.BTN_MODE}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isGamepad(tt.keys); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMenuPressed(t *testing.T) {
	tests := []struct {
		name  string
		event *evdev.InputEvent
		want  bool
	}{
		{"nil", nil, false},
		{"press", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_MODE, Value: 1}, true},
		{"release", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_MODE, Value: 0}, false},
		{"repeat", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_MODE, Value: 2}, false},
		{"other key", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_SOUTH, Value: 1}, false},
		{"sync", &evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := menuPressed(tt.event, DefaultMenuCodes); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
