package retrobridge

import "testing"

func TestHasPhysicalControllers(t *testing.T) {
	tests := []struct {
		name  string
		probe ControllerProbe
		want  bool
	}{
		{"nil probe", nil, false},
		{"no controllers", ProbeFunc(func() bool { return false }), false},
		{"controllers", ProbeFunc(func() bool { return true }), true},
		{"failing probe", ProbeFunc(func() bool { panic("mapper gone") }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPhysicalControllers(tt.probe); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAnyProbe(t *testing.T) {
	no := ProbeFunc(func() bool { return false })
	yes := ProbeFunc(func() bool { return true })
	broken := ProbeFunc(func() bool { panic("unavailable") })

	if (AnyProbe{}).HasGamepads() {
		t.Error("empty AnyProbe reported controllers")
	}
	if (AnyProbe{no, broken, nil}).HasGamepads() {
		t.Error("expected false when no probe reports controllers")
	}
	if !(AnyProbe{broken, no, yes}).HasGamepads() {
		t.Error("expected true when one probe reports controllers")
	}
}
