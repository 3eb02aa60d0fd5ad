package retrobridge

import "testing"

type windowHandle struct{ name string }

func TestApplyNowUsesCurrentProbe(t *testing.T) {
	service := &fakeImmersive{}
	present := false
	win := &windowHandle{name: "main"}
	ic := NewImmersiveController(service, ProbeFunc(func() bool { return present }), win, NewLooper())

	ic.ApplyNow()
	present = true
	ic.ApplyNow()

	if len(service.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(service.calls))
	}
	if service.calls[0].stable || !service.calls[1].stable {
		t.Errorf("expected stable=false then true, got %+v", service.calls)
	}
	if service.calls[0].window != win {
		t.Error("expected window handle to be passed through")
	}
}

func TestApplyDeferredRunsOnLaterPass(t *testing.T) {
	service := &fakeImmersive{}
	looper := NewLooper()
	present := false
	ic := NewImmersiveController(service, ProbeFunc(func() bool { return present }), nil, looper)

	ic.ApplyDeferred()
	if len(service.calls) != 0 {
		t.Fatal("deferred immersive mode applied synchronously")
	}

	// the probe is read when the task runs, not when it was scheduled
	present = true
	looper.RunPending()

	if len(service.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(service.calls))
	}
	if !service.calls[0].stable {
		t.Error("expected stable layout from probe at run time")
	}
}

func TestApplyDeferredTwiceRunsTwice(t *testing.T) {
	service := &fakeImmersive{}
	looper := NewLooper()
	ic := NewImmersiveController(service, nil, nil, looper)

	ic.ApplyDeferred()
	ic.ApplyDeferred()
	looper.RunPending()

	if len(service.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(service.calls))
	}
	for _, call := range service.calls {
		if call.stable {
			t.Error("expected stable=false without a probe")
		}
	}
}

func TestImmersiveWithoutService(t *testing.T) {
	looper := NewLooper()
	ic := NewImmersiveController(nil, nil, nil, looper)

	ic.ApplyDeferred()
	ic.ApplyNow()

	if looper.Pending() != 0 {
		t.Errorf("expected nothing queued, got %d", looper.Pending())
	}
}
