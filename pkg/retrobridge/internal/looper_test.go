package internal

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLooperRunsInOrder(t *testing.T) {
	l := NewLooper()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}

	if n := l.RunPending(); n != 5 {
		t.Fatalf("expected 5 tasks, got %d", n)
	}

	for i, v := range got {
		if v != i {
			t.Errorf("expected %d at %d, got %d", i, i, v)
		}
	}
}

func TestLooperDefersTasksPostedWhileDraining(t *testing.T) {
	l := NewLooper()

	ran := false
	l.Post(func() {
		l.Post(func() { ran = true })
	})

	l.RunPending()
	if ran {
		t.Fatal("nested task ran in the same pass")
	}
	if l.Pending() != 1 {
		t.Fatalf("expected 1 pending task, got %d", l.Pending())
	}

	l.RunPending()
	if !ran {
		t.Fatal("nested task never ran")
	}
}

func TestLooperRecoversFromPanics(t *testing.T) {
	l := NewLooper()

	ran := false
	l.Post(func() { panic("boom") })
	l.Post(func() { ran = true })

	l.RunPending()
	if !ran {
		t.Fatal("task after panic did not run")
	}
}

func TestLooperRunFromOtherGoroutine(t *testing.T) {
	l := NewLooper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		go l.Post(wg.Done)
	}

	waited := make(chan struct{})
	go func() {
		wg.Wait()
		close(waited)
	}()

	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("posted tasks did not run")
	}

	if err := l.Run(ctx); err != ErrLooperRunning {
		t.Errorf("expected ErrLooperRunning, got %v", err)
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLooperPostDelayed(t *testing.T) {
	l := NewLooper()

	fired := make(chan struct{})
	l.PostDelayed(func() { close(fired) }, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if l.RunPending() > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-fired:
	default:
		t.Fatal("delayed task did not run")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"INFO":    "INFO",
		"warning": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}

	for raw, want := range tests {
		if got := ParseLogLevel(raw).String(); got != want {
			t.Errorf("ParseLogLevel(%q) = %s, expected %s", raw, got, want)
		}
	}
}
