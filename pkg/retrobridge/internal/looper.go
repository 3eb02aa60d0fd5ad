package internal

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"
)

var ErrLooperRunning = errors.New("looper is already running")

// Looper is a serial task queue standing in for the UI thread. Everything
// that touches presentation state runs through it; callers on other
// goroutines hand work over with Post and never wait for it.
type Looper struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	running *atomic.Bool
}

func NewLooper() *Looper {
	return &Looper{
		wake:    make(chan struct{}, 1),
		running: atomic.NewBool(false),
	}
}

// Post queues fn to run on the looper. It never blocks.
func (l *Looper) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// PostDelayed queues fn after d has elapsed. Stopping the returned timer
// before it fires drops the task.
func (l *Looper) PostDelayed(fn func(), d time.Duration) *time.Timer {
	return time.AfterFunc(d, func() {
		l.Post(fn)
	})
}

// Pending reports how many tasks are queued.
func (l *Looper) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RunPending runs the tasks queued at the time of the call and returns how
// many ran. Tasks posted while draining wait for the next pass.
func (l *Looper) RunPending() int {
	l.mu.Lock()
	tasks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, task := range tasks {
		l.runTask(task)
	}
	return len(tasks)
}

// Run drains the queue until ctx is done. The calling goroutine becomes the
// UI thread; hosts that need a specific OS thread lock it before calling.
func (l *Looper) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLooperRunning
	}
	defer l.running.Store(false)

	for {
		l.RunPending()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Looper) Running() bool {
	return l.running.Load()
}

func (l *Looper) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			GetInternalLogger().Error("UI task panicked", "panic", r)
		}
	}()
	task()
}
