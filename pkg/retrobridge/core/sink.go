// Package core holds the channels that carry menu commands into an
// emulation core: a pipe for a core running as a child process and a
// websocket for a remote one. Every sink queues commands and writes them on
// its own goroutine, so forwarding never waits on the core.
package core

import (
	"errors"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

var ErrSinkClosed = errors.New("command sink is closed")

const DefaultQueueSize = 16

// Stats counts what happened to forwarded commands.
type Stats struct {
	Written uint64
	Dropped uint64
	Failed  uint64
}

type asyncSink struct {
	name   string
	queue  chan int
	write  func(code int) error
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}

	written *atomic.Uint64
	dropped *atomic.Uint64
	failed  *atomic.Uint64
}

func newAsyncSink(name string, size int, write func(code int) error) *asyncSink {
	if size <= 0 {
		size = DefaultQueueSize
	}

	s := &asyncSink{
		name:    name,
		queue:   make(chan int, size),
		write:   write,
		logger:  internal.GetInternalLogger(),
		done:    make(chan struct{}),
		written: atomic.NewUint64(0),
		dropped: atomic.NewUint64(0),
		failed:  atomic.NewUint64(0),
	}
	go s.pump()
	return s
}

// ForwardCommand queues code for the core. A full queue or a closed sink
// drops the command.
func (s *asyncSink) ForwardCommand(code int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.dropped.Inc()
		s.logger.Warn("Command sink closed, dropping command", "sink", s.name, "command", constants.Command(code).String())
		return
	}

	select {
	case s.queue <- code:
	default:
		s.dropped.Inc()
		s.logger.Warn("Command queue full, dropping command", "sink", s.name, "command", constants.Command(code).String())
	}
}

func (s *asyncSink) pump() {
	defer close(s.done)

	for code := range s.queue {
		if err := s.write(code); err != nil {
			s.failed.Inc()
			s.logger.Error("Failed to forward command", "sink", s.name, "command", constants.Command(code).String(), "error", err)
			continue
		}
		s.written.Inc()
	}
}

// shutdown stops accepting commands and waits for queued ones to be written.
func (s *asyncSink) shutdown() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSinkClosed
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	return nil
}

func (s *asyncSink) Stats() Stats {
	return Stats{
		Written: s.written.Load(),
		Dropped: s.dropped.Load(),
		Failed:  s.failed.Load(),
	}
}
