//go:build unix

package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"go.uber.org/atomic"
	"golang.org/x/sys/unix"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

// CommandFDEnvVar tells a launched core which descriptor carries commands.
const CommandFDEnvVar = "RETROBRIDGE_COMMAND_FD"

// commandFD is the first descriptor after stdin, stdout and stderr, where
// exec.Cmd places ExtraFiles[0].
const commandFD = 3

type LaunchOptions struct {
	Args      []string
	Env       []string
	Stdout    io.Writer
	Stderr    io.Writer
	QueueSize int
}

// Process is an emulation core running as a child process.
type Process struct {
	cmd     *exec.Cmd
	sink    *PipeSink
	session *ProcessSession
}

// Launch starts the core at path with a command pipe on descriptor 3.
func Launch(ctx context.Context, path string, options LaunchOptions) (*Process, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create command pipe: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, options.Args...)
	cmd.Env = append(os.Environ(), options.Env...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%d", CommandFDEnvVar, commandFD))
	cmd.ExtraFiles = []*os.File{r}
	cmd.Stdout = options.Stdout
	cmd.Stderr = options.Stderr

	if err := cmd.Start(); err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("failed to start core %s: %w", path, err)
	}

	// the child holds its own copy of the read end
	r.Close()

	internal.GetInternalLogger().Info("Core started", "path", path, "pid", cmd.Process.Pid)

	return &Process{
		cmd:     cmd,
		sink:    NewPipeSink(w, options.QueueSize),
		session: NewProcessSession(cmd.Process.Pid),
	}, nil
}

func (p *Process) Sink() *PipeSink {
	return p.sink
}

func (p *Process) Session() *ProcessSession {
	return p.session
}

func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the core exits.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}

// Close closes the command pipe, which tells the core to shut down, and
// makes sure a paused core is not left stopped.
func (p *Process) Close() error {
	p.session.Resume()

	err := p.sink.Close()
	if errors.Is(err, ErrSinkClosed) {
		return nil
	}
	return err
}

// ProcessSession pauses and resumes a core process with job-control
// signals.
type ProcessSession struct {
	pid    int
	paused *atomic.Bool
	logger *slog.Logger
}

func NewProcessSession(pid int) *ProcessSession {
	return &ProcessSession{
		pid:    pid,
		paused: atomic.NewBool(false),
		logger: internal.GetInternalLogger(),
	}
}

func (s *ProcessSession) Pause() {
	if !s.paused.CompareAndSwap(false, true) {
		return
	}
	if err := unix.Kill(s.pid, unix.SIGSTOP); err != nil {
		s.logger.Error("Failed to pause core", "pid", s.pid, "error", err)
	}
}

func (s *ProcessSession) Resume() {
	if !s.paused.CompareAndSwap(true, false) {
		return
	}
	if err := unix.Kill(s.pid, unix.SIGCONT); err != nil {
		s.logger.Error("Failed to resume core", "pid", s.pid, "error", err)
	}
}

func (s *ProcessSession) Paused() bool {
	return s.paused.Load()
}
