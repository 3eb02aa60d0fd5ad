package core

import (
	"fmt"
	"io"
)

// PipeSink writes each command as a single byte, the format a native core
// reads off its command pipe.
type PipeSink struct {
	*asyncSink
	w io.Writer
}

func NewPipeSink(w io.Writer, queueSize int) *PipeSink {
	p := &PipeSink{w: w}
	p.asyncSink = newAsyncSink("pipe", queueSize, p.writeCode)
	return p
}

func (p *PipeSink) writeCode(code int) error {
	if code < 0 || code > 127 {
		return fmt.Errorf("command code %d does not fit the pipe format", code)
	}

	n, err := p.w.Write([]byte{byte(code)})
	if err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// Close flushes queued commands and closes the writer if it is closable.
func (p *PipeSink) Close() error {
	if err := p.shutdown(); err != nil {
		return err
	}
	if c, ok := p.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
