package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pawndev/retrobridge/internal/config"
	"github.com/pawndev/retrobridge/pkg/retrobridge"
	"github.com/pawndev/retrobridge/pkg/retrobridge/core"
)

// coreConn is the command channel to the core plus whatever controls the
// core's execution.
type coreConn struct {
	sink    retrobridge.CommandSink
	session retrobridge.Session
	wait    func() error
	close   func() error
}

func (c coreConn) Close() {
	if c.close == nil {
		return
	}
	if err := c.close(); err != nil {
		retrobridge.GetLogger().Warn("Failed to close core connection", "error", err)
	}
}

func connectCore(ctx context.Context, cfg config.Config) (coreConn, error) {
	if cfg.UsesWebSocket() {
		ws, err := core.DialWebSocket(ctx, cfg.Core.Endpoint, cfg.Core.QueueSize)
		if err != nil {
			return coreConn{}, err
		}
		return coreConn{sink: ws, close: ws.Close}, nil
	}

	if cfg.Core.Path == "" {
		return coreConn{}, fmt.Errorf("no core to launch: set core.path or pass --core")
	}

	process, err := core.Launch(ctx, cfg.Core.Path, core.LaunchOptions{
		Args:      cfg.Core.Args,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		QueueSize: cfg.Core.QueueSize,
	})
	if err != nil {
		return coreConn{}, err
	}

	return coreConn{
		sink:    process.Sink(),
		session: process.Session(),
		wait:    process.Wait,
		close:   process.Close,
	}, nil
}
