package evdev

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

const keyPressed = 1

// DefaultMenuCodes open the menu when no codes are configured.
var DefaultMenuCodes = []evdev.EvCode{evdev.BTN_MODE, evdev.KEY_MENU}

type WatcherOptions struct {
	Path  string
	Codes []evdev.EvCode

	// OnMenu is called from the watcher goroutine.
	OnMenu func()
}

// Watcher reads one input device and calls OnMenu when a menu key goes
// down.
type Watcher struct {
	dev    *evdev.InputDevice
	codes  []evdev.EvCode
	onMenu func()
	wg     sync.WaitGroup
}

func NewWatcher(options WatcherOptions) (*Watcher, error) {
	dev, err := evdev.Open(options.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", options.Path, err)
	}

	codes := options.Codes
	if len(codes) == 0 {
		codes = DefaultMenuCodes
	}

	return &Watcher{dev: dev, codes: codes, onMenu: options.OnMenu}, nil
}

// Start reads events until ctx is done or the device goes away.
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.read()

	go func() {
		<-ctx.Done()
		w.dev.Close()
	}()
}

// Wait blocks until the read goroutine exits.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) read() {
	defer w.wg.Done()

	logger := internal.GetInternalLogger()

	for {
		event, err := w.dev.ReadOne()
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				logger.Debug("Input device read stopped", "error", err)
			}
			return
		}

		if menuPressed(event, w.codes) && w.onMenu != nil {
			logger.Debug("Menu button pressed", "code", event.Code)
			w.onMenu()
		}
	}
}

func menuPressed(event *evdev.InputEvent, codes []evdev.EvCode) bool {
	return event != nil &&
		event.Type == evdev.EV_KEY &&
		event.Value == keyPressed &&
		slices.Contains(codes, event.Code)
}
