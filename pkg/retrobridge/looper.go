package retrobridge

import "github.com/pawndev/retrobridge/pkg/retrobridge/internal"

// Looper is the default UIThread: a serial task queue drained by whichever
// goroutine calls Run or RunPending.
type Looper = internal.Looper

var ErrLooperRunning = internal.ErrLooperRunning

func NewLooper() *Looper {
	return internal.NewLooper()
}
