package constants

import (
	"os"
	"time"
)

// ExtraMultiDisk is the launch extra set when the running content spans
// more than one disk image.
const ExtraMultiDisk = "MULTIDISK"

const (
	DevModeEnvVar   = "RETROBRIDGE_DEV"
	DebugEnvVar     = "RETROBRIDGE_DEBUG"
	ConfigEnvVar    = "RETROBRIDGE_CONFIG"
	LogLevelEnvVar  = "RETROBRIDGE_LOG_LEVEL"
	DefaultLogFile  = "retrobridge.log"
	DefaultLogDir   = "logs"
	DefaultFrameGap = 16 * time.Millisecond
)

// IsDevMode reports whether the bridge runs on a desktop instead of the
// handheld, in which case windows stay bordered and presenters fall back to
// the terminal.
func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}
