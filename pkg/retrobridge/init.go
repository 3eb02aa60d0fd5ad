package retrobridge

import (
	"log/slog"
	"os"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
	"github.com/pawndev/retrobridge/pkg/retrobridge/i18n"
	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

type Options struct {
	LogFilename  string
	LogDir       string
	LogLevel     string
	Language     string
	MessageFiles []string
}

// Init configures logging and loads menu translations.
// Must be called before building a Screen if either is wanted; without it
// the bridge still works with English labels.
func Init(options Options) error {
	if options.LogDir != "" {
		internal.SetLogDir(options.LogDir)
	}
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if err := i18n.InitI18N(options.MessageFiles); err != nil {
		internal.GetInternalLogger().Error("Failed to load menu translations", "error", err)
		return err
	}

	if options.Language != "" {
		if err := i18n.SetWithCode(options.Language); err != nil {
			internal.GetInternalLogger().Warn("Unknown language, keeping English", "language", options.Language, "error", err)
		}
	}

	return nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
