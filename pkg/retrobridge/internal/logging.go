package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
)

var (
	logFile     *os.File
	logFilename string
	logDir      = constants.DefaultLogDir

	setupOnce   sync.Once
	multiWriter io.Writer
	setupErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

func SetLogFilename(filename string) {
	logFilename = filename
}

func SetLogDir(dir string) {
	logDir = dir
}

// SetLogOutput sends every logger to w instead of stdout and the log file.
// It only takes effect before the first logger is built.
func SetLogOutput(w io.Writer) {
	setupOnce.Do(func() {
		multiWriter = w
	})
}

func setup() {
	setupOnce.Do(func() {
		multiWriter, logFile, setupErr = openLogOutput(logDir, logFilename)
	})
}

// openLogOutput tees stdout into dir/filename. When the file cannot be
// created, as on a read-only card, it returns stdout alone and the reason.
func openLogOutput(dir, filename string) (io.Writer, *os.File, error) {
	if filename == "" {
		filename = constants.DefaultLogFile
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return os.Stdout, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return os.Stdout, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return io.MultiWriter(os.Stdout, f), f, nil
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// GetInternalLogger returns the logger used by the bridge itself, kept
// separate so hosts can silence it without touching their own output.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		}).WithAttrs([]slog.Attr{slog.String("component", "retrobridge")})
		internalLogger = slog.New(handler)

		if setupErr != nil {
			internalLogger.Warn("Log file unavailable, logging to stdout only", "dir", logDir, "error", setupErr)
		}
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

func ParseLogLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	GetLogger()
	levelVar.Set(ParseLogLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
