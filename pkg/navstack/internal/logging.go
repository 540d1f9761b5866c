package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/lmittmann/tint"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	output    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Must be called before the
// first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			logPath = os.Getenv(constants.LogPathEnvVar)
		}
		if logPath == "" {
			output = os.Stdout
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			output = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			output = os.Stdout
			return
		}

		output = io.MultiWriter(os.Stdout, logFile)
	})
}

// newHandler builds a colorized console handler in dev mode and a JSON
// handler otherwise.
func newHandler(w io.Writer, level slog.Leveler) slog.Handler {
	if constants.IsDevMode() {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		setup()
		if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
			levelVar.Set(ParseLevel(raw))
		}
		logger = slog.New(newHandler(output, levelVar))
	})
	return logger
}

func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		setup()
		internalLevelVar.Set(slog.LevelWarn)
		if constants.IsDevMode() {
			internalLevelVar.Set(slog.LevelDebug)
		}
		internalLogger = slog.New(newHandler(output, internalLevelVar))
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

// ParseLevel converts a textual log level into a slog.Level.
// Unknown values map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
	SetLogLevel(ParseLevel(rawLevel))
}

// NewLoggerTo builds a logger writing to w with the same handler choice as
// the package loggers. Used by CLIs that log to stderr.
func NewLoggerTo(w io.Writer, level slog.Level) *slog.Logger {
	lv := &slog.LevelVar{}
	lv.Set(level)
	return slog.New(newHandler(w, lv))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
