// Package navstack provides a navigation stack controller for screen based
// applications: a Router that turns navigation intents into a new back
// stack, plus host adapters for SDL windows, terminals and Linux input
// devices.
//
// The core lives in the router subpackage. This package handles process
// wide setup: logging and configuration.
package navstack

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// Options configures navstack initialization.
type Options struct {
	LogPath       string // Full path for log file including filename (creates parent directories)
	LogLevel      string // Application log level: debug, info, warn or error
	InternalDebug bool   // Log queue and navigator internals at debug level
}

// Init sets up logging. Call it once, before creating routers, so their
// internal logger picks up the settings.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.InternalDebug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.GetInternalLogger()
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger navstack uses for its own events.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// NewLogger returns a logger writing to w, formatted like the package
// loggers. CLIs use it to log to stderr.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return internal.NewLoggerTo(w, internal.ParseLevel(level))
}
