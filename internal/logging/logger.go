// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultMu     sync.RWMutex
	defaultLogger *log.Logger
)

// New creates a stderr logger with the given level.
// Valid levels: "debug", "info", "warn" (or "warning"), "error".
// Anything else means info.
func New(level string) *log.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter creates a logger writing plain entries to w.
func NewWriter(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// NewInteractive creates an info-level logger for user-facing commands.
// Timestamps are reported only when stderr is not a terminal.
func NewInteractive() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat:      "15:04:05",
	})
}

// ParseLevel maps a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	parsed, err := log.ParseLevel(level)
	if err != nil || parsed == log.FatalLevel {
		return log.InfoLevel
	}
	return parsed
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()
	if logger != nil {
		return logger
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
