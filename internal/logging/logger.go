// Package logging wraps charmbracelet/log for diagnostics written to stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrInvalidLevel indicates a log level name that is not recognized.
var ErrInvalidLevel = errors.New("invalid log level")

// Level names accepted by New and SetLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *log.Logger
)

// New creates a logger writing to stderr at the given level.
// Unknown levels fall back to info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "gfm",
	})
	setLoggerLevel(logger, level)
	return logger
}

// ParseLevel maps a level name to a log.Level, case-insensitively.
// "warning" is accepted as an alias for "warn".
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return log.DebugLevel, nil
	case LevelInfo:
		return log.InfoLevel, nil
	case LevelWarn, "warning":
		return log.WarnLevel, nil
	case LevelError:
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("%w: %q (must be debug, info, warn, or error)", ErrInvalidLevel, level)
}

func setLoggerLevel(logger *log.Logger, level string) {
	lvl, _ := ParseLevel(level)
	logger.SetLevel(lvl)
}

// Default returns the package-level logger, creating it at info level on
// first use.
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
		defaultLogger = New(LevelInfo)
	}
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel updates the level of the package-level logger.
func SetLevel(level string) {
	setLoggerLevel(Default(), level)
}
