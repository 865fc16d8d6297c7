// Package logging builds the charmbracelet loggers used by the servers and
// the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w with the given prefix.
// level is one of debug, info, warn, error or fatal.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Stderr is New on os.Stderr, falling back to info when level is invalid.
func Stderr(prefix, level string) *log.Logger {
	logger, err := New(os.Stderr, prefix, level)
	if err != nil {
		logger, _ = New(os.Stderr, prefix, "info")
		logger.Warn("invalid log level, using info", "level", level)
	}
	return logger
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
