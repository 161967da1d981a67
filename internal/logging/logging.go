// Package logging wires a file-backed zerolog logger. The TUI owns the
// terminal, so log output always goes to a file and only when debugging
// is switched on; otherwise the logger is a no-op.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/kiminote/kiminote/internal/config"
)

// New returns the process logger. Set KIMINOTE_DEBUG to any non-empty
// value to get debug output at ~/.config/kiminote/debug.log.
func New() zerolog.Logger {
	if os.Getenv("KIMINOTE_DEBUG") == "" {
		return zerolog.Nop()
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return zerolog.Nop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop()
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop()
	}

	return zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
