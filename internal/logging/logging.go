// Package logging builds the structured logger shared by the game and its
// front ends. The terminal belongs to the UI, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultPath is where logs are written when no path is given.
const DefaultPath = "~/.shooter/shooter.log"

// New opens (appending) the log file at path and returns a logger writing
// to it together with a function that closes the file. An empty path
// disables logging. When the file cannot be opened the logger discards
// output and the returned error says why.
func New(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	nop := func() error { return nil }
	if path == "" {
		return newLogger(io.Discard, lvl), nop, nil
	}

	path, err = expandHome(path)
	if err != nil {
		return newLogger(io.Discard, lvl), nop, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, lvl), nop, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard, lvl), nop, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return newLogger(f, lvl), f.Close, nil
}

// NewStderr returns a logger for the server console.
func NewStderr(prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           lvl,
	})
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
