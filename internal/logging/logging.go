// Package logging sets up the zerolog logger. The TUI owns the terminal, so
// log lines go to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const logFile = "ritzel/ritzel.log"

// DefaultPath returns the log file location under $XDG_STATE_HOME,
// creating the parent directory.
func DefaultPath() (string, error) {
	return xdg.StateFile(logFile)
}

// ParseLevel parses a zerolog level name. Unknown or empty names fall back
// to info.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}

// Setup opens path for appending (DefaultPath when empty) and returns a
// logger writing to it. The returned closer releases the file.
func Setup(level, path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	return New(f, level), f, nil
}

// New returns a logger writing human-readable lines to w.
func New(w io.Writer, level string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(ParseLevel(level)).With().Timestamp().Logger()
}
