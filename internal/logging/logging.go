// Package logging sets up the structured logger. The game owns the terminal,
// so log output goes to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// DefaultRelPath is the log file location relative to the XDG state home.
const DefaultRelPath = "hotcold/hotcold.log"

// ParseLevel parses debug, info, warn or error (case-insensitive).
// Unknown values fall back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Path resolves the log file to use. A custom path wins when its directory
// can be created; otherwise the XDG state file is used.
func Path(customPath string) (string, error) {
	if customPath != "" {
		if strings.HasPrefix(customPath, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				customPath = filepath.Join(home, customPath[2:])
			}
		}
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err == nil {
			return customPath, nil
		}
		fmt.Fprintf(os.Stderr, "Warning: could not use log path %s, falling back to %s\n", customPath, DefaultRelPath)
	}

	path, err := xdg.StateFile(DefaultRelPath)
	if err != nil {
		return "", fmt.Errorf("logging: could not get log path: %w", err)
	}
	return path, nil
}

// New creates a logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "hotcold",
		ReportTimestamp: true,
	})
}

// Open creates a logger appending to the resolved log file.
// The caller closes the returned file.
func Open(customPath, level string) (*log.Logger, *os.File, error) {
	path, err := Path(customPath)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: could not open %s: %w", path, err)
	}

	logger := New(f, ParseLevel(level))
	logger.Debug("logging initialized", "path", path, "level", logger.GetLevel())
	return logger, f, nil
}

// Discard returns a logger that drops everything, for tests and for runs
// where the log file could not be opened.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
