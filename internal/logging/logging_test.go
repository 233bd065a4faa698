package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{" info ", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}

	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestNewWritesPrefixedLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("round started", "tier", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "hotcold") || !strings.Contains(out, "tier=2") {
		t.Errorf("Output = %q, expected prefix and key/value", out)
	}
}

func TestOpenCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")

	logger, f, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Info("config loaded", "source", "built-in")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "config loaded") {
		t.Errorf("Log file = %q", data)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	Discard().Error("ignored")
}
