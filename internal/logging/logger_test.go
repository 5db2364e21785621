package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLogger_New(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger, err := New(logPath, "info")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestLogger_Close(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger, _ := New(logPath, "")
	err := logger.Close()
	if err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestLogger_New_InvalidPath(t *testing.T) {
	_, err := New("/nonexistent/dir/test.log", "info")
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		got, valid := parseLevel(tt.in)
		if got != tt.want || valid != tt.valid {
			t.Errorf("parseLevel(%q) = %v/%v, want %v/%v", tt.in, got, valid, tt.want, tt.valid)
		}
	}
}

func TestLogger_SetLevel(t *testing.T) {
	tmpDir := t.TempDir()
	logger, err := New(filepath.Join(tmpDir, "test.log"), "info")
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	logger.SetLevel("debug")
	if got := logger.levelVar.Level(); got != slog.LevelDebug {
		t.Errorf("level after SetLevel(debug) = %v", got)
	}

	logger.SetLevel("bogus")
	if got := logger.levelVar.Level(); got != slog.LevelInfo {
		t.Errorf("level after SetLevel(bogus) = %v, want info", got)
	}
}
