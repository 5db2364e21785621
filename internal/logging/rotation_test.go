package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTruncateIfNeeded(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	data := make([]byte, 100)
	if err := os.WriteFile(logPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	TruncateIfNeeded(logPath, 200)
	info, _ := os.Stat(logPath)
	if info.Size() != 100 {
		t.Errorf("should not truncate, size = %d", info.Size())
	}

	TruncateIfNeeded(logPath, 50)
	info, _ = os.Stat(logPath)
	if info.Size() != 0 {
		t.Errorf("should truncate to 0, size = %d", info.Size())
	}
}

func TestTruncateIfNeeded_FileNotExist(t *testing.T) {
	TruncateIfNeeded("/nonexistent/path/file.log", 100)
}

func TestTruncateIfNeeded_ExactSize(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	data := make([]byte, 100)
	if err := os.WriteFile(logPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	// Exactly maxSize is not over the limit.
	TruncateIfNeeded(logPath, 100)
	info, _ := os.Stat(logPath)
	if info.Size() != 100 {
		t.Errorf("should not truncate at exact size, size = %d", info.Size())
	}
}
