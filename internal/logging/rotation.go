package logging

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// TruncateIfNeeded truncates the file at path once it grows past maxSize.
func TruncateIfNeeded(path string, maxSize int64) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Size() > maxSize {
		if err := os.Truncate(path, 0); err != nil {
			slog.Warn("Failed to truncate log file", "path", path, "error", err)
		} else {
			slog.Info("Truncated log file", "path", path, "prev_size", info.Size())
		}
	}
}

// StartRotation periodically truncates the logger's own file so it never
// grows past maxSize. Stops when ctx is cancelled.
func (l *Logger) StartRotation(ctx context.Context, maxSize int64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				TruncateIfNeeded(l.path, maxSize)
			}
		}
	}()
}
