// Package logging sets up the process-wide slog logger.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// Logger owns the log file and the dynamic level.
type Logger struct {
	path     string
	file     *os.File
	levelVar *slog.LevelVar
}

// New creates a slog.Logger writing to both stdout and the file at path,
// and installs it as the default. level is one of debug, info, warn,
// error (case-insensitive); empty or unknown values mean info.
// Standard log output is redirected to the same destinations so
// dependencies like telegram-bot-api end up in the same file.
func New(path, level string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	multiWriter := io.MultiWriter(os.Stdout, file)

	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime)

	levelVar := new(slog.LevelVar)
	parsed, valid := parseLevel(level)
	levelVar.Set(parsed)

	handler := slog.NewTextHandler(
		multiWriter,
		&slog.HandlerOptions{
			Level:     levelVar,
			AddSource: true,
		},
	)
	slog.SetDefault(slog.New(handler))

	if !valid && level != "" {
		slog.Warn("Unknown log_level, using info", "value", level)
	}

	return &Logger{path: path, file: file, levelVar: levelVar}, nil
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level string) {
	parsed, valid := parseLevel(level)
	if !valid && level != "" {
		slog.Warn("Unknown log_level, using info", "value", level)
	}
	l.levelVar.Set(parsed)
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
