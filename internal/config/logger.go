package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. Verbose mode writes text records to
// stderr; otherwise records go to a size-rotated log file. The returned
// closer releases the file.
func NewLogger(cfg *Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Verbose {
		return slog.New(slog.NewTextHandler(stderr, opts)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return slog.New(slog.NewTextHandler(w, opts)), w, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
