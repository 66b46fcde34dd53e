// Package log installs the process-wide slog logger for the CLI.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	charmlog "charm.land/log/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/charmbracelet/pal/internal/config"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 30
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup makes a slog logger the default according to cfg. With a log file
// it writes JSON through a rotating lumberjack writer; otherwise it writes
// human readable lines to stderr. The returned closer releases the log file.
func Setup(cfg config.Config) (io.Closer, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(newConsoleHandler(os.Stderr, level)))
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
		return nil, err
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(rotator, &slog.HandlerOptions{
		Level: level,
	})))
	return rotator, nil
}

func newConsoleHandler(w io.Writer, level slog.Level) slog.Handler {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "pal",
	})
	logger.SetLevel(charmlog.Level(level))
	return logger
}
