package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDirMode  = 0o755
	logFileMode = 0o644
)

// New builds a text slog.Logger that writes to console and to a daily
// log file ssweep_YYYYMMDD.log under logsDir. When the file cannot be
// created the logger degrades to console only; the sweep itself matters
// more than its audit trail. The returned func closes the log file.
func New(logsDir string, console io.Writer, now time.Time) (*slog.Logger, func() error) {
	noop := func() error { return nil }

	file, err := openDailyFile(logsDir, now)
	if err != nil {
		logger := slog.New(slog.NewTextHandler(console, nil))
		logger.Warn("logging to console only", "error", err)
		return logger, noop
	}

	logger := slog.New(slog.NewTextHandler(io.MultiWriter(console, file), nil))

	return logger, file.Close
}

func openDailyFile(logsDir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(logsDir, logDirMode); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(logsDir, FileName(now))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}

// FileName returns the daily log file name for a given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("ssweep_%s.log", now.Format("20060102"))
}
