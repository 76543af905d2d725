package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/khartmann/linesim/internal/config"
)

// TUILoggerResult contains the results of setting up logging for TUI mode.
type TUILoggerResult struct {
	Logger  *slog.Logger
	LogFile io.WriteCloser
}

// Close closes the log file.
func (r *TUILoggerResult) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupTUILogger creates a logger that writes to a rotating file instead of
// stderr, so log output cannot corrupt the TUI display. Rotation is handled
// by lumberjack using the provided config.
func SetupTUILogger(path string, level slog.Leveler, rotationCfg config.LogRotationConfig) *TUILoggerResult {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotationCfg.MaxSizeMB,
		MaxBackups: rotationCfg.MaxBackups,
		MaxAge:     rotationCfg.MaxAgeDays,
		Compress:   rotationCfg.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))

	return &TUILoggerResult{
		Logger:  logger,
		LogFile: writer,
	}
}

// SetupTUILoggerWithWriter creates a logger that writes to the given
// writer. Useful for tests that capture the output.
func SetupTUILoggerWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
