// Package logger provides the application-wide logging setup. Console
// output goes through a tint handler, with color suppressed when stderr
// is not a terminal or when a log file is attached. An optional log
// file receives the same records in append mode.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// state holds the configured logger and the log file handle, if any.
type state struct {
	log        *slog.Logger
	fileWriter io.WriteCloser
}

var global *state

// Setup initializes the global logger.
//
// Parameters:
//   - verbose: If true, enables DEBUG level logging (shows all messages)
//   - logFile: If non-empty, logs are also written to this file path
//
// The logger writes to stderr by default. If a log file is specified,
// records go to both stderr and the file via io.MultiWriter, and color
// is disabled so the file stays free of escape sequences.
//
// Returns an error if the log file cannot be created or opened.
func Setup(verbose bool, logFile string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var fileWriter io.WriteCloser
	var output io.Writer = os.Stderr
	noColor := !isatty.IsTerminal(os.Stderr.Fd())

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		fileWriter = f
		output = io.MultiWriter(os.Stderr, f)
		noColor = true
	}

	handler := tint.NewHandler(output, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    noColor,
	})

	global = &state{
		log:        slog.New(handler),
		fileWriter: fileWriter,
	}

	return nil
}

// Close closes the log file if one was opened. Safe to call when no
// file was opened, and safe to call more than once.
func Close() error {
	if global != nil && global.fileWriter != nil {
		err := global.fileWriter.Close()
		global.fileWriter = nil
		return err
	}
	return nil
}

// Debug logs a debug-level message (only shown in verbose mode).
// Arguments are slog-style alternating keys and values.
func Debug(msg string, args ...any) {
	active().Debug(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	active().Info(msg, args...)
}

// Warning logs a warning message.
func Warning(msg string, args ...any) {
	active().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	active().Error(msg, args...)
}

// SkippedDir logs a directory the traversal could not enter. Skips are
// expected during best-effort scans, so they log at debug level.
func SkippedDir(path string, err error) {
	active().Debug("skipped directory", "path", path, "reason", err)
}

// active returns the configured logger, falling back to slog's default
// logger when Setup has not been called.
func active() *slog.Logger {
	if global != nil {
		return global.log
	}
	return slog.Default()
}
