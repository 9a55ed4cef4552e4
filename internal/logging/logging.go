// Package logging configures the shared application logger. Output always
// goes to stderr (stdout is reserved for command output and, in MCP mode,
// the protocol stream) and can optionally be teed into a log file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	logger  *charmlog.Logger
	logFile *os.File
)

// Init builds the package logger. When logPath is non-empty the parent
// directory is created and log lines are appended to the file as well as
// stderr. Re-initializing closes any previously opened file.
func Init(debug bool, logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}

	logger = charmlog.NewWithOptions(io.MultiWriter(writers...), charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "paperchunk",
	})
	return nil
}

// L returns the configured logger, falling back to a stderr logger when
// Init has not run (tests, library use).
func L() *charmlog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:           charmlog.InfoLevel,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "paperchunk",
		})
	}
	return logger
}

// Close flushes and releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
