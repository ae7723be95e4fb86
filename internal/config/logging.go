package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// LoggerOptions are the caller-specific parts of a logger.
type LoggerOptions struct {
	Prefix     string
	Timestamps bool
	// Fallback receives output when no log file is configured.
	// Nil discards it.
	Fallback io.Writer
}

// NewLogger builds a charmbracelet logger for this configuration.
// The returned closer releases the log file, if one was opened.
func (l LogConfig) NewLogger(opts LoggerOptions) (*log.Logger, io.Closer, error) {
	level, err := l.ParseLevel()
	if err != nil {
		return nil, nil, err
	}

	var (
		w      = opts.Fallback
		closer io.Closer = nopCloser{}
	)
	if l.File != "" {
		path := ExpandHome(l.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Timestamps,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
