// Package helpers contains few helper functions which are used throughout the
// project.
package helpers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ProjectUserPath returns the directory where the user's configuration for
// coverlookup lives.
func ProjectUserPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding user config directory: %w", err)
	}

	return filepath.Join(dir, ProjectDir), nil
}

// NewLogger creates a new log.Logger writing to w with timestamps. The writer
// defaults to os.Stderr. An empty level means "info".
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("bad log level %q: %w", level, err)
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	}), nil
}
