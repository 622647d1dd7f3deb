// Package logging builds the app's zap logger. The chat TUI owns
// stdout, so diagnostics go to a file under the data directory; with
// debug off the logger is a nop.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a file-backed debug logger when debug is on, and a nop
// logger otherwise. Callers should defer Sync on the result.
func New(path string, debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
