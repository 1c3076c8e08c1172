// Package logging builds the zap logger. The TUI owns stdout and stderr,
// so logs go to a file under the XDG state directory instead.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rudram/trivl/internal/config"
)

// New creates a file-backed logger from the log configuration. An empty
// path resolves to the default state-dir location.
func New(cfg config.Log) (*zap.Logger, error) {
	path := cfg.Path
	if path == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}

	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// DefaultLogPath resolves the log file location in priority order:
// 1. TRIVL_LOG environment variable
// 2. $XDG_STATE_HOME/trivl/trivl.log
// 3. ~/.local/state/trivl/trivl.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("TRIVL_LOG"); p != "" {
		return p, ensureDir(p)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "trivl", "trivl.log")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
