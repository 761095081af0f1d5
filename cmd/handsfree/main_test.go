package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"handsfree/internal/config"
	"handsfree/internal/logging"
)

// recordingEngine captures what run hands to the engine and returns at once.
type recordingEngine struct {
	calls   int
	cfg     *config.Config
	runID   string
	devices int
	err     error
}

func (e *recordingEngine) Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	e.calls++
	e.cfg = cfg
	e.runID, _ = logging.RunIDFromContext(ctx)
	e.devices = cfg.Index().Len()
	logger.Info("engine ran")
	return e.err
}

func runCLI(t *testing.T, eng engine, args ...string) (string, string, error) {
	t.Helper()
	if eng == nil {
		eng = &recordingEngine{}
	}
	cmd := newRootCommandWithEngine(eng)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lockFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "handsfree.lock")
}
