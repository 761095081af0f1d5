package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"handsfree/internal/config"
	"handsfree/internal/logging"
	"handsfree/internal/testsupport"
)

func TestRunHandsConfigToEngine(t *testing.T) {
	dir := testsupport.NewSourceDir(t)
	eng := &recordingEngine{}

	_, stderr, err := runCLI(t, eng,
		"--config-dir", dir, "--hpe", "/cli/hpe", "--pool-size", "7",
		"run", "--lock-file", lockFile(t),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if eng.calls != 1 {
		t.Fatalf("expected one engine call, got %d", eng.calls)
	}
	base := eng.cfg.Base
	if base.HPEAddr != "/cli/hpe" || base.PoolSize != 7 {
		t.Fatalf("overrides not applied: %+v", base)
	}
	if base.HeadDetectionAddr != "/tmp/head.sock" || base.PicamAddr != "/tmp/picam.sock" {
		t.Fatalf("defaults not kept: %+v", base)
	}
	if eng.devices != 1 {
		t.Fatalf("expected engine to see one device, got %d", eng.devices)
	}
	if _, err := uuid.Parse(eng.runID); err != nil {
		t.Fatalf("expected uuid run id, got %q: %v", eng.runID, err)
	}

	for _, want := range []string{
		"[startup] – configuration loaded",
		"overrides: hpe_addr,pool_size",
		"run_id: " + eng.runID,
		"[engine] – engine ran",
		"shutdown complete",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %q in log output:\n%s", want, stderr)
		}
	}
}

func TestRunLogsLintWarnings(t *testing.T) {
	dir := testsupport.NewSourceDir(t)

	_, stderr, err := runCLI(t, nil, "--config-dir", dir, "--pool-size", "0", "run", "--lock-file", lockFile(t))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr, "WARN [startup] – configuration warning") || !strings.Contains(stderr, "pool_size is 0") {
		t.Fatalf("expected lint warning in log output:\n%s", stderr)
	}
}

func TestRunJSONLogs(t *testing.T) {
	dir := testsupport.NewSourceDir(t)

	_, stderr, err := runCLI(t, nil, "--config-dir", dir, "--log-format", "json", "run", "--lock-file", lockFile(t))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr, `"msg":"configuration loaded"`) || !strings.Contains(stderr, `"component":"startup"`) {
		t.Fatalf("expected json log lines, got:\n%s", stderr)
	}
}

func TestRunWritesLogFile(t *testing.T) {
	dir := testsupport.NewSourceDir(t)
	logPath := filepath.Join(t.TempDir(), "logs", "handsfree.log")

	_, stderr, err := runCLI(t, nil,
		"--config-dir", dir, "--log-level", "debug", "--no-color", "--log-file", logPath,
		"run", "--lock-file", lockFile(t),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{
		"[startup] – configuration loaded",
		"DEBUG [startup] – camera calibration",
		"camera: 2",
		"position: (0, 0, 0)",
		"image: 1280x720",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %q in log file:\n%s", want, content)
		}
	}
	if !strings.Contains(stderr, "shutdown complete") {
		t.Fatalf("expected stderr to keep receiving logs, got:\n%s", stderr)
	}
	if strings.Contains(string(content)+stderr, "\x1b[") {
		t.Fatal("expected no colour codes with --no-color")
	}
}

func TestRunFailsOnConfigurationError(t *testing.T) {
	dir := testsupport.NewSourceDir(t, testsupport.WithoutSource(config.Camera2File))
	eng := &recordingEngine{}

	_, _, err := runCLI(t, eng, "--config-dir", dir, "run", "--lock-file", lockFile(t))
	if !errors.Is(err, config.ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), config.Camera2File) {
		t.Fatalf("expected error to name the file, got %v", err)
	}
	if eng.calls != 0 {
		t.Fatal("engine must not run after a failed load")
	}
}

func TestRunRefusesSecondInstance(t *testing.T) {
	dir := testsupport.NewSourceDir(t)
	path := lockFile(t)

	held := flock.New(path)
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("pre-acquire lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	eng := &recordingEngine{}
	_, _, err = runCLI(t, eng, "--config-dir", dir, "run", "--lock-file", path)
	if err == nil || !strings.Contains(err.Error(), "already running") {
		t.Fatalf("expected lock contention error, got %v", err)
	}
	if eng.calls != 0 {
		t.Fatal("engine must not run without the lock")
	}
}

func TestRunReleasesLock(t *testing.T) {
	dir := testsupport.NewSourceDir(t)
	path := lockFile(t)

	for i := 0; i < 2; i++ {
		if _, _, err := runCLI(t, nil, "--config-dir", dir, "run", "--lock-file", path); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
}

func TestRunEngineErrors(t *testing.T) {
	dir := testsupport.NewSourceDir(t)

	_, _, err := runCLI(t, &recordingEngine{err: errors.New("pipeline exploded")}, "--config-dir", dir, "run", "--lock-file", lockFile(t))
	if err == nil || !strings.Contains(err.Error(), "pipeline exploded") {
		t.Fatalf("expected engine error, got %v", err)
	}

	_, _, err = runCLI(t, &recordingEngine{err: context.Canceled}, "--config-dir", dir, "run", "--lock-file", lockFile(t))
	if err != nil {
		t.Fatalf("expected cancellation to be a clean shutdown, got %v", err)
	}
}

func TestIdleEngineBuildsIndexAndStopsOnCancel(t *testing.T) {
	dir := testsupport.NewSourceDir(t)
	cfg, err := config.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if err := (idleEngine{}).Run(ctx, cfg, logger); err != nil {
		t.Fatalf("idle engine: %v", err)
	}
	if !cfg.IndexBuilt() {
		t.Fatal("expected idle engine to build the device index")
	}
	for _, want := range []string{"device indexed", "device: D1", "max: (1, 1, 1)", "devices: 1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in engine log:\n%s", want, buf.String())
		}
	}
}
