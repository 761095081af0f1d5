package main

import (
	"strings"
	"testing"

	"handsfree/internal/testsupport"
)

func TestCheckReportsUnreachableServices(t *testing.T) {
	dir := testsupport.NewSourceDir(t)
	missing := t.TempDir() + "/absent.sock"
	args := []string{"--config-dir", dir, "--hpe", missing, "--head-detection", missing,
		"--gesture-detection", missing, "--picam", missing, "check"}

	out, _, err := runCLI(t, nil, args...)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, want := range []string{"Config directory", "Pose estimation (hpe_addr)", "Camera (picam_addr)", "FAIL", "no socket"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	_, _, err = runCLI(t, nil, append(args, "--strict")...)
	if err == nil || !strings.Contains(err.Error(), "4 of 5 checks failed") {
		t.Fatalf("expected strict failure, got %v", err)
	}
}

func TestRunWarnsAboutUnreachableServices(t *testing.T) {
	dir := testsupport.NewSourceDir(t)
	missing := t.TempDir() + "/absent.sock"

	_, stderr, err := runCLI(t, nil, "--config-dir", dir, "--picam", missing, "run", "--lock-file", lockFile(t))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr, "service not reachable") || !strings.Contains(stderr, "picam_addr") {
		t.Fatalf("expected preflight warning in log output:\n%s", stderr)
	}
}
