package main

import (
	"encoding/json"
	"strings"
	"testing"

	"handsfree/internal/config"
	"handsfree/internal/testsupport"
)

func TestDevicesTable(t *testing.T) {
	dir := testsupport.NewSourceDir(t, testsupport.WithBase(testsupport.BaseWithDevices(t, testsupport.Grid(3)...)))

	out, _, err := runCLI(t, nil, "--config-dir", dir, "devices")
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	for _, want := range []string{"NAME", "MIN", "CENTER", "dev-0", "dev-1", "dev-2", "(4, 0, 0)", "(5, 1, 1)", "(4.5, 0.5, 0.5)", "3 devices, 3 leaves"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDevicesEmpty(t *testing.T) {
	dir := testsupport.NewSourceDir(t, testsupport.WithBase(testsupport.BaseWithDevices(t)))

	out, _, err := runCLI(t, nil, "--config-dir", dir, "devices")
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	if !strings.Contains(out, "No devices configured") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDevicesJSON(t *testing.T) {
	dir := testsupport.NewSourceDir(t, testsupport.WithBase(testsupport.BaseWithDevices(t, testsupport.Grid(2)...)))

	out, _, err := runCLI(t, nil, "--config-dir", dir, "devices", "--json")
	if err != nil {
		t.Fatalf("devices --json: %v", err)
	}
	var devices []config.DeviceDocument
	if err := json.Unmarshal([]byte(out), &devices); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(devices) != 2 || devices[1].Name != "dev-1" || devices[1].MinX != 2 {
		t.Fatalf("unexpected devices %+v", devices)
	}
}
