package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"handsfree/internal/config"
)

// MinimalBase is a base source with one unit-cube device named D1 and no
// optional fields.
const MinimalBase = `{"camera1_pos":[0,0,0],"devices":[{"name":"D1","min_x":0,"min_y":0,"min_z":0,"max_x":1,"max_y":1,"max_z":1}]}`

// SourceOption customizes the generated configuration directory.
type SourceOption func(*sourceBuilder)

type sourceBuilder struct {
	t     testing.TB
	files map[string]*string
}

// NewSourceDir writes a loadable configuration directory into a fresh temp
// dir and returns its path. By default both cameras use the sample
// calibration and the base source is MinimalBase.
func NewSourceDir(t testing.TB, opts ...SourceOption) string {
	t.Helper()

	camera := CalibrationJSON(t, config.SampleCalibration())
	base := MinimalBase
	b := &sourceBuilder{
		t: t,
		files: map[string]*string{
			config.Camera1File: &camera,
			config.Camera2File: ptr(camera),
			config.BaseFile:    &base,
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	dir := t.TempDir()
	for name, contents := range b.files {
		if contents == nil {
			continue
		}
		WriteSource(t, dir, name, *contents)
	}
	return dir
}

// WithBase replaces the base source contents.
func WithBase(contents string) SourceOption {
	return WithSource(config.BaseFile, contents)
}

// WithCamera1 replaces the camera1 calibration contents.
func WithCamera1(contents string) SourceOption {
	return WithSource(config.Camera1File, contents)
}

// WithCamera2 replaces the camera2 calibration contents.
func WithCamera2(contents string) SourceOption {
	return WithSource(config.Camera2File, contents)
}

// WithSource sets the contents of any file in the directory.
func WithSource(name, contents string) SourceOption {
	return func(b *sourceBuilder) {
		b.files[name] = ptr(contents)
	}
}

// WithoutSource leaves name out of the directory.
func WithoutSource(name string) SourceOption {
	return func(b *sourceBuilder) {
		b.files[name] = nil
	}
}

// WriteSource writes one file into dir, failing the test on error.
func WriteSource(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// CalibrationJSON renders cal in calibration-source form.
func CalibrationJSON(t testing.TB, cal config.CameraCalibration) string {
	t.Helper()
	doc := config.New(cal, cal, config.BaseConfig{}).Document().Camera1
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal calibration: %v", err)
	}
	return string(data)
}

func ptr(s string) *string {
	return &s
}
