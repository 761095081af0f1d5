package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// Source labels used in SourceError.
const (
	SourceDirectory = "configuration directory"
	SourceCamera1   = "camera1 calibration"
	SourceCamera2   = "camera2 calibration"
	SourceBase      = "base configuration"
)

// Open loads the three sources from dir, which defaults to the current
// directory when empty. The sources are read one after another and the first
// failure is returned; no partially loaded Config is ever produced.
func Open(dir string) (*Config, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, &SourceError{Source: SourceDirectory, Path: dir, Kind: KindUnreadable, Err: err}
	}
	if !info.IsDir() {
		return nil, &SourceError{Source: SourceDirectory, Path: dir, Kind: KindUnreadable, Err: errors.New("not a directory")}
	}

	camera1, err := readCalibration(SourceCamera1, filepath.Join(dir, Camera1File))
	if err != nil {
		return nil, err
	}
	camera2, err := readCalibration(SourceCamera2, filepath.Join(dir, Camera2File))
	if err != nil {
		return nil, err
	}

	var base BaseConfig
	if err := readSource(SourceBase, filepath.Join(dir, BaseFile), func(data []byte) error {
		var perr error
		base, perr = parseBase(data)
		return perr
	}); err != nil {
		return nil, err
	}

	return New(camera1, camera2, base), nil
}

func readCalibration(label, path string) (CameraCalibration, error) {
	var cal CameraCalibration
	err := readSource(label, path, func(data []byte) error {
		var f calibrationFile
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		var cerr error
		cal, cerr = f.calibration()
		return cerr
	})
	return cal, err
}

// readSource reads path and hands the comment-stripped bytes to decode,
// classifying any failure for the caller.
func readSource(label, path string, decode func([]byte) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &SourceError{Source: label, Path: path, Kind: KindUnreadable, Err: err}
	}
	if err := decode(jsonc.ToJSON(data)); err != nil {
		return &SourceError{Source: label, Path: path, Kind: KindMalformed, Err: fmt.Errorf("parse: %w", err)}
	}
	return nil
}
