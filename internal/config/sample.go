package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed samples/*.json
var samples embed.FS

// SampleFiles lists the files written by WriteSamples, in load order.
var SampleFiles = []string{Camera1File, Camera2File, BaseFile}

// WriteSamples writes a commented example of each source into dir and returns
// the paths written. Without overwrite, any existing target aborts the call
// before a single file is written.
func WriteSamples(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	targets := make([]string, 0, len(SampleFiles))
	for _, name := range SampleFiles {
		target := filepath.Join(dir, name)
		if !overwrite {
			if _, err := os.Stat(target); err == nil {
				return nil, fmt.Errorf("%s already exists (use --overwrite to replace it)", target)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("check %s: %w", target, err)
			}
		}
		targets = append(targets, target)
	}

	for i, name := range SampleFiles {
		data, err := samples.ReadFile("samples/" + name)
		if err != nil {
			return nil, fmt.Errorf("read embedded sample %s: %w", name, err)
		}
		if err := os.WriteFile(targets[i], data, 0o644); err != nil {
			return nil, fmt.Errorf("write sample %s: %w", name, err)
		}
	}
	return targets, nil
}
