package config

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"
)

// BaseConfig holds the service addresses, worker pool width and device layout.
//
// The four addresses are opaque local endpoints handed to the detection and
// capture services; they are not interpreted here.
type BaseConfig struct {
	Camera1Pos           r3.Vector
	Devices              []Device
	HPEAddr              string
	HeadDetectionAddr    string
	GestureDetectionAddr string
	PicamAddr            string
	PoolSize             uint
}

type baseFile struct {
	Camera1Pos           []float64         `json:"camera1_pos"`
	Devices              []json.RawMessage `json:"devices"`
	HPEAddr              *string           `json:"hpe_addr"`
	HeadDetectionAddr    *string           `json:"head_detection_addr"`
	GestureDetectionAddr *string           `json:"gesture_detection_addr"`
	PicamAddr            *string           `json:"picam_addr"`
	PoolSize             *uint             `json:"pool_size"`
}

// parseBase decodes a base source. Absent optional fields take their defaults
// here rather than later, so a value present in the file always wins.
func parseBase(data []byte) (BaseConfig, error) {
	var f baseFile
	if err := json.Unmarshal(data, &f); err != nil {
		return BaseConfig{}, err
	}

	cfg := DefaultBase()
	if f.Camera1Pos == nil {
		return BaseConfig{}, missingField("camera1_pos")
	}
	if len(f.Camera1Pos) != 3 {
		return BaseConfig{}, fmt.Errorf("camera1_pos: expected [x, y, z], got %d values", len(f.Camera1Pos))
	}
	cfg.Camera1Pos = r3.Vector{X: f.Camera1Pos[0], Y: f.Camera1Pos[1], Z: f.Camera1Pos[2]}

	if f.Devices == nil {
		return BaseConfig{}, missingField("devices")
	}
	cfg.Devices = make([]Device, 0, len(f.Devices))
	for i, raw := range f.Devices {
		var d Device
		if err := json.Unmarshal(raw, &d); err != nil {
			return BaseConfig{}, fmt.Errorf("devices[%d]: %w", i, err)
		}
		cfg.Devices = append(cfg.Devices, d)
	}

	if f.HPEAddr != nil {
		cfg.HPEAddr = *f.HPEAddr
	}
	if f.HeadDetectionAddr != nil {
		cfg.HeadDetectionAddr = *f.HeadDetectionAddr
	}
	if f.GestureDetectionAddr != nil {
		cfg.GestureDetectionAddr = *f.GestureDetectionAddr
	}
	if f.PicamAddr != nil {
		cfg.PicamAddr = *f.PicamAddr
	}
	if f.PoolSize != nil {
		cfg.PoolSize = *f.PoolSize
	}
	return cfg, nil
}
