package config

import (
	"handsfree/internal/memo"
	"handsfree/internal/spatial"
)

// DeviceIndex is the bounding-volume hierarchy over the configured devices.
type DeviceIndex = spatial.Tree[Device]

// deviceIndexOptions never caps depth and splits down to one device per leaf.
var deviceIndexOptions = spatial.Options{MaxDepth: 0, LeafSize: 1}

// Config is the loaded configuration: both camera calibrations, the base
// configuration and the lazily built device index.
//
// Load with Open, then call ApplyOverrides before handing the Config to other
// goroutines. After that point Camera1, Camera2 and Base are treated as read
// only. A Config must not be copied.
type Config struct {
	Camera1 CameraCalibration
	Camera2 CameraCalibration
	Base    BaseConfig

	index memo.Cell[*DeviceIndex]
	build func([]Device) *DeviceIndex
}

// New assembles a Config from already parsed parts.
func New(camera1, camera2 CameraCalibration, base BaseConfig) *Config {
	return &Config{
		Camera1: camera1,
		Camera2: camera2,
		Base:    base,
		build:   buildDeviceIndex,
	}
}

// Index returns the spatial index over Base.Devices, building it on the first
// call. Concurrent callers share a single build and all receive the same tree.
//
// The tree is built from a copy of the device list as it is at that moment.
// Changing Base.Devices afterwards does not affect the tree, and it is never
// rebuilt.
func (c *Config) Index() *DeviceIndex {
	return c.index.Get(func() *DeviceIndex {
		build := c.build
		if build == nil {
			build = buildDeviceIndex
		}
		return build(c.Base.Devices)
	})
}

// IndexBuilt reports whether Index has produced its tree.
func (c *Config) IndexBuilt() bool {
	return c.index.Ready()
}

// Camera returns the calibration for camera 1 or 2.
func (c *Config) Camera(n int) (CameraCalibration, bool) {
	switch n {
	case 1:
		return c.Camera1, true
	case 2:
		return c.Camera2, true
	default:
		return CameraCalibration{}, false
	}
}

func buildDeviceIndex(devices []Device) *DeviceIndex {
	return spatial.Build(devices, deviceIndexOptions)
}
