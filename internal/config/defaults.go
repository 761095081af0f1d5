package config

const (
	defaultHPEAddr              = "/tmp/hpe.sock"
	defaultHeadDetectionAddr    = "/tmp/head.sock"
	defaultGestureDetectionAddr = "/tmp/gesture.sock"
	defaultPicamAddr            = "/tmp/picam.sock"
	defaultPoolSize             = 3
)

// Source file names inside a configuration directory.
const (
	Camera1File = "camera1-params.json"
	Camera2File = "camera2-params.json"
	BaseFile    = "config.json"
)

// DefaultBase returns a BaseConfig holding only the documented defaults. The
// required fields (Camera1Pos, Devices) are left zero.
func DefaultBase() BaseConfig {
	return BaseConfig{
		HPEAddr:              defaultHPEAddr,
		HeadDetectionAddr:    defaultHeadDetectionAddr,
		GestureDetectionAddr: defaultGestureDetectionAddr,
		PicamAddr:            defaultPicamAddr,
		PoolSize:             defaultPoolSize,
	}
}
