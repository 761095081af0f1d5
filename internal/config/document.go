package config

// Document is a serializable view of a Config using the same keys as the
// source files, for display in JSON, TOML or YAML.
type Document struct {
	Camera1 CalibrationDocument `json:"camera1" toml:"camera1" yaml:"camera1"`
	Camera2 CalibrationDocument `json:"camera2" toml:"camera2" yaml:"camera2"`
	Base    BaseDocument        `json:"base" toml:"base" yaml:"base"`
}

// CalibrationDocument mirrors a calibration source.
type CalibrationDocument struct {
	PosX      float64       `json:"pos_x" toml:"pos_x" yaml:"pos_x"`
	PosY      float64       `json:"pos_y" toml:"pos_y" yaml:"pos_y"`
	PosZ      float64       `json:"pos_z" toml:"pos_z" yaml:"pos_z"`
	ImgHeight uint32        `json:"img_height" toml:"img_height" yaml:"img_height"`
	ImgWidth  uint32        `json:"img_width" toml:"img_width" yaml:"img_width"`
	Intrinsic [3][3]float64 `json:"intrensic_params" toml:"intrensic_params" yaml:"intrensic_params"`
	Rotation  [3][3]float64 `json:"rotation_matrix" toml:"rotation_matrix" yaml:"rotation_matrix"`
}

// BaseDocument mirrors the base source.
type BaseDocument struct {
	Camera1Pos           [3]float64       `json:"camera1_pos" toml:"camera1_pos" yaml:"camera1_pos"`
	Devices              []DeviceDocument `json:"devices" toml:"devices" yaml:"devices"`
	HPEAddr              string           `json:"hpe_addr" toml:"hpe_addr" yaml:"hpe_addr"`
	HeadDetectionAddr    string           `json:"head_detection_addr" toml:"head_detection_addr" yaml:"head_detection_addr"`
	GestureDetectionAddr string           `json:"gesture_detection_addr" toml:"gesture_detection_addr" yaml:"gesture_detection_addr"`
	PicamAddr            string           `json:"picam_addr" toml:"picam_addr" yaml:"picam_addr"`
	PoolSize             uint             `json:"pool_size" toml:"pool_size" yaml:"pool_size"`
}

// DeviceDocument mirrors one device entry.
type DeviceDocument struct {
	Name string  `json:"name" toml:"name" yaml:"name"`
	MinX float64 `json:"min_x" toml:"min_x" yaml:"min_x"`
	MinY float64 `json:"min_y" toml:"min_y" yaml:"min_y"`
	MinZ float64 `json:"min_z" toml:"min_z" yaml:"min_z"`
	MaxX float64 `json:"max_x" toml:"max_x" yaml:"max_x"`
	MaxY float64 `json:"max_y" toml:"max_y" yaml:"max_y"`
	MaxZ float64 `json:"max_z" toml:"max_z" yaml:"max_z"`
}

// Document returns the effective configuration in source-file shape.
func (c *Config) Document() Document {
	devices := make([]DeviceDocument, 0, len(c.Base.Devices))
	for _, d := range c.Base.Devices {
		devices = append(devices, DeviceDocument{
			Name: d.Name,
			MinX: d.Min.X, MinY: d.Min.Y, MinZ: d.Min.Z,
			MaxX: d.Max.X, MaxY: d.Max.Y, MaxZ: d.Max.Z,
		})
	}
	return Document{
		Camera1: calibrationDocument(c.Camera1),
		Camera2: calibrationDocument(c.Camera2),
		Base: BaseDocument{
			Camera1Pos:           [3]float64{c.Base.Camera1Pos.X, c.Base.Camera1Pos.Y, c.Base.Camera1Pos.Z},
			Devices:              devices,
			HPEAddr:              c.Base.HPEAddr,
			HeadDetectionAddr:    c.Base.HeadDetectionAddr,
			GestureDetectionAddr: c.Base.GestureDetectionAddr,
			PicamAddr:            c.Base.PicamAddr,
			PoolSize:             c.Base.PoolSize,
		},
	}
}

func calibrationDocument(cal CameraCalibration) CalibrationDocument {
	return CalibrationDocument{
		PosX:      cal.Pos.X,
		PosY:      cal.Pos.Y,
		PosZ:      cal.Pos.Z,
		ImgHeight: cal.ImgHeight,
		ImgWidth:  cal.ImgWidth,
		Intrinsic: cal.Intrinsic.Rows(),
		Rotation:  cal.Rotation.Rows(),
	}
}
