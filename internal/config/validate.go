package config

import (
	"fmt"
	"math"
	"strings"
)

const rotationTolerance = 1e-6

// Lint reports values that load fine but are likely to break geometry or
// service wiring downstream. Nothing here is fatal: Open accepts all of it.
func (c *Config) Lint() []string {
	var warnings []string
	warnings = append(warnings, lintCamera("camera1", c.Camera1)...)
	warnings = append(warnings, lintCamera("camera2", c.Camera2)...)
	warnings = append(warnings, c.Base.lint()...)
	return warnings
}

func lintCamera(label string, cal CameraCalibration) []string {
	var warnings []string
	fx, fy := cal.FocalLengths()
	if fx == 0 || fy == 0 {
		warnings = append(warnings, fmt.Sprintf("%s.intrensic_params has a zero focal length (fx=%g, fy=%g)", label, fx, fy))
	}
	if !cal.Intrinsic.IsUpperTriangular() {
		warnings = append(warnings, label+".intrensic_params is not upper triangular")
	}
	if !cal.Rotation.IsOrthonormal(rotationTolerance) {
		warnings = append(warnings, fmt.Sprintf("%s.rotation_matrix is not orthonormal (det=%.6g)", label, cal.Rotation.Det()))
	}
	if cal.ImgHeight == 0 || cal.ImgWidth == 0 {
		warnings = append(warnings, fmt.Sprintf("%s image size is %dx%d", label, cal.ImgWidth, cal.ImgHeight))
	}
	return warnings
}

func (b BaseConfig) lint() []string {
	var warnings []string
	seen := make(map[string]int, len(b.Devices))
	for i, d := range b.Devices {
		if strings.TrimSpace(d.Name) == "" {
			warnings = append(warnings, fmt.Sprintf("devices[%d] has an empty name", i))
		} else if prev, ok := seen[d.Name]; ok {
			warnings = append(warnings, fmt.Sprintf("devices[%d] reuses the name %q from devices[%d]", i, d.Name, prev))
		} else {
			seen[d.Name] = i
		}
		if !d.Bounds().Valid() {
			warnings = append(warnings, fmt.Sprintf("devices[%d] %q has min > max on some axis", i, d.Name))
		}
	}
	for _, addr := range []struct{ key, value string }{
		{"hpe_addr", b.HPEAddr},
		{"head_detection_addr", b.HeadDetectionAddr},
		{"gesture_detection_addr", b.GestureDetectionAddr},
		{"picam_addr", b.PicamAddr},
	} {
		if strings.TrimSpace(addr.value) == "" {
			warnings = append(warnings, addr.key+" is empty")
		}
	}
	if b.PoolSize == 0 {
		warnings = append(warnings, "pool_size is 0")
	} else if uint64(b.PoolSize) > math.MaxInt64 {
		warnings = append(warnings, fmt.Sprintf("pool_size %d exceeds the largest TOML integer (%d)", b.PoolSize, int64(math.MaxInt64)))
	}
	return warnings
}
