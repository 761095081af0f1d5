package config

import (
	"errors"

	"github.com/golang/geo/r3"
)

// CameraCalibration describes one camera's pose and intrinsics.
//
// Intrinsic is the pinhole camera matrix K (focal lengths on the diagonal,
// principal point in the last column). Rotation orients the camera frame in
// world coordinates. Neither matrix is checked on load; see Lint.
type CameraCalibration struct {
	Pos       r3.Vector
	ImgHeight uint32
	ImgWidth  uint32
	Intrinsic Mat3
	Rotation  Mat3
}

// SampleCalibration returns a fixed calibration for development and tests
// when no calibrated camera is available: a 1280x720 sensor at the origin
// looking along the world axes.
func SampleCalibration() CameraCalibration {
	return CameraCalibration{
		ImgHeight: 720,
		ImgWidth:  1280,
		Intrinsic: Mat3{
			{1.425355597530572e3, 0, 7.255278875079987e2},
			{0, 1.4039605486267199e3, 4.003098490699321e2},
			{0, 0, 1},
		},
		Rotation: Identity3(),
	}
}

// FocalLengths returns fx and fy.
func (c CameraCalibration) FocalLengths() (float64, float64) {
	return c.Intrinsic[0][0], c.Intrinsic[1][1]
}

// PrincipalPoint returns the principal point in pixels.
func (c CameraCalibration) PrincipalPoint() (float64, float64) {
	return c.Intrinsic[0][2], c.Intrinsic[1][2]
}

// PixelRay returns the world-space ray through pixel (u, v): it starts at the
// camera position and points along R·K⁻¹·[u v 1]ᵀ, normalized.
func (c CameraCalibration) PixelRay(u, v float64) (origin, dir r3.Vector, err error) {
	kinv, ok := c.Intrinsic.Inverse()
	if !ok {
		return r3.Vector{}, r3.Vector{}, errors.New("intrinsic matrix is singular")
	}
	d := c.Rotation.MulVec(kinv.MulVec(r3.Vector{X: u, Y: v, Z: 1}))
	if d.Norm() == 0 {
		return r3.Vector{}, r3.Vector{}, errors.New("pixel ray has zero length")
	}
	return c.Pos, d.Normalize(), nil
}

type calibrationFile struct {
	PosX      *float64 `json:"pos_x"`
	PosY      *float64 `json:"pos_y"`
	PosZ      *float64 `json:"pos_z"`
	ImgHeight *uint32  `json:"img_height"`
	ImgWidth  *uint32  `json:"img_width"`
	Intrinsic *Mat3    `json:"intrensic_params"`
	Rotation  *Mat3    `json:"rotation_matrix"`
}

func (f calibrationFile) calibration() (CameraCalibration, error) {
	switch {
	case f.PosX == nil:
		return CameraCalibration{}, missingField("pos_x")
	case f.PosY == nil:
		return CameraCalibration{}, missingField("pos_y")
	case f.PosZ == nil:
		return CameraCalibration{}, missingField("pos_z")
	case f.ImgHeight == nil:
		return CameraCalibration{}, missingField("img_height")
	case f.ImgWidth == nil:
		return CameraCalibration{}, missingField("img_width")
	case f.Intrinsic == nil:
		return CameraCalibration{}, missingField("intrensic_params")
	case f.Rotation == nil:
		return CameraCalibration{}, missingField("rotation_matrix")
	}
	return CameraCalibration{
		Pos:       r3.Vector{X: *f.PosX, Y: *f.PosY, Z: *f.PosZ},
		ImgHeight: *f.ImgHeight,
		ImgWidth:  *f.ImgWidth,
		Intrinsic: *f.Intrinsic,
		Rotation:  *f.Rotation,
	}, nil
}
