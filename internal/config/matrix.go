package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Mat3 is a 3x3 matrix indexed [row][column].
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Mul returns m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*o[0][c] + m[r][1]*o[1][c] + m[r][2]*o[2][c]
		}
	}
	return out
}

// MulVec returns m·v.
func (m Mat3) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns m⁻¹, or false when m is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat3{}, false
	}
	inv := 1 / det
	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}, true
}

// IsOrthonormal reports whether m·mᵀ is the identity within tol.
func (m Mat3) IsOrthonormal(tol float64) bool {
	p := m.Mul(m.Transpose())
	id := Identity3()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(p[r][c]-id[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

// IsUpperTriangular reports whether every entry below the diagonal is zero.
func (m Mat3) IsUpperTriangular() bool {
	return m[1][0] == 0 && m[2][0] == 0 && m[2][1] == 0
}

// Rows returns the matrix as nested row arrays.
func (m Mat3) Rows() [3][3]float64 {
	return [3][3]float64(m)
}

// UnmarshalJSON accepts either three rows of three numbers, or a flat list of
// nine numbers stored column by column.
func (m *Mat3) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("expected a 3x3 matrix")
	}
	switch len(raw) {
	case 3:
		var rows [][]float64
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("expected a 3x3 matrix: %w", err)
		}
		for r, row := range rows {
			if len(row) != 3 {
				return fmt.Errorf("expected a 3x3 matrix, row %d has %d values", r, len(row))
			}
			copy(m[r][:], row)
		}
		return nil
	case 9:
		var flat []float64
		if err := json.Unmarshal(data, &flat); err != nil {
			return fmt.Errorf("expected a 3x3 matrix: %w", err)
		}
		for c := 0; c < 3; c++ {
			for r := 0; r < 3; r++ {
				m[r][c] = flat[c*3+r]
			}
		}
		return nil
	default:
		return fmt.Errorf("expected a 3x3 matrix, got %d entries", len(raw))
	}
}

// MarshalJSON writes the matrix as three rows.
func (m Mat3) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}
