package config

import (
	"encoding/json"

	"github.com/golang/geo/r3"

	"handsfree/internal/spatial"
)

// Device is a named, axis-aligned region of the room that gestures can target.
type Device struct {
	Name string
	Min  r3.Vector
	Max  r3.Vector
}

// Bounds implements spatial.Item.
func (d Device) Bounds() spatial.Box {
	return spatial.NewBox(d.Min, d.Max)
}

type deviceFile struct {
	Name *string  `json:"name"`
	MinX *float64 `json:"min_x"`
	MinY *float64 `json:"min_y"`
	MinZ *float64 `json:"min_z"`
	MaxX *float64 `json:"max_x"`
	MaxY *float64 `json:"max_y"`
	MaxZ *float64 `json:"max_z"`
}

// UnmarshalJSON decodes the flat {name, min_x, ..., max_z} form. Every field
// is required.
func (d *Device) UnmarshalJSON(data []byte) error {
	var f deviceFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.Name == nil {
		return missingField("name")
	}
	for _, field := range []struct {
		name  string
		value *float64
	}{
		{"min_x", f.MinX}, {"min_y", f.MinY}, {"min_z", f.MinZ},
		{"max_x", f.MaxX}, {"max_y", f.MaxY}, {"max_z", f.MaxZ},
	} {
		if field.value == nil {
			return missingField(field.name)
		}
	}
	*d = Device{
		Name: *f.Name,
		Min:  r3.Vector{X: *f.MinX, Y: *f.MinY, Z: *f.MinZ},
		Max:  r3.Vector{X: *f.MaxX, Y: *f.MaxY, Z: *f.MaxZ},
	}
	return nil
}
