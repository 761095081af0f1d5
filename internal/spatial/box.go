package spatial

import (
	"math"

	"github.com/golang/geo/r3"
)

// Box is an axis-aligned bounding box given by its two extreme corners.
type Box struct {
	Min r3.Vector
	Max r3.Vector
}

// NewBox returns the box spanning min and max as given. The corners are not
// reordered; see Valid.
func NewBox(min, max r3.Vector) Box {
	return Box{Min: min, Max: max}
}

// Valid reports whether Min <= Max on every axis. An invalid box contains no
// point and overlaps nothing, but it is still stored and indexed.
func (b Box) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Center returns the midpoint of the two corners.
func (b Box) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the per-axis extent.
func (b Box) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside b, boundary included.
func (b Box) Contains(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether b and o share at least one point.
func (b Box) Overlaps(o Box) bool {
	if !b.Valid() || !o.Valid() {
		return false
	}
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// Union returns the smallest box enclosing both corners of b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: r3.Vector{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)},
	}
}

// IntersectRay returns the parametric distance t >= 0 at which the ray
// origin + t*dir first touches b. A ray starting inside b reports t = 0.
func (b Box) IntersectRay(origin, dir r3.Vector) (float64, bool) {
	if !b.Valid() {
		return 0, false
	}
	tmin := 0.0
	tmax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o := component(origin, axis)
		d := component(dir, axis)
		lo := component(b.Min, axis)
		hi := component(b.Max, axis)
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

func component(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
