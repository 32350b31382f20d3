package geom

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

const epsilon = 1e-9

// Point is an integer position in world space. +X is east, +Y is north and +Z is up.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Sub returns the vector pointing from o to p.
func (p Point) Sub(o Point) Vector {
	return Vector{
		X: float64(p.X - o.X),
		Y: float64(p.Y - o.Y),
		Z: float64(p.Z - o.Z),
	}
}

// Vector is a direction or displacement in world space.
type Vector struct {
	X float64
	Y float64
	Z float64
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l < epsilon {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Angle returns the angle between v and o in radians, in the range [0, π].
// If either vector has no length the angle is 0.
func (v Vector) Angle(o Vector) float64 {
	lv, lo := v.Length(), o.Length()
	if lv < epsilon || lo < epsilon {
		return 0
	}
	c := v.Dot(o) / (lv * lo)
	// Rounding can push the cosine just outside [-1, 1].
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// ApproxEqual reports whether every component of v is within a small epsilon of o.
func (v Vector) ApproxEqual(o Vector) bool {
	return math.Abs(v.X-o.X) < epsilon &&
		math.Abs(v.Y-o.Y) < epsilon &&
		math.Abs(v.Z-o.Z) < epsilon
}
