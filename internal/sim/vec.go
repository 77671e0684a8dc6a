package sim

import "math"

// Vec2 is a continuous position or direction in map units (1 unit = 1 cell).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2  { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64          { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64   { return v.Sub(o).Len() }
func (v Vec2) DistSq(o Vec2) float64 { d := v.Sub(o); return d.X*d.X + d.Y*d.Y }
func (v Vec2) Cell() Cell            { return Cell{int(math.Floor(v.X)), int(math.Floor(v.Y))} }

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate turns v by angle radians (positive = clockwise on screen, since y grows down).
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Center returns the world-space centre of the cell.
func (c Cell) Center() Vec2 {
	return Vec2{float64(c.X) + 0.5, float64(c.Y) + 0.5}
}

func degToRad(d float64) float64 { return d * math.Pi / 180.0 }
