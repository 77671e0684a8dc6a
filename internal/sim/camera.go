package sim

import "math"

// Camera tracks the player over the map. X and Y are the top-left corner of
// the view in map units; TileSize converts map units to screen pixels.
type Camera struct {
	X, Y     float64
	ViewW    int // view size in cells
	ViewH    int
	TileSize float64
	fov      *FOV
}

// NewCamera builds a camera showing viewW x viewH cells with a shadowcast
// field of view of fovRadius cells over g. A non-positive radius disables
// FOV culling.
func NewCamera(g *Grid, viewW, viewH int, tileSize float64, fovRadius int) *Camera {
	c := &Camera{ViewW: viewW, ViewH: viewH, TileSize: tileSize}
	if fovRadius > 0 {
		c.fov = NewFOV(g, fovRadius)
	}
	return c
}

// Follow centres the view on target, clamped to the map, and recomputes FOV.
func (c *Camera) Follow(target Vec2, g *Grid) {
	c.X = clampf(target.X-float64(c.ViewW)/2, 0, math.Max(0, float64(g.Width()-c.ViewW)))
	c.Y = clampf(target.Y-float64(c.ViewH)/2, 0, math.Max(0, float64(g.Height()-c.ViewH)))
	if c.fov != nil {
		c.fov.Compute(target.Cell())
	}
}

// WorldToScreen converts a map position to screen pixels.
func (c *Camera) WorldToScreen(p Vec2) (float64, float64) {
	return (p.X - c.X) * c.TileSize, (p.Y - c.Y) * c.TileSize
}

// InView reports whether p falls inside the view rectangle.
func (c *Camera) InView(p Vec2) bool {
	return p.X >= c.X && p.Y >= c.Y && p.X < c.X+float64(c.ViewW) && p.Y < c.Y+float64(c.ViewH)
}

// Visible reports whether p is inside the view and lit by the field of view.
func (c *Camera) Visible(p Vec2) bool {
	if !c.InView(p) {
		return false
	}
	if c.fov == nil {
		return true
	}
	cell := p.Cell()
	return c.fov.Visible(cell.X, cell.Y)
}

// CellVisible reports whether a map cell is lit, for tile drawing.
func (c *Camera) CellVisible(x, y int) bool {
	if c.fov == nil {
		return true
	}
	return c.fov.Visible(x, y)
}

// ActivationRadius is the distance at which idle grunts notice the player.
// It is the FOV radius, or zero without FOV.
func (c *Camera) ActivationRadius() float64 {
	if c.fov == nil {
		return 0
	}
	return float64(c.fov.Radius())
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
