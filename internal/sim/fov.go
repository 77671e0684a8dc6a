package sim

// octants transforms row/column offsets into the eight octants.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// FOV is a recursive-shadowcast field of view over a Grid's transparency.
// It is recomputed every tick from the player's cell.
type FOV struct {
	grid    *Grid
	radius  int
	origin  Cell
	visible []bool
}

// NewFOV allocates the visibility buffer for g.
func NewFOV(g *Grid, radius int) *FOV {
	return &FOV{grid: g, radius: radius, visible: make([]bool, g.Width()*g.Height())}
}

// Radius returns the light radius in cells.
func (f *FOV) Radius() int { return f.radius }

// Compute recalculates visibility from origin.
func (f *FOV) Compute(origin Cell) {
	for i := range f.visible {
		f.visible[i] = false
	}
	f.origin = origin
	if f.radius <= 0 || !f.grid.InBounds(origin.X, origin.Y) {
		return
	}
	f.visible[f.grid.index(origin.X, origin.Y)] = true
	for i := 0; i < 8; i++ {
		f.cast(1, 1.0, 0.0, octants[0][i], octants[1][i], octants[2][i], octants[3][i])
	}
}

// Visible reports whether cell (x,y) was lit by the last Compute.
func (f *FOV) Visible(x, y int) bool {
	if !f.grid.InBounds(x, y) {
		return false
	}
	return f.visible[f.grid.index(x, y)]
}

func (f *FOV) cast(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(f.radius * f.radius)
	for j := row; j <= f.radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start
		for {
			dx++
			if dx > 0 {
				break
			}
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}
			x := f.origin.X + dx*xx + dy*xy
			y := f.origin.Y + dx*yx + dy*yy
			if f.grid.InBounds(x, y) && float64(dx*dx+dy*dy) < radiusSq {
				f.visible[f.grid.index(x, y)] = true
			}
			opaque := !f.grid.IsTransparent(x, y)
			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < f.radius {
				blocked = true
				f.cast(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
