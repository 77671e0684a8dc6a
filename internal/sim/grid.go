package sim

// Grid is the walkability and transparency map. It is built once and never
// mutated afterwards; every query is bounds-checked.
type Grid struct {
	cols        int
	rows        int
	walkable    []bool
	transparent []bool
}

// GridOption adjusts a grid while it is being built.
type GridOption func(*Grid)

// WithBlocked marks cells as neither walkable nor transparent.
func WithBlocked(cells ...Cell) GridOption {
	return func(g *Grid) {
		for _, c := range cells {
			if g.InBounds(c.X, c.Y) {
				g.walkable[g.index(c.X, c.Y)] = false
				g.transparent[g.index(c.X, c.Y)] = false
			}
		}
	}
}

// WithWall blocks the axis-aligned rectangle of cells starting at (x,y).
func WithWall(x, y, w, h int) GridOption {
	return func(g *Grid) {
		for cy := y; cy < y+h; cy++ {
			for cx := x; cx < x+w; cx++ {
				WithBlocked(Cell{cx, cy})(g)
			}
		}
	}
}

// NewGrid builds a cols x rows grid where every cell is walkable and transparent
// unless an option says otherwise.
func NewGrid(cols, rows int, opts ...GridOption) *Grid {
	g := &Grid{
		cols:        cols,
		rows:        rows,
		walkable:    make([]bool, cols*rows),
		transparent: make([]bool, cols*rows),
	}
	for i := range g.walkable {
		g.walkable[i] = true
		g.transparent[i] = true
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Grid) index(x, y int) int { return y*g.cols + x }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cols }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.rows }

// InBounds reports whether (x,y) lies inside [0,width) x [0,height).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

// IsWalkable returns false for out-of-bounds cells.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.walkable[g.index(x, y)]
}

// IsTransparent returns false for out-of-bounds cells.
func (g *Grid) IsTransparent(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.transparent[g.index(x, y)]
}

// CanOccupy reports whether a continuous position lies on a walkable cell.
func (g *Grid) CanOccupy(p Vec2) bool {
	if p.X < 0 || p.Y < 0 || p.X >= float64(g.cols) || p.Y >= float64(g.rows) {
		return false
	}
	c := p.Cell()
	return g.IsWalkable(c.X, c.Y)
}

// Contains reports whether p lies inside the map rectangle, regardless of walkability.
func (g *Grid) Contains(p Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(g.cols) && p.Y < float64(g.rows)
}
