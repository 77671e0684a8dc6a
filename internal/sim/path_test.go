package sim

import "testing"

func TestGrid_OutOfBoundsIsNotWalkable(t *testing.T) {
	g := NewGrid(10, 8)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {10, 0}, {0, 8}} {
		if g.IsWalkable(c.X, c.Y) {
			t.Fatalf("cell %v is outside the map and must not be walkable", c)
		}
		if g.IsTransparent(c.X, c.Y) {
			t.Fatalf("cell %v is outside the map and must not be transparent", c)
		}
	}
	if !g.IsWalkable(9, 7) {
		t.Fatal("corner cell should be walkable on an open grid")
	}
}

func TestGrid_WithWallBlocksCells(t *testing.T) {
	g := NewGrid(10, 10, WithWall(2, 3, 2, 2))
	for _, c := range []Cell{{2, 3}, {3, 3}, {2, 4}, {3, 4}} {
		if g.IsWalkable(c.X, c.Y) {
			t.Fatalf("cell %v should be blocked by the wall", c)
		}
	}
	if !g.IsWalkable(4, 3) || !g.IsWalkable(2, 5) {
		t.Fatal("cells next to the wall should stay walkable")
	}
	if g.CanOccupy(Vec2{X: 2.5, Y: 3.5}) {
		t.Fatal("a position on a wall cell cannot be occupied")
	}
	if g.CanOccupy(Vec2{X: 10, Y: 0}) || g.CanOccupy(Vec2{X: -0.01, Y: 0}) {
		t.Fatal("positions outside [0,width) x [0,height) cannot be occupied")
	}
}

func TestPathfinder_StraightLine(t *testing.T) {
	pf := NewPathfinder(NewGrid(10, 10))
	path := pf.FindPath(Cell{0, 0}, Cell{5, 0})
	if len(path) != 6 {
		t.Fatalf("expected 6 cells, got %d: %v", len(path), path)
	}
	for i, c := range path {
		if c != (Cell{i, 0}) {
			t.Fatalf("step %d: expected (%d,0), got %v", i, i, c)
		}
	}
	if PathLength(path) != 5 {
		t.Fatalf("expected length 5, got %.2f", PathLength(path))
	}
}

func TestPathfinder_RoutesAroundWall(t *testing.T) {
	g := NewGrid(10, 10, WithWall(5, 0, 1, 9))
	pf := NewPathfinder(g)
	path := pf.FindPath(Cell{0, 0}, Cell{9, 0})
	if path == nil {
		t.Fatal("expected a path through the gap at the bottom")
	}
	if path[0] != (Cell{0, 0}) || path[len(path)-1] != (Cell{9, 0}) {
		t.Fatalf("path must run from start to goal, got %v", path)
	}
	throughGap := false
	for i, c := range path {
		if !g.IsWalkable(c.X, c.Y) {
			t.Fatalf("path crosses blocked cell %v", c)
		}
		if c == (Cell{5, 9}) {
			throughGap = true
		}
		if i > 0 {
			dx, dy := c.X-path[i-1].X, c.Y-path[i-1].Y
			if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
				t.Fatalf("non-adjacent step %v -> %v", path[i-1], c)
			}
		}
	}
	if !throughGap {
		t.Fatalf("expected the path to use the gap at (5,9): %v", path)
	}
}

func TestPathfinder_NoPathWhenSealed(t *testing.T) {
	pf := NewPathfinder(NewGrid(10, 10, WithWall(5, 0, 1, 10)))
	if path := pf.FindPath(Cell{0, 0}, Cell{9, 9}); path != nil {
		t.Fatalf("expected no path across a full wall, got %v", path)
	}
}

func TestPathfinder_EmptyForDegenerateQueries(t *testing.T) {
	pf := NewPathfinder(NewGrid(10, 10, WithBlocked(Cell{4, 4})))
	if path := pf.FindPath(Cell{3, 3}, Cell{3, 3}); path != nil {
		t.Fatalf("start == goal should give an empty path, got %v", path)
	}
	if path := pf.FindPath(Cell{0, 0}, Cell{4, 4}); path != nil {
		t.Fatalf("unwalkable goal should give an empty path, got %v", path)
	}
	if path := pf.FindPath(Cell{0, 0}, Cell{20, 0}); path != nil {
		t.Fatalf("out-of-bounds goal should give an empty path, got %v", path)
	}
}

func TestPathfinder_NoCornerCutting(t *testing.T) {
	pf := NewPathfinder(NewGrid(3, 3, WithBlocked(Cell{1, 0})))
	path := pf.FindPath(Cell{0, 0}, Cell{1, 1})
	if len(path) != 3 || path[1] != (Cell{0, 1}) {
		t.Fatalf("expected the diagonal past the blocked corner to be refused, got %v", path)
	}
}

func TestPathfinder_CountsEveryQuery(t *testing.T) {
	pf := NewPathfinder(NewGrid(5, 5))
	pf.FindPath(Cell{0, 0}, Cell{4, 4})
	pf.FindPath(Cell{1, 1}, Cell{1, 1})
	pf.FindPath(Cell{0, 0}, Cell{9, 9})
	if pf.Queries() != 3 {
		t.Fatalf("expected 3 queries, got %d", pf.Queries())
	}
}
