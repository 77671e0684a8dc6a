package sim

import (
	"container/heap"
	"math"
)

// diagonalCost matches the legacy 8-way A* weighting.
const diagonalCost = 1.41

// Pathfinder runs A* over a Grid. It keeps no path cache: every call is a
// fresh search, so callers always steer toward the target's current cell.
type Pathfinder struct {
	grid    *Grid
	queries int
}

// NewPathfinder returns a pathfinder bound to g.
func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{grid: g}
}

// Queries returns how many FindPath calls have been made.
func (pf *Pathfinder) Queries() int { return pf.queries }

type pathNode struct {
	c      Cell
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	fi, fj := ol[i].g+ol[i].h, ol[j].g+ol[j].h
	if fi == fj {
		return ol[i].h < ol[j].h
	}
	return fi < fj
}
func (ol openList) Swap(i, j int)       { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x interface{}) { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

var dirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// octile is the admissible heuristic for 8-way movement with diagonalCost.
func octile(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return dx + dy + (diagonalCost-2)*math.Min(dx, dy)
}

// FindPath returns the cells from start to goal, both inclusive.
// The result is empty when start == goal, when either end is not walkable,
// or when the goal is unreachable. Callers treat empty as "do not move".
func (pf *Pathfinder) FindPath(start, goal Cell) []Cell {
	pf.queries++
	g := pf.grid
	if start == goal {
		return nil
	}
	if !g.IsWalkable(start.X, start.Y) || !g.IsWalkable(goal.X, goal.Y) {
		return nil
	}

	key := func(c Cell) int { return c.Y*g.cols + c.X }

	first := &pathNode{c: start, h: octile(start, goal)}
	ol := &openList{first}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := map[int]*pathNode{key(start): first}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.c == goal {
			return buildPath(cur)
		}
		k := key(cur.c)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range dirs {
			n := Cell{cur.c.X + d[0], cur.c.Y + d[1]}
			if !g.IsWalkable(n.X, n.Y) {
				continue
			}
			diagonal := d[0] != 0 && d[1] != 0
			// No corner cutting past blocked cells.
			if diagonal && (!g.IsWalkable(cur.c.X+d[0], cur.c.Y) || !g.IsWalkable(cur.c.X, cur.c.Y+d[1])) {
				continue
			}
			nk := key(n)
			if closed[nk] {
				continue
			}
			cost := 1.0
			if diagonal {
				cost = diagonalCost
			}
			ng := cur.g + cost
			if prev, ok := best[nk]; ok && ng >= prev.g {
				continue
			}
			node := &pathNode{c: n, g: ng, h: octile(n, goal), parent: cur}
			best[nk] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

func buildPath(end *pathNode) []Cell {
	var cells []Cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.c)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// PathLength sums the step costs of a path returned by FindPath.
func PathLength(path []Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		if path[i].X != path[i-1].X && path[i].Y != path[i-1].Y {
			total += diagonalCost
		} else {
			total++
		}
	}
	return total
}
