package torch_maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Implements the disjoint set data structure from CLRS.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

// Returns a new disjointSet containing only itself.
func newDisjointSet() *disjointSet {
	toReturn := disjointSet{
		rank: 0,
	}
	toReturn.parent = &toReturn
	return &toReturn
}

// Finds the unique "root" of a disjoint set. May adjust parent pointers.
func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}
	return s.parent
}

// Adjusts both s and other to become part of the same set. Returns false if
// they already were. May adjust parent pointers and ranks.
func (s *disjointSet) union(other *disjointSet) bool {
	x := s.findSet()
	y := other.findSet()
	if x == y {
		return false
	}
	if x.rank > y.rank {
		y.parent = x
		return true
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
	return true
}

// Describes the shape of the graph formed by a grid's path tiles, where two
// path tiles are connected if they're horizontally or vertically adjacent.
type Stats struct {
	PathCells int
	// The number of adjacent pairs of path tiles.
	Connections int
	// The number of separate groups of path tiles.
	Components int
	// The number of independent cycles. This is 0 for a perfect maze, and
	// goes up by one for every loop-creating wall that gets opened.
	Cycles int
}

// Returns true if the path tiles form a single tree: one component, no
// cycles.
func (s Stats) IsPerfect() bool {
	return (s.PathCells > 0) && (s.Components == 1) && (s.Cycles == 0)
}

func (s Stats) String() string {
	return fmt.Sprintf("%d path cells, %d connections, %d components, "+
		"%d cycles", s.PathCells, s.Connections, s.Components, s.Cycles)
}

// Computes connectivity statistics for g by joining adjacent path tiles in a
// disjoint-set forest. Any connection that joins two tiles already in the
// same set closes a cycle.
func Analyze(g *Grid) Stats {
	var toReturn Stats
	sets := make([]*disjointSet, len(g.cells))
	for i, t := range g.cells {
		if t == Path {
			sets[i] = newDisjointSet()
			toReturn.PathCells++
		}
	}
	toReturn.Components = toReturn.PathCells

	// Only look right and down, every pair is still seen once.
	for y := 0; y < g.height; y++ {
		rowStart := y * g.width
		for x := 0; x < g.width; x++ {
			index := rowStart + x
			if sets[index] == nil {
				continue
			}
			if (x < (g.width - 1)) && (sets[index+1] != nil) {
				toReturn.Connections++
				if sets[index].union(sets[index+1]) {
					toReturn.Components--
				} else {
					toReturn.Cycles++
				}
			}
			if (y < (g.height - 1)) && (sets[index+g.width] != nil) {
				toReturn.Connections++
				if sets[index].union(sets[index+g.width]) {
					toReturn.Components--
				} else {
					toReturn.Cycles++
				}
			}
		}
	}
	return toReturn
}

// Returns the set of path tiles reachable from start by moving up, down, left
// or right through path tiles. Returns an empty set if start isn't a path.
func Reachable(g *Grid, start Cell) mapset.Set[Cell] {
	visited := mapset.New[Cell]()
	if !g.IsPath(start.X, start.Y) {
		return visited
	}
	visited.Put(start)
	queue := make([]Cell, 0, len(g.cells)/2)
	queue = append(queue, start)
	for len(queue) != 0 {
		current := queue[0]
		queue = queue[1:]
		neighbors := [4]Cell{
			{X: current.X, Y: current.Y - 1},
			{X: current.X + 1, Y: current.Y},
			{X: current.X, Y: current.Y + 1},
			{X: current.X - 1, Y: current.Y},
		}
		for _, n := range neighbors {
			if !g.IsPath(n.X, n.Y) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}

// Returns true if every path tile in g can be reached from the start cell.
func FullyConnected(g *Grid) bool {
	return Reachable(g, StartCell).Size() == g.CountPaths()
}
