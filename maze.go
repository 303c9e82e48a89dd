// This defines a library for generating the mazes used by the torch maze game.
// Mazes are carved as perfect mazes with a recursive backtracker, then have a
// fraction of their walls reopened to create loops. Door, key and torch
// locations are picked from the finished grid.
package torch_maze

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Returned (wrapped) when a loop rate is outside of [0, 1).
var ErrInvalidLoopRate = errors.New("invalid loop rate")

// The offsets to the four neighbors visited by the carver, in the order up,
// right, down, left. They're two tiles away so the tile in between can be
// carved as a corridor.
var carveDirections = [4]Cell{
	{X: 0, Y: -2},
	{X: 2, Y: 0},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
}

// Returns a logger that throws everything away, used when callers don't
// provide one.
func discardLogger() logrus.FieldLogger {
	toReturn := logrus.New()
	toReturn.Out = io.Discard
	return toReturn
}

// Returns rng, or a new time-seeded generator if rng is nil.
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func checkLoopRate(loopRate float64) error {
	if math.IsNaN(loopRate) || (loopRate < 0) || (loopRate >= 1) {
		return fmt.Errorf("%w: %f is not in [0, 1)", ErrInvalidLoopRate,
			loopRate)
	}
	return nil
}

// Generates a new maze: carves a perfect maze, opens loops and seals the
// border. The width and height must be odd and at least 5. The rng is the
// only source of randomness; a nil rng is replaced with a time-seeded one.
func GenerateMaze(width, height int, loopRate float64,
	rng *rand.Rand) (*Grid, error) {
	return generateMaze(width, height, loopRate, ensureRNG(rng),
		discardLogger())
}

func generateMaze(width, height int, loopRate float64, rng *rand.Rand,
	log logrus.FieldLogger) (*Grid, error) {
	e := checkDimensions(width, height, 5)
	if e != nil {
		return nil, e
	}
	e = checkLoopRate(loopRate)
	if e != nil {
		return nil, e
	}
	toReturn, e := NewGrid(width, height)
	if e != nil {
		return nil, e
	}
	CarvePerfectMaze(toReturn, rng)
	opened, e := InjectLoops(toReturn, loopRate, rng)
	if e != nil {
		return nil, fmt.Errorf("Error adding loops: %w", e)
	}
	SealBoundary(toReturn)
	log.WithFields(logrus.Fields{
		"width":     width,
		"height":    height,
		"loopRate":  loopRate,
		"opened":    opened,
		"pathCells": toReturn.CountPaths(),
	}).Debug("Generated maze")
	return toReturn, nil
}

// One entry in the carver's explicit stack. Holds the cell being visited, its
// shuffled directions, and which direction to try next.
type carveFrame struct {
	cell Cell
	dirs [4]Cell
	next int
}

func newCarveFrame(c Cell, rng *rand.Rand) carveFrame {
	toReturn := carveFrame{
		cell: c,
		dirs: carveDirections,
	}
	rng.Shuffle(len(toReturn.dirs), func(i, j int) {
		toReturn.dirs[i], toReturn.dirs[j] = toReturn.dirs[j],
			toReturn.dirs[i]
	})
	return toReturn
}

// Returns true if (x, y) can be the target of a carve step. Targets must stay
// off of the outer ring, so both coordinates must be in [1, dimension - 2].
func (g *Grid) inCarveBounds(x, y int) bool {
	return (x >= 1) && (y >= 1) && (x <= (g.width - 2)) &&
		(y <= (g.height - 2))
}

// Carves a perfect maze into g, starting from StartCell, using a depth-first
// recursive backtracker. The grid is expected to be all walls with odd
// dimensions. Every odd-coordinate interior cell ends up connected to the
// start by exactly one route.
//
// Frames are kept in a slice rather than on the call stack, which never holds
// more than (width*height)/4 of them.
func CarvePerfectMaze(g *Grid, rng *rand.Rand) {
	rng = ensureRNG(rng)
	g.Set(StartCell.X, StartCell.Y, Path)
	stack := make([]carveFrame, 0, (g.width*g.height)/4+1)
	stack = append(stack, newCarveFrame(StartCell, rng))
	for len(stack) != 0 {
		top := &(stack[len(stack)-1])
		if top.next >= len(top.dirs) {
			// Every direction has been tried; backtrack.
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++
		nx := top.cell.X + d.X
		ny := top.cell.Y + d.Y
		if !g.inCarveBounds(nx, ny) || (g.Get(nx, ny) != Wall) {
			continue
		}
		g.Set(top.cell.X+d.X/2, top.cell.Y+d.Y/2, Path)
		g.Set(nx, ny, Path)
		// top may be invalidated by this append, but it isn't used again.
		stack = append(stack, newCarveFrame(Cell{X: nx, Y: ny}, rng))
	}
}

// Returns every interior wall that sits directly between two path tiles,
// either horizontally or vertically. Opening any of these walls joins two
// already-connected corridors, so it can never disconnect anything. The
// result is in row-major order.
func LoopCandidates(g *Grid) []Cell {
	toReturn := make([]Cell, 0, 64)
	for y := 1; y < (g.height - 1); y++ {
		for x := 1; x < (g.width - 1); x++ {
			if g.isBridge(x, y) {
				toReturn = append(toReturn, Cell{X: x, Y: y})
			}
		}
	}
	return toReturn
}

// Opens floor(len(LoopCandidates(g)) * loopRate) randomly chosen candidate
// walls, turning the maze's spanning tree into a graph with cycles. Returns
// the number of walls that were opened. A loopRate of 0 leaves g unchanged.
func InjectLoops(g *Grid, loopRate float64, rng *rand.Rand) (int, error) {
	e := checkLoopRate(loopRate)
	if e != nil {
		return 0, e
	}
	candidates := LoopCandidates(g)
	removeCount := int(math.Floor(float64(len(candidates)) * loopRate))
	if removeCount == 0 {
		return 0, nil
	}
	rng = ensureRNG(rng)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates[:removeCount] {
		g.Set(c.X, c.Y, Path)
	}
	return removeCount, nil
}

// Forces every tile on the outermost ring of the grid back to Wall. Calling
// this more than once has no further effect.
func SealBoundary(g *Grid) {
	for x := 0; x < g.width; x++ {
		g.Set(x, 0, Wall)
		g.Set(x, g.height-1, Wall)
	}
	for y := 0; y < g.height; y++ {
		g.Set(0, y, Wall)
		g.Set(g.width-1, y, Wall)
	}
}
