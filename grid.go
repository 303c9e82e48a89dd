package torch_maze

import (
	"errors"
	"fmt"
	"strings"
)

// Returned (wrapped) when a grid or maze is requested with unusable
// dimensions.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// The contents of a single grid tile.
type CellType uint8

const (
	Wall CellType = iota
	Path
)

func (t CellType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Path:
		return "path"
	}
	return fmt.Sprintf("Unknown CellType: %d", uint8(t))
}

// A grid coordinate. X is the column and Y is the row.
type Cell struct {
	X int
	Y int
}

// The cell the player starts in, and the cell the maze is carved from.
var StartCell = Cell{X: 1, Y: 1}

// Returns the pixel-space center of the cell for the given tile size.
func (c Cell) Center(tileSize int) (float64, float64) {
	t := float64(tileSize)
	return float64(c.X)*t + t/2, float64(c.Y)*t + t/2
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// A rectangular grid of wall and path tiles. Create using NewGrid.
type Grid struct {
	width  int
	height int
	// Row-major, so the tile at (x, y) is at index y*width + x.
	cells []CellType
}

// Returns nil if the given dimensions are usable for a grid. The minimum size
// is passed in because a bare grid can be 3x3, but a carved maze needs 5x5.
func checkDimensions(width, height, minimum int) error {
	if (width < minimum) || (height < minimum) {
		return fmt.Errorf("%w: %dx%d is smaller than %dx%d",
			ErrInvalidDimensions, width, height, minimum, minimum)
	}
	if ((width % 2) == 0) || ((height % 2) == 0) {
		return fmt.Errorf("%w: %dx%d must have odd width and height",
			ErrInvalidDimensions, width, height)
	}
	cellCount := width * height
	// Check for overflow.
	if (cellCount <= 0) || ((cellCount / width) != height) {
		return fmt.Errorf("%w: %dx%d is too big", ErrInvalidDimensions,
			width, height)
	}
	return nil
}

// Allocates a new grid with every tile set to Wall. Both dimensions must be
// odd and at least 3.
func NewGrid(width, height int) (*Grid, error) {
	e := checkDimensions(width, height, 3)
	if e != nil {
		return nil, e
	}
	// Wall is the zero value, so a fresh slice is already all walls.
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellType, width*height),
	}, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) InBounds(x, y int) bool {
	return (x >= 0) && (y >= 0) && (x < g.width) && (y < g.height)
}

// Returns true if (x, y) is on the outermost ring of the grid.
func (g *Grid) IsBorder(x, y int) bool {
	return (x == 0) || (y == 0) || (x == (g.width - 1)) ||
		(y == (g.height - 1))
}

// Returns the tile at (x, y). Anything outside of the grid reads as Wall.
func (g *Grid) Get(x, y int) CellType {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// Sets the tile at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t CellType) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = t
}

func (g *Grid) IsPath(x, y int) bool {
	return g.Get(x, y) == Path
}

func (g *Grid) IsWall(x, y int) bool {
	return g.Get(x, y) == Wall
}

// Returns every Path cell, in row-major order.
func (g *Grid) PathCells() []Cell {
	toReturn := make([]Cell, 0, len(g.cells)/2)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Path {
				toReturn = append(toReturn, Cell{X: x, Y: y})
			}
		}
	}
	return toReturn
}

func (g *Grid) CountPaths() int {
	count := 0
	for _, t := range g.cells {
		if t == Path {
			count++
		}
	}
	return count
}

// Returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	toReturn := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]CellType, len(g.cells)),
	}
	copy(toReturn.cells, g.cells)
	return toReturn
}

// Returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if (other == nil) || (g.width != other.width) ||
		(g.height != other.height) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Returns true if the wall at (x, y) sits directly between two path tiles,
// either horizontally or vertically.
func (g *Grid) isBridge(x, y int) bool {
	if g.Get(x, y) != Wall {
		return false
	}
	if g.IsPath(x-1, y) && g.IsPath(x+1, y) {
		return true
	}
	return g.IsPath(x, y-1) && g.IsPath(x, y+1)
}

// Draws the grid using '#' for walls and ' ' for paths, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
