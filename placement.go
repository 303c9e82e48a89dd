package torch_maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var (
	// Returned (wrapped) if a negative number of torches is requested.
	ErrInvalidTorchCount = errors.New("invalid torch count")
	// Returned (wrapped) if there isn't a single path tile, other than the
	// start and door, where the key could go.
	ErrNoKeyCell = errors.New("no cell available for the key")
)

// The width of a tile, in pixels, used when nothing else is configured.
const DefaultTileSize = 40

// A rectangle, in pixels, that a sprite occupies relative to the center of
// the tile it stands on. The rectangle is Width wide, centered horizontally,
// and spans from Above pixels above the center to Below pixels below it.
type Footprint struct {
	Width float64
	Above float64
	Below float64
}

// A standing torch: the flame reaches 30 pixels above the tile center and the
// handle ends 10 pixels below it. This is taller than one 40-pixel tile, so
// torches only fit where the tile above is open.
var DefaultTorchFootprint = Footprint{
	Width: 20,
	Above: 30,
	Below: 10,
}

// Controls PlaceDoorAndItemsWithOptions. Zero-valued fields are replaced by
// their defaults, except for TorchCount.
type PlacementOptions struct {
	// The number of torches to place, if enough cells are available.
	TorchCount int
	// The width of a tile in pixels, used for the torch footprint check.
	TileSize int
	// The area a torch sprite covers.
	TorchFootprint Footprint
	Logger         logrus.FieldLogger
}

// The special cells chosen for a finished grid.
type Placement struct {
	Door Cell
	// Set if no bridge wall existed and the door was put on the outer ring.
	DoorOnBorder bool
	Key          Cell
	Torches      []Cell
}

func (o *PlacementOptions) setDefaults() {
	if o.TileSize <= 0 {
		o.TileSize = DefaultTileSize
	}
	if o.TorchFootprint == (Footprint{}) {
		o.TorchFootprint = DefaultTorchFootprint
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// Chooses and carves the door, then picks the key and up to torchCount torch
// cells, using the default tile size and torch footprint. The grid is
// modified only by carving the door tile.
func PlaceDoorAndItems(g *Grid, torchCount int, rng *rand.Rand) (Placement,
	error) {
	return PlaceDoorAndItemsWithOptions(g, PlacementOptions{
		TorchCount: torchCount,
	}, rng)
}

// Like PlaceDoorAndItems, but allows the tile size, footprint and logger to
// be specified.
func PlaceDoorAndItemsWithOptions(g *Grid, opts PlacementOptions,
	rng *rand.Rand) (Placement, error) {
	var toReturn Placement
	if opts.TorchCount < 0 {
		return toReturn, fmt.Errorf("%w: %d", ErrInvalidTorchCount,
			opts.TorchCount)
	}
	opts.setDefaults()
	rng = ensureRNG(rng)

	toReturn.Door, toReturn.DoorOnBorder = placeDoor(g, rng, opts.Logger)
	key, e := placeKey(g, toReturn.Door, rng)
	if e != nil {
		return toReturn, e
	}
	toReturn.Key = key

	candidates := TorchCandidates(g, []Cell{toReturn.Door, toReturn.Key},
		opts.TileSize, opts.TorchFootprint)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	count := min(opts.TorchCount, len(candidates))
	toReturn.Torches = candidates[:count]

	opts.Logger.WithFields(logrus.Fields{
		"door":      toReturn.Door,
		"key":       toReturn.Key,
		"requested": opts.TorchCount,
		"available": len(candidates),
		"placed":    count,
	}).Debug("Placed door and items")
	return toReturn, nil
}

// Returns the walls the door may be placed on: interior walls joining two
// path tiles. This is the same test used for loop candidates, but should be
// run against the finished grid.
func DoorCandidates(g *Grid) []Cell {
	return LoopCandidates(g)
}

// Picks the door and carves it. Returns true as the second value if the door
// had to go on the border.
func placeDoor(g *Grid, rng *rand.Rand, log logrus.FieldLogger) (Cell, bool) {
	candidates := DoorCandidates(g)
	if len(candidates) != 0 {
		toReturn := candidates[rng.Intn(len(candidates))]
		g.Set(toReturn.X, toReturn.Y, Path)
		return toReturn, false
	}

	// Very small grids may have no bridge walls at all. In that case, the
	// door is punched into a random side, never on a corner.
	var toReturn Cell
	switch rng.Intn(4) {
	case 0:
		// Top
		toReturn = Cell{X: rng.Intn(g.width-2) + 1, Y: 0}
	case 1:
		// Right
		toReturn = Cell{X: g.width - 1, Y: rng.Intn(g.height-2) + 1}
	case 2:
		// Bottom
		toReturn = Cell{X: rng.Intn(g.width-2) + 1, Y: g.height - 1}
	default:
		// Left
		toReturn = Cell{X: 0, Y: rng.Intn(g.height-2) + 1}
	}
	log.WithField("door", toReturn).Debug("No bridge walls found, placing " +
		"the door on the border")
	g.Set(toReturn.X, toReturn.Y, Path)
	return toReturn, true
}

// Picks a uniformly random path tile that isn't the start or the door, by
// sampling random cells until one fits.
func placeKey(g *Grid, door Cell, rng *rand.Rand) (Cell, error) {
	// Make sure the sampling loop below can terminate.
	available := 0
	for _, c := range g.PathCells() {
		if (c != StartCell) && (c != door) {
			available++
		}
	}
	if available == 0 {
		return Cell{}, ErrNoKeyCell
	}
	for {
		c := Cell{X: rng.Intn(g.width), Y: rng.Intn(g.height)}
		if !g.IsPath(c.X, c.Y) || (c == StartCell) || (c == door) {
			continue
		}
		return c, nil
	}
}

// Returns true if a sprite with footprint fp, standing on cell c, only
// overlaps path tiles. Tiles outside the grid count as walls.
func FootprintClear(g *Grid, c Cell, tileSize int, fp Footprint) bool {
	t := float64(tileSize)
	cx, cy := c.Center(tileSize)
	// The rectangle is half-open, so a sprite exactly touching the far edge
	// of a tile doesn't count as overlapping the next tile.
	minX := int(math.Floor((cx - fp.Width/2) / t))
	maxX := int(math.Ceil((cx+fp.Width/2)/t)) - 1
	minY := int(math.Floor((cy - fp.Above) / t))
	maxY := int(math.Ceil((cy+fp.Below)/t)) - 1
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !g.IsPath(x, y) {
				return false
			}
		}
	}
	return true
}

// Returns every path tile where a torch may be placed: not the start cell,
// not in exclude, and with a footprint that doesn't overlap any wall. The
// result is in row-major order.
func TorchCandidates(g *Grid, exclude []Cell, tileSize int,
	fp Footprint) []Cell {
	excluded := mapset.New[Cell]()
	excluded.Put(StartCell)
	for _, c := range exclude {
		excluded.Put(c)
	}
	toReturn := make([]Cell, 0, 64)
	for _, c := range g.PathCells() {
		if excluded.Has(c) {
			continue
		}
		if !FootprintClear(g, c, tileSize, fp) {
			continue
		}
		toReturn = append(toReturn, c)
	}
	return toReturn
}
