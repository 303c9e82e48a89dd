package torch_maze

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Everything needed to generate a level.
type Config struct {
	// Dimensions of the grid, in tiles. Both must be odd and at least 5.
	Width  int
	Height int
	// The fraction of loop candidate walls to open, in [0, 1).
	LoopRate float64
	// The number of torches to place, if enough room is available.
	TorchCount int
	// The width of a tile in pixels, used when checking torch footprints.
	TileSize       int
	TorchFootprint Footprint
	// Receives debug output from generation. May be nil.
	Logger logrus.FieldLogger
}

// Returns the configuration used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		Width:          23,
		Height:         17,
		LoopRate:       0.1,
		TorchCount:     TorchCountForLevel(1),
		TileSize:       DefaultTileSize,
		TorchFootprint: DefaultTorchFootprint,
	}
}

// Returns a non-nil error if the config can't be used to generate a level.
func (c *Config) Validate() error {
	e := checkDimensions(c.Width, c.Height, 5)
	if e != nil {
		return e
	}
	e = checkLoopRate(c.LoopRate)
	if e != nil {
		return e
	}
	if c.TorchCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTorchCount, c.TorchCount)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("Invalid tile size: %d", c.TileSize)
	}
	return nil
}

// A generated maze along with its door, key and torches. Satisfies the
// image.Image interface, so it can be saved to a file for debugging. Create
// using NewLevel.
type Level struct {
	Grid *Grid
	Placement
	config Config
	// Used for drawing.
	torchSet mapset.Set[Cell]
	// The seed used for the last generation.
	randomSeed int64
	// The time required for the last generation, in seconds.
	generationTime float64
}

// Generates a new level. If the given seed is not positive, a new seed will
// be selected based on the current time in nanoseconds.
func NewLevel(cfg Config, seed int64) (*Level, error) {
	e := cfg.Validate()
	if e != nil {
		return nil, e
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	toReturn := &Level{
		config: cfg,
	}
	e = toReturn.RegenerateFromSeed(seed)
	if e != nil {
		return nil, fmt.Errorf("Error generating level: %w", e)
	}
	return toReturn, nil
}

// Discards the current maze and builds a new one from the given seed. The
// same seed and config always produce the same level.
func (l *Level) RegenerateFromSeed(seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	log := l.config.Logger.WithField("seed", seed)
	startTime := time.Now()

	grid, e := generateMaze(l.config.Width, l.config.Height,
		l.config.LoopRate, rng, log)
	if e != nil {
		return e
	}
	// The player always spawns here, so it must be open.
	grid.Set(StartCell.X, StartCell.Y, Path)
	placement, e := PlaceDoorAndItemsWithOptions(grid, PlacementOptions{
		TorchCount:     l.config.TorchCount,
		TileSize:       l.config.TileSize,
		TorchFootprint: l.config.TorchFootprint,
		Logger:         log,
	}, rng)
	if e != nil {
		return fmt.Errorf("Error placing items: %w", e)
	}

	l.Grid = grid
	l.Placement = placement
	l.torchSet = mapset.New[Cell]()
	for _, c := range placement.Torches {
		l.torchSet.Put(c)
	}
	l.randomSeed = seed
	l.generationTime = time.Since(startTime).Seconds()
	return nil
}

func (l *Level) Seed() int64 {
	return l.randomSeed
}

func (l *Level) Config() Config {
	return l.config
}

// Returns a human-readable string about the level, for providing debug info
// such as the last random seed.
func (l *Level) GetInfo() string {
	return fmt.Sprintf("%dx%d torch maze with random seed %d, %d torches, "+
		"generated in %.03f seconds", l.Grid.Width(), l.Grid.Height(),
		l.randomSeed, len(l.Torches), l.generationTime)
}

// Returns the character used to draw the cell in String().
func (l *Level) cellRune(c Cell) rune {
	switch {
	case c == StartCell:
		return 'S'
	case c == l.Door:
		return 'D'
	case c == l.Key:
		return 'K'
	case l.torchSet.Has(c):
		return 'T'
	case l.Grid.IsWall(c.X, c.Y):
		return '#'
	}
	return ' '
}

// Draws the level as text: '#' walls, 'S' start, 'D' door, 'K' key and 'T'
// torches.
func (l *Level) String() string {
	w := l.Grid.Width()
	h := l.Grid.Height()
	toReturn := make([]rune, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			toReturn = append(toReturn, l.cellRune(Cell{X: x, Y: y}))
		}
		toReturn = append(toReturn, '\n')
	}
	return string(toReturn)
}

// The number of pixels across, in a square tile. Must be at least 5.
const cellPixels = 9

var (
	wallColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	startColor = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	doorColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	keyColor   = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	torchColor = color.RGBA{R: 255, G: 69, B: 0, A: 255}
)

func (l *Level) ColorModel() color.Model {
	return color.RGBAModel
}

func (l *Level) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Grid.Width()*cellPixels,
		l.Grid.Height()*cellPixels)
}

func (l *Level) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= l.Grid.Width()*cellPixels) ||
		(y >= l.Grid.Height()*cellPixels) {
		return color.Transparent
	}
	c := Cell{X: x / cellPixels, Y: y / cellPixels}
	tileX := x % cellPixels
	tileY := y % cellPixels
	// The door fills its whole tile, since it's drawn in place of a wall.
	if c == l.Door {
		return doorColor
	}
	if l.Grid.IsWall(c.X, c.Y) {
		return wallColor
	}
	// Items are drawn as a square more than one pixel away from the tile's
	// edges.
	inner := (tileX > 1) && (tileY > 1) && (tileX < (cellPixels - 2)) &&
		(tileY < (cellPixels - 2))
	if !inner {
		return color.White
	}
	switch {
	case c == StartCell:
		return startColor
	case c == l.Key:
		return keyColor
	case l.torchSet.Has(c):
		return torchColor
	}
	return color.White
}
