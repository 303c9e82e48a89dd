// The game package implements the rules of the torch maze game, independent
// of any rendering: the player walks through a generated level, picks up
// torches and the key, and must reach the door before the last torch burns
// out.
package game

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yalue/torch_maze"
	"github.com/zyedidia/generic/mapset"
)

const (
	// The width of the player's square, in pixels.
	DefaultPlayerSize = 25.0
	// Pixels moved per frameTime while a direction is held.
	DefaultPlayerSpeed = 2.5
	// Speeds are given per frame of this length, so movement doesn't depend
	// on the actual frame rate.
	frameTime = 16 * time.Millisecond
	// Items are picked up when the player touches a square this fraction of
	// a tile across, centered on the item's tile.
	pickupScale = 0.6
)

// Settings for a new Session. Zero-valued fields are replaced by defaults.
type Options struct {
	// Defaults to torch_maze.Medium.
	Difficulty torch_maze.Difficulty
	// The level to start on, from 1.
	StartLevel int
	// Seeds the sequence of levels. If not positive, a seed is chosen from
	// the current time.
	Seed        int64
	TileSize    int
	PlayerSize  float64
	PlayerSpeed float64
}

func (o *Options) setDefaults() {
	if o.Difficulty.Name == "" {
		o.Difficulty = torch_maze.Medium
	}
	if o.StartLevel < 1 {
		o.StartLevel = 1
	}
	if o.Seed <= 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.TileSize <= 0 {
		o.TileSize = torch_maze.DefaultTileSize
	}
	if o.PlayerSize <= 0 {
		o.PlayerSize = DefaultPlayerSize
	}
	if o.PlayerSpeed <= 0 {
		o.PlayerSpeed = DefaultPlayerSpeed
	}
}

func (o *Options) validate() error {
	if o.PlayerSize >= float64(o.TileSize) {
		return fmt.Errorf("Player size %f doesn't fit in %d-pixel tiles",
			o.PlayerSize, o.TileSize)
	}
	if o.PlayerSpeed >= float64(o.TileSize) {
		return fmt.Errorf("Player speed %f would skip over %d-pixel tiles",
			o.PlayerSpeed, o.TileSize)
	}
	if o.Difficulty.InitialTorches < 1 {
		return fmt.Errorf("Difficulty %s must start with at least one torch",
			o.Difficulty.Name)
	}
	if o.Difficulty.BurnTime <= 0 {
		return fmt.Errorf("Difficulty %s has invalid burn time %s",
			o.Difficulty.Name, o.Difficulty.BurnTime)
	}
	return nil
}

// Holds the state of one game. Not safe for concurrent use. Create using
// NewSession.
type Session struct {
	// Identifies the session in log output.
	ID     uuid.UUID
	Level  *torch_maze.Level
	Player Player
	// The current level number, starting from 1.
	LevelNumber int
	state       State
	options     Options
	// Torches still lying in the maze.
	torches mapset.Set[torch_maze.Cell]
	// Burning and the elapsed time only start once the player moves.
	hasStartedMoving bool
	elapsed          time.Duration
	// Provides the seed for each new level.
	seeds *rand.Rand
	log   logrus.FieldLogger
}

// Creates a new session and generates its first level. The logger may be
// nil.
func NewSession(opts Options, logger logrus.FieldLogger) (*Session, error) {
	opts.setDefaults()
	e := opts.validate()
	if e != nil {
		return nil, e
	}
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	id := uuid.New()
	toReturn := &Session{
		ID:          id,
		LevelNumber: opts.StartLevel,
		options:     opts,
		seeds:       rand.New(rand.NewSource(opts.Seed)),
		log: logger.WithFields(logrus.Fields{
			"session":    id.String(),
			"difficulty": opts.Difficulty.Name,
		}),
	}
	e = toReturn.startLevel()
	if e != nil {
		return nil, e
	}
	return toReturn, nil
}

// Generates the maze for the current level number and resets the player.
func (s *Session) startLevel() error {
	cfg := s.options.Difficulty.Config(s.LevelNumber)
	cfg.TileSize = s.options.TileSize
	cfg.Logger = s.log
	seed := s.seeds.Int63()
	if seed == 0 {
		seed = 1
	}
	level, e := torch_maze.NewLevel(cfg, seed)
	if e != nil {
		return fmt.Errorf("Error generating level %d: %w", s.LevelNumber, e)
	}
	s.useLevel(level)
	s.log.WithFields(logrus.Fields{
		"level": s.LevelNumber,
		"seed":  seed,
	}).Info("Started level")
	return nil
}

// Places the player at the start of the given level with a fresh set of
// torches.
func (s *Session) useLevel(level *torch_maze.Level) {
	s.Level = level
	x, y := torch_maze.StartCell.Center(s.options.TileSize)
	s.Player = Player{
		X:         x,
		Y:         y,
		Torches:   s.options.Difficulty.InitialTorches,
		TorchTime: s.options.Difficulty.BurnTime,
	}
	s.torches = mapset.New[torch_maze.Cell]()
	for _, c := range level.Torches {
		s.torches.Put(c)
	}
	s.state = Playing
	s.hasStartedMoving = false
	s.elapsed = 0
}

// Starts the current level over with a newly generated maze.
func (s *Session) Restart() error {
	return s.startLevel()
}

// Advances to the next level, which places fewer torches in the maze.
func (s *Session) NextLevel() error {
	s.LevelNumber++
	return s.startLevel()
}

func (s *Session) State() State {
	return s.state
}

// Returns the time spent playing since the player first moved.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Returns the number of torches that haven't been picked up.
func (s *Session) RemainingTorches() int {
	return s.torches.Size()
}

// Returns true if the torch at c hasn't been picked up yet.
func (s *Session) TorchAt(c torch_maze.Cell) bool {
	return s.torches.Has(c)
}

// Returns true if the pixel at (x, y) is lit by the player's torch. The whole
// maze is revealed once the game is over.
func (s *Session) Visible(x, y float64) bool {
	if s.state != Playing {
		return true
	}
	radius := float64(s.options.Difficulty.LightRadius)
	return math.Hypot(x-s.Player.X, y-s.Player.Y) <= radius
}

// Advances the game by dt. Returns the events that happened during the frame,
// or EventNone if the game is already over.
func (s *Session) Update(dt time.Duration, input Input) Event {
	if s.state != Playing {
		return EventNone
	}
	if s.movePlayer(dt, input) {
		s.hasStartedMoving = true
	}
	toReturn := s.collectItems()
	if s.reachedDoor() {
		s.state = Won
		s.log.WithFields(logrus.Fields{
			"level":   s.LevelNumber,
			"elapsed": s.elapsed.String(),
		}).Info("Escaped the maze")
		return toReturn | EventWon
	}
	if s.hasStartedMoving {
		s.elapsed += dt
	}
	burned := s.burnTorch(dt)
	if burned == EventTorchesOut {
		s.state = Lost
		s.log.WithFields(logrus.Fields{
			"level":   s.LevelNumber,
			"elapsed": s.elapsed.String(),
		}).Info("The last torch burned out")
	}
	return toReturn | burned
}
