package game

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yalue/torch_maze"
)

// The player's position is the center of a square PlayerSize pixels across.
type Player struct {
	X float64
	Y float64
	// Torches held, including the one currently burning.
	Torches int
	// What's left of the burning torch.
	TorchTime time.Duration
	HasKey    bool
}

// An axis-aligned rectangle in pixels. Touching edges don't overlap.
type box struct {
	left   float64
	top    float64
	right  float64
	bottom float64
}

// Returns a square box with the given width centered on (x, y).
func centeredBox(x, y, size float64) box {
	return box{
		left:   x - size/2,
		top:    y - size/2,
		right:  x + size/2,
		bottom: y + size/2,
	}
}

func (b box) overlaps(other box) bool {
	return (b.right > other.left) && (b.left < other.right) &&
		(b.bottom > other.top) && (b.top < other.bottom)
}

// Returns the box the player would occupy if centered at (x, y).
func (s *Session) playerBox(x, y float64) box {
	return centeredBox(x, y, s.options.PlayerSize)
}

// Returns the area around an item in which the player picks it up.
func (s *Session) pickupBox(c torch_maze.Cell) box {
	x, y := c.Center(s.options.TileSize)
	return centeredBox(x, y, float64(s.options.TileSize)*pickupScale)
}

// Returns the full tile occupied by c.
func (s *Session) tileBox(c torch_maze.Cell) box {
	t := float64(s.options.TileSize)
	return box{
		left:   float64(c.X) * t,
		top:    float64(c.Y) * t,
		right:  float64(c.X+1) * t,
		bottom: float64(c.Y+1) * t,
	}
}

// Returns true if the player can't stand with its center at (x, y): one of the
// player's corners is outside the grid, in a wall, or in the door while the
// key hasn't been picked up.
func (s *Session) IsWallCollision(x, y float64) bool {
	b := s.playerBox(x, y)
	corners := [4][2]float64{
		{b.left, b.top},
		{b.right, b.top},
		{b.left, b.bottom},
		{b.right, b.bottom},
	}
	t := float64(s.options.TileSize)
	grid := s.Level.Grid
	for _, corner := range corners {
		c := torch_maze.Cell{
			X: int(math.Floor(corner[0] / t)),
			Y: int(math.Floor(corner[1] / t)),
		}
		if !grid.InBounds(c.X, c.Y) || grid.IsWall(c.X, c.Y) {
			return true
		}
		if (c == s.Level.Door) && !s.Player.HasKey {
			return true
		}
	}
	return false
}

// Moves the player according to the input, unless the new position collides
// with something. Returns false if there was no input.
func (s *Session) movePlayer(dt time.Duration, input Input) bool {
	if !input.Moving() {
		return false
	}
	distance := s.options.PlayerSpeed * float64(dt) / float64(frameTime)
	dx, dy := 0.0, 0.0
	if input.Up {
		dy = -distance
	}
	if input.Down {
		dy = distance
	}
	if input.Left {
		dx = -distance
	}
	if input.Right {
		dx = distance
	}
	newX := s.Player.X + dx
	newY := s.Player.Y + dy
	if !s.IsWallCollision(newX, newY) {
		s.Player.X = newX
		s.Player.Y = newY
	}
	return true
}

// Picks up any torches and the key the player is touching.
func (s *Session) collectItems() Event {
	toReturn := EventNone
	player := s.playerBox(s.Player.X, s.Player.Y)
	s.torches.Each(func(c torch_maze.Cell) {
		if !player.overlaps(s.pickupBox(c)) {
			return
		}
		s.torches.Remove(c)
		s.Player.Torches++
		s.log.WithFields(logrus.Fields{
			"torch":   c,
			"torches": s.Player.Torches,
		}).Debug("Collected a torch")
		toReturn |= EventTorchCollected
	})
	if !s.Player.HasKey && player.overlaps(s.pickupBox(s.Level.Key)) {
		s.Player.HasKey = true
		s.log.WithField("key", s.Level.Key).Debug("Collected the key")
		toReturn |= EventKeyCollected
	}
	return toReturn
}

// Returns true if the player is touching the door while holding the key.
func (s *Session) reachedDoor() bool {
	if !s.Player.HasKey {
		return false
	}
	player := s.playerBox(s.Player.X, s.Player.Y)
	return player.overlaps(s.tileBox(s.Level.Door))
}

// Burns the current torch for dt, lighting a spare if it runs out. Nothing
// burns until the player has moved for the first time.
func (s *Session) burnTorch(dt time.Duration) Event {
	if !s.hasStartedMoving {
		return EventNone
	}
	s.Player.TorchTime -= dt
	if s.Player.TorchTime > 0 {
		return EventNone
	}
	s.Player.TorchTime = 0
	if s.Player.Torches > 1 {
		s.Player.Torches--
		s.Player.TorchTime = s.options.Difficulty.BurnTime
		s.log.WithField("torches", s.Player.Torches).Debug("Lit a new torch")
		return EventTorchLit
	}
	return EventTorchesOut
}
