package game

import (
	"strings"
)

// Which directions are held during a frame. Holding both directions on an
// axis moves toward Down or Right.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Returns true if any direction is held.
func (i Input) Moving() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// Whether a session is still running.
type State uint8

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// A set of things that happened during a single call to Update. Several
// events may be combined in one value.
type Event uint8

const (
	EventNone Event = 0
	// A torch lying in the maze was picked up.
	EventTorchCollected Event = 1 << iota
	EventKeyCollected
	// The burning torch ran out and a spare one was lit.
	EventTorchLit
	// The player reached the door with the key.
	EventWon
	// The last torch burned out.
	EventTorchesOut
)

// Returns true if every event in other is also set in e.
func (e Event) Has(other Event) bool {
	return (e & other) == other
}

func (e Event) String() string {
	if e == EventNone {
		return "none"
	}
	names := []struct {
		event Event
		name  string
	}{
		{EventTorchCollected, "torch collected"},
		{EventKeyCollected, "key collected"},
		{EventTorchLit, "torch lit"},
		{EventWon, "won"},
		{EventTorchesOut, "torches out"},
	}
	toReturn := make([]string, 0, len(names))
	for _, n := range names {
		if e.Has(n.event) {
			toReturn = append(toReturn, n.name)
		}
	}
	return strings.Join(toReturn, ", ")
}
