package torch_maze

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// A named set of game parameters.
type Difficulty struct {
	Name string
	// The number of torches the player starts with.
	InitialTorches int
	MazeWidth      int
	MazeHeight     int
	// The radius, in pixels, lit around the player.
	LightRadius int
	// How long one torch lasts.
	BurnTime time.Duration
	LoopRate float64
}

var (
	Easy = Difficulty{
		Name:           "easy",
		InitialTorches: 3,
		MazeWidth:      19,
		MazeHeight:     13,
		LightRadius:    120,
		BurnTime:       20 * time.Second,
		LoopRate:       0.05,
	}
	Medium = Difficulty{
		Name:           "medium",
		InitialTorches: 2,
		MazeWidth:      23,
		MazeHeight:     17,
		LightRadius:    100,
		BurnTime:       15 * time.Second,
		LoopRate:       0.05,
	}
	Hard = Difficulty{
		Name:           "hard",
		InitialTorches: 1,
		MazeWidth:      27,
		MazeHeight:     21,
		LightRadius:    80,
		BurnTime:       10 * time.Second,
		LoopRate:       0.05,
	}
)

var difficulties = map[string]Difficulty{
	Easy.Name:   Easy,
	Medium.Name: Medium,
	Hard.Name:   Hard,
}

// Returns the preset with the given name, ignoring case.
func DifficultyByName(name string) (Difficulty, error) {
	toReturn, ok := difficulties[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Difficulty{}, fmt.Errorf("Unknown difficulty %q (expected "+
			"one of %s)", name, strings.Join(DifficultyNames(), ", "))
	}
	return toReturn, nil
}

// Returns the names of all presets, sorted.
func DifficultyNames() []string {
	toReturn := make([]string, 0, len(difficulties))
	for name := range difficulties {
		toReturn = append(toReturn, name)
	}
	sort.Strings(toReturn)
	return toReturn
}

// Torches placed in the maze on each level. Later levels get fewer.
var torchCountByLevel = map[int]int{
	1: 5,
	2: 4,
	3: 3,
	4: 2,
	5: 1,
}

// Used for levels past the end of the table.
const defaultTorchCount = 1

// Returns how many torches should be placed in the maze for the given level,
// starting at 1.
func TorchCountForLevel(level int) int {
	toReturn, ok := torchCountByLevel[level]
	if !ok {
		return defaultTorchCount
	}
	return toReturn
}

// Returns a Config for generating a maze at this difficulty and level.
func (d Difficulty) Config(level int) Config {
	toReturn := DefaultConfig()
	toReturn.Width = d.MazeWidth
	toReturn.Height = d.MazeHeight
	toReturn.LoopRate = d.LoopRate
	toReturn.TorchCount = TorchCountForLevel(level)
	return toReturn
}
