package torch_maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns a 5-wide grid with a single vertical corridor at x = 1, covering
// rows 1 through lastRow.
func corridorGrid(t *testing.T, height, lastRow int) *Grid {
	t.Helper()
	g, e := NewGrid(5, height)
	require.NoError(t, e)
	for y := 1; y <= lastRow; y++ {
		g.Set(1, y, Path)
	}
	return g
}

func TestPlaceDoorAndItems_Scenario(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, e := GenerateMaze(19, 13, 0.05, newRNG(seed))
		require.NoError(t, e)
		original := g.Clone()

		p, e := PlaceDoorAndItems(g, 5, newRNG(seed+100))
		require.NoError(t, e)

		// The door replaced a wall that bridged two corridors.
		assert.False(t, p.DoorOnBorder)
		assert.True(t, original.isBridge(p.Door.X, p.Door.Y))
		assert.True(t, g.IsPath(p.Door.X, p.Door.Y))
		assert.True(t, Reachable(g, StartCell).Has(p.Door))

		assert.True(t, g.IsPath(p.Key.X, p.Key.Y))
		assert.NotEqual(t, StartCell, p.Key)
		assert.NotEqual(t, p.Door, p.Key)

		require.Len(t, p.Torches, 5)
		seen := map[Cell]bool{}
		for _, c := range p.Torches {
			assert.False(t, seen[c], "duplicate torch %s", c)
			seen[c] = true
			assert.NotEqual(t, StartCell, c)
			assert.NotEqual(t, p.Door, c)
			assert.NotEqual(t, p.Key, c)
			assert.True(t, FootprintClear(g, c, DefaultTileSize,
				DefaultTorchFootprint), "%s", c)
		}
	}
}

func TestPlaceDoorAndItems_CappedByAvailability(t *testing.T) {
	// Rows 1 through 14 are open. Without the start and the key, 12 cells
	// remain, and every one of them has an open tile above it.
	g := corridorGrid(t, 17, 14)
	p, e := PlaceDoorAndItems(g, 100, newRNG(3))
	require.NoError(t, e)

	// There are no bridge walls here, so the door must be on the border.
	assert.True(t, p.DoorOnBorder)
	assert.Len(t, p.Torches, 12)
	for _, c := range p.Torches {
		assert.Equal(t, 1, c.X)
		assert.NotEqual(t, p.Key, c)
	}
}

func TestPlaceDoorAndItems_ZeroTorches(t *testing.T) {
	g, e := GenerateMaze(19, 13, 0.05, newRNG(8))
	require.NoError(t, e)
	p, e := PlaceDoorAndItems(g, 0, newRNG(8))
	require.NoError(t, e)
	assert.Empty(t, p.Torches)
}

func TestPlaceDoorAndItems_NegativeTorches(t *testing.T) {
	g, e := GenerateMaze(19, 13, 0.05, newRNG(8))
	require.NoError(t, e)
	before := g.Clone()
	_, e = PlaceDoorAndItems(g, -1, newRNG(8))
	assert.ErrorIs(t, e, ErrInvalidTorchCount)
	// Nothing was carved.
	assert.True(t, before.Equal(g))
}

func TestPlaceDoorAndItems_BorderFallback(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := corridorGrid(t, 7, 5)
		p, e := PlaceDoorAndItems(g, 1, newRNG(seed))
		require.NoError(t, e)
		require.True(t, p.DoorOnBorder)
		assert.True(t, g.IsBorder(p.Door.X, p.Door.Y))
		assert.True(t, g.IsPath(p.Door.X, p.Door.Y))
		// Never a corner.
		onVerticalEdge := (p.Door.X == 0) || (p.Door.X == g.Width()-1)
		onHorizontalEdge := (p.Door.Y == 0) || (p.Door.Y == g.Height()-1)
		assert.False(t, onVerticalEdge && onHorizontalEdge, "%s", p.Door)
	}
}

func TestPlaceDoorAndItems_NoKeyCell(t *testing.T) {
	// Only the start is open, and the door goes on the border, so the key has
	// nowhere to go.
	g := corridorGrid(t, 3, 1)
	_, e := PlaceDoorAndItems(g, 3, newRNG(1))
	assert.ErrorIs(t, e, ErrNoKeyCell)
}

func TestPlaceDoorAndItems_Deterministic(t *testing.T) {
	a, e := GenerateMaze(23, 17, 0.1, newRNG(5))
	require.NoError(t, e)
	b := a.Clone()
	pa, e := PlaceDoorAndItems(a, 5, newRNG(77))
	require.NoError(t, e)
	pb, e := PlaceDoorAndItems(b, 5, newRNG(77))
	require.NoError(t, e)
	assert.Equal(t, pa, pb)
	assert.True(t, a.Equal(b))
}

func TestFootprintClear(t *testing.T) {
	g := corridorGrid(t, 7, 5)

	// The default torch is taller than a tile, so it needs the tile above.
	assert.False(t, FootprintClear(g, Cell{X: 1, Y: 1}, 40,
		DefaultTorchFootprint))
	assert.True(t, FootprintClear(g, Cell{X: 1, Y: 2}, 40,
		DefaultTorchFootprint))
	assert.True(t, FootprintClear(g, Cell{X: 1, Y: 5}, 40,
		DefaultTorchFootprint))
	// Walls never fit.
	assert.False(t, FootprintClear(g, Cell{X: 2, Y: 3}, 40,
		DefaultTorchFootprint))

	// A footprint that fits inside one tile only needs its own tile.
	small := Footprint{Width: 10, Above: 10, Below: 10}
	assert.True(t, FootprintClear(g, Cell{X: 1, Y: 1}, 40, small))
	// One wider than a tile also needs the neighbors to the sides.
	wide := Footprint{Width: 50, Above: 10, Below: 10}
	assert.False(t, FootprintClear(g, Cell{X: 1, Y: 3}, 40, wide))
	// Exactly filling the tile doesn't spill into the next one.
	exact := Footprint{Width: 40, Above: 20, Below: 20}
	assert.True(t, FootprintClear(g, Cell{X: 1, Y: 1}, 40, exact))
}

func TestTorchCandidates(t *testing.T) {
	g := corridorGrid(t, 7, 5)
	candidates := TorchCandidates(g, []Cell{{X: 1, Y: 3}}, 40,
		DefaultTorchFootprint)
	assert.Equal(t, []Cell{{X: 1, Y: 2}, {X: 1, Y: 4}, {X: 1, Y: 5}},
		candidates)
}
