package torch_maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, e := NewGrid(7, 5)
	require.NoError(t, e)
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, 0, g.CountPaths())
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			assert.Equal(t, Wall, g.Get(x, y))
		}
	}

	for _, bad := range [][2]int{{2, 5}, {5, 2}, {1, 3}, {6, 7}, {7, 8}} {
		_, e = NewGrid(bad[0], bad[1])
		assert.ErrorIs(t, e, ErrInvalidDimensions, "%v", bad)
	}
}

func TestGrid_Accessors(t *testing.T) {
	g, e := NewGrid(5, 5)
	require.NoError(t, e)

	g.Set(2, 3, Path)
	assert.True(t, g.IsPath(2, 3))
	assert.False(t, g.IsWall(2, 3))
	assert.Equal(t, []Cell{{X: 2, Y: 3}}, g.PathCells())

	// Out-of-bounds reads are walls and writes are dropped.
	g.Set(-1, 0, Path)
	g.Set(5, 5, Path)
	assert.Equal(t, Wall, g.Get(-1, 0))
	assert.Equal(t, Wall, g.Get(5, 2))
	assert.Equal(t, 1, g.CountPaths())

	assert.True(t, g.IsBorder(0, 2))
	assert.True(t, g.IsBorder(4, 4))
	assert.False(t, g.IsBorder(1, 3))
}

func TestGrid_CloneAndEqual(t *testing.T) {
	g, e := NewGrid(5, 5)
	require.NoError(t, e)
	g.Set(1, 1, Path)

	c := g.Clone()
	assert.True(t, g.Equal(c))
	c.Set(1, 2, Path)
	assert.False(t, g.Equal(c))
	assert.True(t, g.IsWall(1, 2))

	other, e := NewGrid(5, 7)
	require.NoError(t, e)
	assert.False(t, g.Equal(other))
	assert.False(t, g.Equal(nil))
}

func TestGrid_String(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	g.Set(1, 1, Path)
	assert.Equal(t, "###\n# #\n###\n", g.String())

	maze, e := GenerateMaze(9, 7, 0, newRNG(1))
	require.NoError(t, e)
	lines := strings.Split(strings.TrimSuffix(maze.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	for _, line := range lines {
		assert.Len(t, line, 9)
	}
}

func TestCell_Center(t *testing.T) {
	x, y := Cell{X: 1, Y: 1}.Center(40)
	assert.Equal(t, 60.0, x)
	assert.Equal(t, 60.0, y)
	x, y = Cell{X: 3, Y: 0}.Center(10)
	assert.Equal(t, 35.0, x)
	assert.Equal(t, 5.0, y)
}
