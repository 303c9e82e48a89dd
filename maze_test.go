package torch_maze

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Fails the test if any tile on the outer ring is open.
func assertBorderSealed(t *testing.T, g *Grid) {
	t.Helper()
	for x := 0; x < g.Width(); x++ {
		assert.Equal(t, Wall, g.Get(x, 0), "top border at x=%d", x)
		assert.Equal(t, Wall, g.Get(x, g.Height()-1), "bottom border at x=%d",
			x)
	}
	for y := 0; y < g.Height(); y++ {
		assert.Equal(t, Wall, g.Get(0, y), "left border at y=%d", y)
		assert.Equal(t, Wall, g.Get(g.Width()-1, y), "right border at y=%d",
			y)
	}
}

var testSizes = []struct {
	width  int
	height int
}{
	{5, 5},
	{7, 9},
	{19, 13},
	{23, 17},
	{27, 21},
	{61, 31},
}

func TestGenerateMaze_Scenario(t *testing.T) {
	g, e := GenerateMaze(19, 13, 0.05, newRNG(1))
	require.NoError(t, e)

	assert.Equal(t, 19, g.Width())
	assert.Equal(t, 13, g.Height())
	assertBorderSealed(t, g)
	assert.True(t, g.IsPath(1, 1))
	assert.Equal(t, g.CountPaths(), Reachable(g, StartCell).Size())
}

func TestGenerateMaze_Invariants(t *testing.T) {
	for _, size := range testSizes {
		for _, loopRate := range []float64{0, 0.05, 0.1, 0.5, 0.99} {
			for seed := int64(1); seed <= 5; seed++ {
				g, e := GenerateMaze(size.width, size.height, loopRate,
					newRNG(seed))
				require.NoError(t, e)
				assertBorderSealed(t, g)
				assert.True(t, g.IsPath(StartCell.X, StartCell.Y))
				assert.True(t, FullyConnected(g), "%dx%d, rate %f, seed %d",
					size.width, size.height, loopRate, seed)
			}
		}
	}
}

func TestGenerateMaze_PerfectWithoutLoops(t *testing.T) {
	for _, size := range testSizes {
		for seed := int64(1); seed <= 5; seed++ {
			g, e := GenerateMaze(size.width, size.height, 0, newRNG(seed))
			require.NoError(t, e)

			stats := Analyze(g)
			assert.Equal(t, stats.PathCells-1, stats.Connections)
			assert.True(t, stats.IsPerfect(), stats.String())
			// A breadth-first scan visits each path cell exactly once.
			assert.Equal(t, stats.PathCells, Reachable(g, StartCell).Size())
		}
	}
}

func TestCarvePerfectMaze_VisitsEveryOddCell(t *testing.T) {
	// A bounds check of x < width-1 without the matching lower bound, or one
	// that's off by one, leaves the column next to the right border (or the
	// row above the bottom) entirely walled off.
	for _, size := range testSizes {
		g, e := NewGrid(size.width, size.height)
		require.NoError(t, e)
		CarvePerfectMaze(g, newRNG(7))
		for y := 1; y <= (size.height - 2); y += 2 {
			for x := 1; x <= (size.width - 2); x += 2 {
				assert.True(t, g.IsPath(x, y), "(%d, %d) in %dx%d", x, y,
					size.width, size.height)
			}
		}
		lastCol := size.width - 2
		lastRow := size.height - 2
		assert.True(t, g.IsPath(lastCol, 1))
		assert.True(t, g.IsPath(1, lastRow))
		assertBorderSealed(t, g)
	}
}

func TestCarvePerfectMaze_OnlyCarvesBetweenNodes(t *testing.T) {
	g, e := NewGrid(21, 15)
	require.NoError(t, e)
	CarvePerfectMaze(g, newRNG(3))
	// Tiles with two even coordinates are the corners between cells and are
	// never carved.
	for y := 0; y < g.Height(); y += 2 {
		for x := 0; x < g.Width(); x += 2 {
			assert.True(t, g.IsWall(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestCarvePerfectMaze_LargeGrid(t *testing.T) {
	// Big enough that a recursive carver would go thousands of calls deep.
	g, e := NewGrid(401, 301)
	require.NoError(t, e)
	CarvePerfectMaze(g, newRNG(11))
	stats := Analyze(g)
	assert.True(t, stats.IsPerfect(), stats.String())
	assert.Equal(t, 2*(200*150)-1, stats.PathCells)
}

func TestGenerateMaze_SameSeedSameMaze(t *testing.T) {
	a, e := GenerateMaze(23, 17, 0.1, newRNG(42))
	require.NoError(t, e)
	b, e := GenerateMaze(23, 17, 0.1, newRNG(42))
	require.NoError(t, e)
	assert.True(t, a.Equal(b))

	c, e := GenerateMaze(23, 17, 0.1, newRNG(43))
	require.NoError(t, e)
	assert.False(t, a.Equal(c))
}

func TestGenerateMaze_InvalidDimensions(t *testing.T) {
	cases := []struct {
		width  int
		height int
	}{
		{4, 5},
		{5, 4},
		{3, 3},
		{3, 5},
		{1, 1},
		{0, 0},
		{-5, 5},
	}
	for _, c := range cases {
		g, e := GenerateMaze(c.width, c.height, 0.05, newRNG(1))
		assert.ErrorIs(t, e, ErrInvalidDimensions, "%dx%d", c.width,
			c.height)
		assert.Nil(t, g)
	}
}

func TestGenerateMaze_InvalidLoopRate(t *testing.T) {
	for _, rate := range []float64{-0.1, 1, 1.5, math.NaN()} {
		_, e := GenerateMaze(19, 13, rate, newRNG(1))
		assert.ErrorIs(t, e, ErrInvalidLoopRate, "rate %f", rate)
	}
}

func TestGenerateMaze_NilRNG(t *testing.T) {
	g, e := GenerateMaze(9, 9, 0.1, nil)
	require.NoError(t, e)
	assert.True(t, FullyConnected(g))
}

func perfectMaze(t *testing.T, width, height int, seed int64) *Grid {
	t.Helper()
	g, e := NewGrid(width, height)
	require.NoError(t, e)
	CarvePerfectMaze(g, newRNG(seed))
	return g
}

func TestLoopCandidates(t *testing.T) {
	g := perfectMaze(t, 19, 13, 5)
	candidates := LoopCandidates(g)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.True(t, g.IsWall(c.X, c.Y))
		assert.False(t, g.IsBorder(c.X, c.Y))
		horizontal := g.IsPath(c.X-1, c.Y) && g.IsPath(c.X+1, c.Y)
		vertical := g.IsPath(c.X, c.Y-1) && g.IsPath(c.X, c.Y+1)
		assert.True(t, horizontal || vertical, "%s", c)
	}
}

func TestInjectLoops_RemoveCount(t *testing.T) {
	for _, rate := range []float64{0.05, 0.1, 0.25, 0.5, 0.9} {
		g := perfectMaze(t, 27, 21, 9)
		candidates := LoopCandidates(g)
		pathsBefore := g.CountPaths()

		opened, e := InjectLoops(g, rate, newRNG(2))
		require.NoError(t, e)

		expected := int(math.Floor(float64(len(candidates)) * rate))
		assert.Equal(t, expected, opened, "rate %f", rate)
		assert.Equal(t, pathsBefore+expected, g.CountPaths())

		stats := Analyze(g)
		assert.Equal(t, 1, stats.Components)
		assert.GreaterOrEqual(t, stats.Cycles, opened)
		assert.True(t, FullyConnected(g))
	}
}

func TestInjectLoops_ZeroRateIsNoop(t *testing.T) {
	g := perfectMaze(t, 23, 17, 4)
	before := g.Clone()
	opened, e := InjectLoops(g, 0, newRNG(1))
	require.NoError(t, e)
	assert.Equal(t, 0, opened)
	assert.True(t, before.Equal(g))

	// The whole pipeline with no loops matches a plain carve.
	generated, e := GenerateMaze(23, 17, 0, newRNG(4))
	require.NoError(t, e)
	assert.True(t, before.Equal(generated))
}

func TestSealBoundary(t *testing.T) {
	g := perfectMaze(t, 15, 11, 6)
	for x := 0; x < g.Width(); x++ {
		g.Set(x, 0, Path)
	}
	g.Set(0, 5, Path)
	g.Set(g.Width()-1, g.Height()-1, Path)

	SealBoundary(g)
	assertBorderSealed(t, g)
	once := g.Clone()
	SealBoundary(g)
	assert.True(t, once.Equal(g))
	// The interior is left alone.
	assert.True(t, g.IsPath(1, 1))
}
