package life

import "testing"

// neighborOffsets lists the 8 neighbor positions around (2, 2) on a 5x5 grid.
var neighborOffsets = [][2]int{
	{1, 1}, {1, 2}, {1, 3},
	{2, 1}, {2, 3},
	{3, 1}, {3, 2}, {3, 3},
}

func gridWithNeighbors(alive bool, n int) *Grid {
	g := NewGrid(5, 5)
	g.Set(2, 2, alive)
	for i := 0; i < n; i++ {
		g.Set(neighborOffsets[i][0], neighborOffsets[i][1], true)
	}
	return g
}

func TestNextGenerationRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			g := gridWithNeighbors(alive, n)
			if got := LiveNeighbors(g, 2, 2); got != n {
				t.Fatalf("LiveNeighbors = %d, expected %d", got, n)
			}

			var want bool
			if alive {
				want = n == 2 || n == 3
			} else {
				want = n == 3
			}

			next := NextGeneration(g)
			if next.Get(2, 2) != want {
				t.Errorf("alive=%v neighbors=%d: next state %v, expected %v", alive, n, next.Get(2, 2), want)
			}
		}
	}
}

func TestSurvives(t *testing.T) {
	tests := []struct {
		alive     bool
		neighbors int
		expected  bool
	}{
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 8, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
	}

	for _, tc := range tests {
		if got := Survives(tc.alive, tc.neighbors); got != tc.expected {
			t.Errorf("Survives(%v, %d) = %v, expected %v", tc.alive, tc.neighbors, got, tc.expected)
		}
	}
}

func TestLiveNeighborsWrapsAround(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, true)

	if got := LiveNeighbors(g, 2, 2); got != 1 {
		t.Errorf("(2, 2) should see (0, 0) as a diagonal neighbor, got %d", got)
	}

	big := NewGrid(6, 8)
	big.Set(0, 0, true)

	tests := []struct {
		name     string
		row, col int
		expected int
	}{
		{"bottom-right corner", 5, 7, 1},
		{"top-right corner", 0, 7, 1},
		{"bottom-left corner", 5, 0, 1},
		{"last row below", 5, 1, 1},
		{"far away", 3, 4, 0},
		{"the cell itself is not counted", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LiveNeighbors(big, tc.row, tc.col); got != tc.expected {
				t.Errorf("LiveNeighbors(%d, %d) = %d, expected %d", tc.row, tc.col, got, tc.expected)
			}
		})
	}
}

func TestNextGenerationKeepsDimensions(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 7}, {7, 2}, {13, 17}}
	for _, sz := range sizes {
		g := NewRandomSeeder(int64(sz[0]*100 + sz[1])).Seed(sz[0], sz[1])
		next := NextGeneration(g)
		if next.Height() != sz[0] || next.Width() != sz[1] {
			t.Errorf("%dx%d grid produced %dx%d", sz[0], sz[1], next.Height(), next.Width())
		}
	}
}

func TestNextGenerationDoesNotModifyInput(t *testing.T) {
	g := NewRandomSeeder(7).Seed(10, 10)
	before := g.Clone()

	NextGeneration(g)

	if !g.Equal(before) {
		t.Error("NextGeneration must not modify its input")
	}
}

func TestNextGenerationEmptyStaysEmpty(t *testing.T) {
	next := NextGeneration(NewGrid(8, 8))
	if next.Population() != 0 {
		t.Errorf("empty grid produced %d live cells", next.Population())
	}
}

func TestNextGenerationZeroArea(t *testing.T) {
	for _, sz := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		next := NextGeneration(NewGrid(sz[0], sz[1]))
		if next.Height() != sz[0] || next.Width() != sz[1] {
			t.Errorf("%dx%d grid produced %dx%d", sz[0], sz[1], next.Height(), next.Width())
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := ParseGrid(`
.....
.....
.###.
.....
.....`)
	vertical := ParseGrid(`
.....
..#..
..#..
..#..
.....`)

	g := NextGeneration(horizontal)
	if !g.Equal(vertical) {
		t.Fatalf("after one generation expected\n%s\ngot\n%s", vertical, g)
	}

	g = NextGeneration(g)
	if !g.Equal(horizontal) {
		t.Fatalf("after two generations expected\n%s\ngot\n%s", horizontal, g)
	}
}

func TestGliderCrossesEdges(t *testing.T) {
	start := ParseGrid(`
.#......
..#.....
###.....
........
........
........
........
........`)

	// A glider moves one cell diagonally every 4 generations, so on an 8x8
	// torus it is back where it started after 32.
	g := start
	for i := 0; i < 32; i++ {
		g = NextGeneration(g)
		if g.Population() != 5 {
			t.Fatalf("generation %d: population %d, expected 5\n%s", i+1, g.Population(), g)
		}
	}
	if !g.Equal(start) {
		t.Errorf("glider did not return to its start\n%s", g)
	}
}

func TestBlockIsStill(t *testing.T) {
	block := ParseGrid(`
....
.##.
.##.
....`)

	if next := NextGeneration(block); !next.Equal(block) {
		t.Errorf("block should be a still life, got\n%s", next)
	}
}
