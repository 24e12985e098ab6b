package life

import (
	"math/rand/v2"
	"testing"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(4, 7)

	if g.Height() != 4 || g.Width() != 7 {
		t.Fatalf("expected 4x7 grid, got %dx%d", g.Height(), g.Width())
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.Get(r, c) {
				t.Errorf("cell (%d, %d) should be dead", r, c)
			}
		}
	}
	if g.Population() != 0 {
		t.Errorf("Population() = %d, expected 0", g.Population())
	}
}

func TestNewGridNegativeDimensions(t *testing.T) {
	g := NewGrid(-2, 5)
	if g.Height() != 0 || g.Width() != 5 {
		t.Errorf("expected 0x5 grid, got %dx%d", g.Height(), g.Width())
	}
}

func TestNewRandomGridDeterministic(t *testing.T) {
	g1 := NewRandomGrid(20, 30, rand.New(rand.NewPCG(42, 0)))
	g2 := NewRandomGrid(20, 30, rand.New(rand.NewPCG(42, 0)))

	if !g1.Equal(g2) {
		t.Error("grids from the same seed should be identical")
	}

	// 600 fair coin flips: anything outside [200, 400] means the
	// probability is not one half.
	pop := g1.Population()
	if pop < 200 || pop > 400 {
		t.Errorf("Population() = %d, expected roughly half of 600", pop)
	}
}

func TestGridSetGetToggle(t *testing.T) {
	g := NewGrid(3, 3)

	g.Set(1, 2, true)
	if !g.Get(1, 2) {
		t.Error("Set(1, 2, true) should make the cell live")
	}
	if g.Population() != 1 {
		t.Errorf("only one cell should be live, got %d", g.Population())
	}

	g.Toggle(1, 2)
	if g.Get(1, 2) {
		t.Error("Toggle should flip the cell back to dead")
	}
	g.Toggle(0, 0)
	if !g.Get(0, 0) {
		t.Error("Toggle should flip a dead cell to live")
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"row too large", 3, 0},
		{"col too large", 0, 3},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d, %d) should panic", tc.row, tc.col)
				}
			}()
			NewGrid(3, 3).Get(tc.row, tc.col)
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(4, 6)

	tests := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{0, 0, 0, 0},
		{-1, -1, 3, 5},
		{4, 6, 0, 0},
		{5, -7, 1, 5},
	}

	for _, tc := range tests {
		r, c := g.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantCol {
			t.Errorf("Wrap(%d, %d) = (%d, %d), expected (%d, %d)",
				tc.row, tc.col, r, c, tc.wantRow, tc.wantCol)
		}
	}

	// Zero-sized grids must not divide by zero
	r, c := NewGrid(0, 0).Wrap(-3, 9)
	if r != 0 || c != 0 {
		t.Errorf("Wrap on empty grid = (%d, %d), expected (0, 0)", r, c)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := ParseGrid("#..\n.#.\n..#")
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatal("clone should equal the original")
	}

	c.Toggle(0, 0)
	if !g.Get(0, 0) {
		t.Error("modifying the clone must not change the original")
	}
	if g.Equal(c) {
		t.Error("grids should differ after modifying the clone")
	}
}

func TestGridEqualDimensions(t *testing.T) {
	if NewGrid(2, 3).Equal(NewGrid(3, 2)) {
		t.Error("grids with different shapes should not be equal")
	}
	if NewGrid(2, 3).Equal(nil) {
		t.Error("grid should not equal nil")
	}
}

func TestGridStringFormat(t *testing.T) {
	in := ".#.\n##.\n..#"
	g := ParseGrid(in)

	if g.Height() != 3 || g.Width() != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", g.Height(), g.Width())
	}
	if g.String() != in {
		t.Errorf("String() = %q, expected %q", g.String(), in)
	}

	ragged := ParseGrid("#\n###")
	if ragged.Width() != 3 || ragged.Get(0, 1) {
		t.Errorf("short rows should be padded with dead cells, got\n%s", ragged)
	}

	if empty := ParseGrid(""); empty.Height() != 0 || empty.Width() != 0 {
		t.Errorf("empty input should give 0x0 grid, got %dx%d", empty.Height(), empty.Width())
	}
}
