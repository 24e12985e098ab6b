package life

import (
	"strings"
	"time"
)

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{t: epoch} }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fixedSeeder always returns a copy of the same grid.
func fixedSeeder(g *Grid) Seeder {
	return SeederFunc(func(height, width int) *Grid {
		return g.Clone()
	})
}

func blinkerGrid() *Grid {
	return ParseGrid(`
.....
.....
.###.
.....
.....`)
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ParseGrid builds a grid from the String format. Any byte other than '.'
// or ' ' counts as a live cell. Rows shorter than the widest are padded dead.
func ParseGrid(s string) *Grid {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return NewGrid(0, 0)
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	g := NewGrid(len(lines), width)
	for r, l := range lines {
		for c := 0; c < len(l); c++ {
			g.cells[r*width+c] = l[c] != '.' && l[c] != ' '
		}
	}
	return g
}
