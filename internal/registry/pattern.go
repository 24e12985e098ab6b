package registry

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Pattern is a named arrangement of live cells. Rows use 'O', '#' or '*'
// for live cells and '.' or ' ' for dead ones.
type Pattern struct {
	Name        string
	Title       string
	Description string
	Rows        []string
}

// Height returns the number of rows in the pattern.
func (p Pattern) Height() int {
	return len(p.Rows)
}

// Width returns the length of the longest row.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p.Rows {
		w = core.Max(w, len(row))
	}
	return w
}

// Validate checks that the pattern has a name and only known cell glyphs.
func (p Pattern) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("registry: pattern without name")
	}
	if len(p.Rows) == 0 {
		return fmt.Errorf("registry: pattern %q has no rows", p.Name)
	}
	for r, row := range p.Rows {
		for c := 0; c < len(row); c++ {
			if _, ok := cellGlyph(row[c]); !ok {
				return fmt.Errorf("registry: pattern %q: invalid cell %q at row %d col %d", p.Name, row[c], r, c)
			}
		}
	}
	return nil
}

func cellGlyph(b byte) (alive, ok bool) {
	switch b {
	case 'O', '#', '*':
		return true, true
	case '.', ' ':
		return false, true
	default:
		return false, false
	}
}

// Place draws the pattern centered on g. Cells that fall off an edge wrap
// around, so patterns larger than the grid fold onto the torus.
func (p Pattern) Place(g *life.Grid) {
	if g.Height() == 0 || g.Width() == 0 {
		return
	}
	top := (g.Height() - p.Height()) / 2
	left := (g.Width() - p.Width()) / 2

	for r, row := range p.Rows {
		for c := 0; c < len(row); c++ {
			if alive, _ := cellGlyph(row[c]); alive {
				gr, gc := g.Wrap(top+r, left+c)
				g.Set(gr, gc, true)
			}
		}
	}
}

// Seeder returns a life.Seeder that starts every run, and every grid reset,
// from this pattern on an otherwise empty grid.
func (p Pattern) Seeder() life.Seeder {
	return life.SeederFunc(func(height, width int) *life.Grid {
		g := life.NewGrid(height, width)
		p.Place(g)
		return g
	})
}
