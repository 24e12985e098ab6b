// Package life implements the Game of Life simulation engine: the toroidal
// grid, the rule engine, the rate-gated simulation clock, the edit cursor and
// the single-threaded update/render/input loop that ties them together.
//
// Nothing in this package touches a terminal. Input and output are reached
// through the InputSource and RenderSink interfaces.
package life

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Grid is a fixed-size matrix of cells stored in row-major order.
// Dimensions never change after creation.
type Grid struct {
	height int
	width  int
	cells  []bool
}

// NewGrid creates a grid with every cell dead.
// Negative dimensions are treated as zero.
func NewGrid(height, width int) *Grid {
	height, width = core.Max(height, 0), core.Max(width, 0)
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]bool, height*width),
	}
}

// NewRandomGrid creates a grid where each cell is independently alive with
// probability one half.
func NewRandomGrid(height, width int, rng *rand.Rand) *Grid {
	g := NewGrid(height, width)
	for i := range g.cells {
		g.cells[i] = rng.IntN(2) == 1
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Get returns the state of the cell at (row, col).
// Coordinates must already be in range; the grid does not wrap them.
func (g *Grid) Get(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Set writes the state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[g.index(row, col)] = alive
}

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) {
	i := g.index(row, col)
	g.cells[i] = !g.cells[i]
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("life: cell (%d, %d) outside %dx%d grid", row, col, g.height, g.width))
	}
	return row*g.width + col
}

// Wrap resolves any coordinate pair onto the torus.
func (g *Grid) Wrap(row, col int) (int, int) {
	return core.Wrap(row, g.height), core.Wrap(col, g.width)
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{height: g.height, width: g.width, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// String renders live cells as '#' and dead cells as '.', one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
