package life

// NextGeneration computes the generation after g.
//
// The result is written into a freshly allocated grid and every neighbor
// count reads from g only, so no cell updated in this pass can influence
// another one. g is never modified.
func NextGeneration(g *Grid) *Grid {
	next := NewGrid(g.height, g.width)
	if len(g.cells) == 0 {
		return next
	}
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			alive := g.cells[r*g.width+c]
			next.cells[r*g.width+c] = Survives(alive, LiveNeighbors(g, r, c))
		}
	}
	return next
}

// LiveNeighbors counts the live cells among the eight neighbors of (row, col).
// Each offset is wrapped independently on its own axis, so the first row
// neighbors the last one and the first column neighbors the last one.
func LiveNeighbors(g *Grid, row, col int) int {
	if len(g.cells) == 0 {
		return 0
	}
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.Wrap(row+dr, col+dc)
			if g.cells[r*g.width+c] {
				n++
			}
		}
	}
	return n
}

// Survives applies the B3/S23 rule: a live cell stays alive with two or
// three live neighbors, a dead cell is born with exactly three.
func Survives(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
