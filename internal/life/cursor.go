package life

import "github.com/vovakirdan/tui-life/internal/core"

// Direction is a cursor movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Cursor points at one grid cell. It is used for editing while paused.
type Cursor struct {
	Row int
	Col int
}

// Move shifts the cursor by one cell in dir on a height x width torus:
// stepping off one edge lands on the opposite edge.
// On an empty grid the cursor stays at the origin.
func (c *Cursor) Move(dir Direction, height, width int) {
	if height <= 0 || width <= 0 {
		c.Row, c.Col = 0, 0
		return
	}
	switch dir {
	case DirUp:
		c.Row = core.Wrap(c.Row-1, height)
	case DirDown:
		c.Row = core.Wrap(c.Row+1, height)
	case DirLeft:
		c.Col = core.Wrap(c.Col-1, width)
	case DirRight:
		c.Col = core.Wrap(c.Col+1, width)
	}
}
