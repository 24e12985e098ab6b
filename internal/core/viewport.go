package core

// Viewport is the terminal area available to the simulator, measured once at
// startup. The grid never follows later resizes.
type Viewport struct {
	Width  int // Terminal width in characters
	Height int // Terminal height in characters
}

// DefaultViewport is used when the terminal size cannot be queried.
func DefaultViewport() Viewport {
	return Viewport{Width: 80, Height: 24}
}

// GridSize returns the grid dimensions (rows, cols) left after reserving
// hudRows lines for the status and help bars. Dimensions never go negative.
func (v Viewport) GridSize(hudRows int) (rows, cols int) {
	return Max(v.Height-hudRows, 0), Max(v.Width, 0)
}
