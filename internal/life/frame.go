package life

import "time"

// Frame is everything a RenderSink needs to draw one frame.
// Cells is a private copy; sinks may keep it after Render returns.
type Frame struct {
	Height     int
	Width      int
	Cells      *Grid
	Cursor     Cursor
	Paused     bool
	Rate       int
	Generation uint64
	Population int

	LastUpdate time.Duration // Time spent computing the latest generation
	LastRender time.Duration // Time spent in the previous Render call
	FPS        float64       // Frames rendered per second
	UPS        float64       // Generations computed per second
}

// ShowCursor reports whether the cursor should be drawn. It is only usable
// while paused.
func (f Frame) ShowCursor() bool {
	return f.Paused && f.Height > 0 && f.Width > 0
}
