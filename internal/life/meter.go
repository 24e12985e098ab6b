package life

import "time"

// meterWindow is the span over which frame and update rates are averaged.
const meterWindow = time.Second

// Meter measures frames and generation updates per second.
type Meter struct {
	start   time.Time
	frames  int
	updates int
	fps     float64
	ups     float64
}

// NewMeter starts measuring at now.
func NewMeter(now time.Time) *Meter {
	return &Meter{start: now}
}

// Update counts one generation advance.
func (m *Meter) Update() {
	m.updates++
}

// Frame counts one rendered frame at now and publishes new rates once a full
// window has elapsed.
func (m *Meter) Frame(now time.Time) {
	m.frames++
	elapsed := now.Sub(m.start)
	if elapsed < meterWindow {
		return
	}
	secs := elapsed.Seconds()
	m.fps = float64(m.frames) / secs
	m.ups = float64(m.updates) / secs
	m.frames, m.updates = 0, 0
	m.start = now
}

// FPS returns the frame rate of the last complete window.
func (m *Meter) FPS() float64 { return m.fps }

// UPS returns the generation rate of the last complete window.
func (m *Meter) UPS() float64 { return m.ups }
