package life

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// InputSource delivers user commands. Poll must not block: it returns
// ok == false when no command is pending.
type InputSource interface {
	Poll() (cmd Command, ok bool, err error)
}

// RenderSink displays frames.
type RenderSink interface {
	Render(f Frame) error
}

// LoopConfig tunes a Loop. The zero value busy-polls with the real clock.
type LoopConfig struct {
	// FrameInterval is the minimum time between iterations. Zero disables
	// pacing, making the loop a pure busy-poll.
	FrameInterval time.Duration

	Now    func() time.Time    // nil = time.Now
	Sleep  func(time.Duration) // nil = time.Sleep
	Logger *log.Logger         // nil = discard
}

// Loop drives a Simulation: each iteration advances at most one generation,
// renders the resulting frame, polls for one command and dispatches it.
type Loop struct {
	sim    *Simulation
	in     InputSource
	out    RenderSink
	cfg    LoopConfig
	logger *log.Logger
	meter  *Meter

	lastRender time.Duration
}

// NewLoop wires a simulation to its input and render collaborators.
func NewLoop(sim *Simulation, in InputSource, out RenderSink, cfg LoopConfig) *Loop {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		sim:    sim,
		in:     in,
		out:    out,
		cfg:    cfg,
		logger: logger,
		meter:  NewMeter(cfg.Now()),
	}
}

// Run iterates until a Quit command is processed, then returns nil.
// A failing Poll or Render ends the loop and its error is returned as is.
// Quit is only observed between iterations; the current iteration always
// completes first.
func (l *Loop) Run() error {
	l.logger.Debug("loop started",
		"rows", l.sim.Grid().Height(),
		"cols", l.sim.Grid().Width(),
		"rate", l.sim.Clock().Rate(),
	)

	for {
		start := l.cfg.Now()

		if l.sim.Tick() {
			l.meter.Update()
		}

		frame := l.sim.Frame()
		frame.LastRender = l.lastRender
		frame.FPS = l.meter.FPS()
		frame.UPS = l.meter.UPS()

		renderStart := l.cfg.Now()
		if err := l.out.Render(frame); err != nil {
			l.logger.Debug("render failed", "err", err)
			return err
		}
		renderEnd := l.cfg.Now()
		l.lastRender = renderEnd.Sub(renderStart)
		l.meter.Frame(renderEnd)

		cmd, ok, err := l.in.Poll()
		if err != nil {
			l.logger.Debug("input failed", "err", err)
			return err
		}
		if ok {
			l.dispatch(cmd)
			if l.sim.Done() {
				l.logger.Debug("loop finished", "generations", l.sim.Generation())
				return nil
			}
		}

		l.pace(start)
	}
}

func (l *Loop) dispatch(cmd Command) {
	l.sim.Dispatch(cmd)

	switch cmd {
	case CommandTogglePause:
		l.logger.Debug("pause toggled", "paused", l.sim.Clock().Paused())
	case CommandDecreaseRate, CommandIncreaseRate, CommandResetRate:
		l.logger.Debug("rate changed", "rate", l.sim.Clock().Rate())
	case CommandResetGrid:
		l.logger.Debug("grid reset", "population", l.sim.Summary().Population)
	}
}

// pace sleeps for whatever is left of the frame interval.
func (l *Loop) pace(start time.Time) {
	if l.cfg.FrameInterval <= 0 {
		return
	}
	if rest := l.cfg.FrameInterval - l.cfg.Now().Sub(start); rest > 0 {
		l.cfg.Sleep(rest)
	}
}
