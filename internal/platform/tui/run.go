package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Options configures one simulation run.
type Options struct {
	Rows          int           // Grid rows
	Cols          int           // Grid columns
	Rate          int           // Initial generations per second
	Seeder        life.Seeder   // Initial and reset grid source
	FrameInterval time.Duration // Minimum time between loop iterations
	Theme         Theme
	Logger        *log.Logger
}

// Runner is a simulation loop running on its own goroutine, ready to be
// attached to a Bubble Tea program through Model.
type Runner struct {
	session *Session
	sim     *life.Simulation
	theme   Theme
	errc    chan error
}

// Start creates the simulation and starts its loop.
func Start(opts Options) *Runner {
	sim := life.New(life.Config{
		Height: opts.Rows,
		Width:  opts.Cols,
		Rate:   opts.Rate,
		Seeder: opts.Seeder,
	})
	session := NewSession()
	loop := life.NewLoop(sim, session, session, life.LoopConfig{
		FrameInterval: opts.FrameInterval,
		Logger:        opts.Logger,
	})

	r := &Runner{
		session: session,
		sim:     sim,
		theme:   opts.Theme,
		errc:    make(chan error, 1),
	}

	go func() {
		defer session.markStopped()
		err := loop.Run()
		if errors.Is(err, ErrSessionClosed) {
			err = nil
		}
		r.errc <- err
	}()

	return r
}

// Model returns a Bubble Tea model attached to the runner.
func (r *Runner) Model() Model {
	return NewModel(r.session, r.theme)
}

// Wait detaches the view, waits for the loop to return and reports the run.
// It must be called exactly once.
func (r *Runner) Wait() (life.Summary, error) {
	r.session.Close()
	err := <-r.errc
	return r.sim.Summary(), err
}

// Run plays one simulation in the terminal until the user quits.
func Run(opts Options, programOpts ...tea.ProgramOption) (life.Summary, error) {
	r := Start(opts)

	p := tea.NewProgram(
		r.Model(),
		append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...,
	)

	_, progErr := p.Run()
	summary, err := r.Wait()
	if progErr != nil {
		return summary, fmt.Errorf("tui: %w", progErr)
	}
	return summary, err
}
