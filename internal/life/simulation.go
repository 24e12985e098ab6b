package life

import "time"

// Config configures a new Simulation.
type Config struct {
	Height int              // Grid rows
	Width  int              // Grid columns
	Rate   int              // Initial generations per second (0 = DefaultRate)
	Seeder Seeder           // Initial and reset grid source (nil = EmptySeeder)
	Now    func() time.Time // Wall clock (nil = time.Now)
}

// Simulation is the complete state of one run: the current grid, the clock
// gating its advances and the edit cursor. It is owned by a single loop and
// is not safe for concurrent use.
type Simulation struct {
	grid   *Grid
	clock  *Clock
	cursor Cursor
	seeder Seeder
	now    func() time.Time

	generation     uint64
	population     int
	peakPopulation int
	lastUpdate     time.Duration
	quit           bool
}

// Summary describes a run after it has finished.
type Summary struct {
	Height         int
	Width          int
	Generations    uint64
	Population     int
	PeakPopulation int
}

// New creates a simulation seeded through cfg.Seeder.
func New(cfg Config) *Simulation {
	if cfg.Seeder == nil {
		cfg.Seeder = EmptySeeder
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Simulation{
		seeder: cfg.Seeder,
		now:    cfg.Now,
		clock:  NewClock(cfg.Now()),
	}
	if cfg.Rate > 0 {
		s.clock.SetRate(cfg.Rate)
	}
	s.reseed(cfg.Height, cfg.Width)
	return s
}

func (s *Simulation) reseed(height, width int) {
	g := s.seeder.Seed(height, width)
	if g == nil || g.Height() != height || g.Width() != width {
		g = NewGrid(height, width)
	}
	s.grid = g
	s.generation = 0
	s.population = g.Population()
	s.peakPopulation = s.population
}

// Grid returns the current grid. Callers must not modify it.
func (s *Simulation) Grid() *Grid { return s.grid }

// Clock returns the simulation clock.
func (s *Simulation) Clock() *Clock { return s.clock }

// Cursor returns the cursor position.
func (s *Simulation) Cursor() Cursor { return s.cursor }

// Generation returns the number of generations since the last (re)seed.
func (s *Simulation) Generation() uint64 { return s.generation }

// Done reports whether a Quit command has been processed.
func (s *Simulation) Done() bool { return s.quit }

// Tick advances one generation if the clock allows it: while running once
// the rate interval has elapsed, while paused only for a pending step
// request. It reports whether a generation was computed.
func (s *Simulation) Tick() bool {
	if !s.clock.Due(s.now()) {
		return false
	}
	s.advance()
	return true
}

func (s *Simulation) advance() {
	start := s.now()
	next := NextGeneration(s.grid)
	end := s.now()

	s.grid = next
	s.generation++
	s.population = next.Population()
	s.peakPopulation = max(s.peakPopulation, s.population)
	s.lastUpdate = end.Sub(start)
	s.clock.MarkAdvanced(end)
}

// ToggleCell flips the cell under the cursor. It only has an effect while
// paused and reports whether the grid changed.
func (s *Simulation) ToggleCell() bool {
	if !s.clock.Paused() || s.grid.Height() == 0 || s.grid.Width() == 0 {
		return false
	}
	s.grid.Toggle(s.cursor.Row, s.cursor.Col)
	s.population = s.grid.Population()
	s.peakPopulation = max(s.peakPopulation, s.population)
	return true
}

// ResetGrid replaces the grid with a fresh one from the seeder. Clock and
// cursor are left alone.
func (s *Simulation) ResetGrid() {
	s.reseed(s.grid.Height(), s.grid.Width())
}

// Dispatch applies one command. Unknown commands are ignored.
func (s *Simulation) Dispatch(cmd Command) {
	h, w := s.grid.Height(), s.grid.Width()

	switch cmd {
	case CommandQuit:
		s.quit = true
	case CommandTogglePause:
		s.clock.TogglePause()
	case CommandMoveUp:
		s.cursor.Move(DirUp, h, w)
	case CommandMoveDown:
		s.cursor.Move(DirDown, h, w)
	case CommandMoveLeft:
		s.cursor.Move(DirLeft, h, w)
	case CommandMoveRight:
		s.cursor.Move(DirRight, h, w)
	case CommandToggleCell:
		s.ToggleCell()
	case CommandDecreaseRate:
		s.clock.Slower()
	case CommandIncreaseRate:
		s.clock.Faster()
	case CommandResetRate:
		s.clock.ResetRate()
	case CommandStep:
		s.clock.RequestStep()
	case CommandResetGrid:
		s.ResetGrid()
	default:
	}
}

// Frame returns a read-only snapshot of the state for rendering. The grid in
// the snapshot is a copy. Render timing and rates are filled in by the Loop.
func (s *Simulation) Frame() Frame {
	return Frame{
		Height:     s.grid.Height(),
		Width:      s.grid.Width(),
		Cells:      s.grid.Clone(),
		Cursor:     s.cursor,
		Paused:     s.clock.Paused(),
		Rate:       s.clock.Rate(),
		Generation: s.generation,
		Population: s.population,
		LastUpdate: s.lastUpdate,
	}
}

// Summary returns the run statistics.
func (s *Simulation) Summary() Summary {
	return Summary{
		Height:         s.grid.Height(),
		Width:          s.grid.Width(),
		Generations:    s.generation,
		Population:     s.population,
		PeakPopulation: s.peakPopulation,
	}
}
