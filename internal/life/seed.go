package life

import "math/rand/v2"

// Seeder produces the initial grid of a run and the grid a ResetGrid command
// starts over from.
type Seeder interface {
	Seed(height, width int) *Grid
}

// SeederFunc adapts a function to the Seeder interface.
type SeederFunc func(height, width int) *Grid

// Seed calls f(height, width).
func (f SeederFunc) Seed(height, width int) *Grid { return f(height, width) }

// EmptySeeder yields all-dead grids.
var EmptySeeder Seeder = SeederFunc(NewGrid)

// RandomSeeder fills grids with independent fair coin flips drawn from one
// RNG, so a fixed seed reproduces the whole sequence of resets.
type RandomSeeder struct {
	rng *rand.Rand
}

// NewRandomSeeder creates a RandomSeeder with a deterministic PCG source.
func NewRandomSeeder(seed int64) *RandomSeeder {
	return &RandomSeeder{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns a freshly randomized grid.
func (s *RandomSeeder) Seed(height, width int) *Grid {
	return NewRandomGrid(height, width, s.rng)
}
