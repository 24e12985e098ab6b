package life

import (
	"errors"
	"testing"
	"time"
)

// scriptedInput returns one scripted command per Poll, then "no event".
type scriptedInput struct {
	script []Command // CommandNone means no event for that poll
	polls  int
	err    error
	failAt int
}

func (in *scriptedInput) Poll() (Command, bool, error) {
	defer func() { in.polls++ }()
	if in.err != nil && in.polls == in.failAt {
		return CommandNone, false, in.err
	}
	if in.polls >= len(in.script) || in.script[in.polls] == CommandNone {
		return CommandNone, false, nil
	}
	return in.script[in.polls], true, nil
}

// recordingSink keeps every rendered frame.
type recordingSink struct {
	frames []Frame
	err    error
	failAt int
}

func (s *recordingSink) Render(f Frame) error {
	if s.err != nil && len(s.frames) == s.failAt {
		return s.err
	}
	s.frames = append(s.frames, f)
	return nil
}

func TestLoopRunsUntilQuit(t *testing.T) {
	clk := newFakeClock()
	sim := New(Config{Height: 5, Width: 5, Seeder: fixedSeeder(blinkerGrid()), Now: clk.Now})

	script := make([]Command, 10)
	script[9] = CommandQuit
	in := &scriptedInput{script: script}
	out := &recordingSink{}

	loop := NewLoop(sim, in, out, LoopConfig{
		FrameInterval: 50 * time.Millisecond,
		Now:           clk.Now,
		Sleep:         clk.Advance,
	})

	if err := loop.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(out.frames) != 10 {
		t.Fatalf("rendered %d frames, expected 10", len(out.frames))
	}
	// Iterations are 50ms apart and the rate is 10/s, so a generation
	// lands on every second frame.
	for i, f := range out.frames {
		if f.Generation != uint64(i/2) {
			t.Errorf("frame %d shows generation %d, expected %d", i, f.Generation, i/2)
		}
	}
	if !sim.Done() {
		t.Error("simulation should be done after Quit")
	}
}

func TestLoopPacing(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     []time.Duration
	}{
		{"busy poll", 0, nil},
		{"frame cap", 50 * time.Millisecond, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			sim := New(Config{Height: 5, Width: 5, Seeder: fixedSeeder(blinkerGrid()), Now: clk.Now})
			in := &scriptedInput{script: []Command{CommandNone, CommandNone, CommandQuit}}

			var slept []time.Duration
			loop := NewLoop(sim, in, &recordingSink{}, LoopConfig{
				FrameInterval: tt.interval,
				Now:           clk.Now,
				Sleep: func(d time.Duration) {
					slept = append(slept, d)
					clk.Advance(d)
				},
			})
			if err := loop.Run(); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			if len(slept) != len(tt.want) {
				t.Fatalf("slept %v, expected %v", slept, tt.want)
			}
			for i := range tt.want {
				if slept[i] != tt.want[i] {
					t.Errorf("sleep %d = %v, expected %v", i, slept[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoopQuitStopsBeforeNextRender(t *testing.T) {
	sim := New(Config{Height: 3, Width: 3})
	in := &scriptedInput{script: []Command{CommandQuit}}
	out := &recordingSink{}

	if err := NewLoop(sim, in, out, LoopConfig{}).Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(out.frames) != 1 {
		t.Errorf("rendered %d frames, expected exactly 1", len(out.frames))
	}
}

func TestLoopPausedStep(t *testing.T) {
	clk := newFakeClock()
	sim := New(Config{Height: 5, Width: 5, Seeder: fixedSeeder(blinkerGrid()), Now: clk.Now})

	in := &scriptedInput{script: []Command{
		CommandTogglePause,
		CommandStep,
		CommandNone,
		CommandNone,
		CommandQuit,
	}}
	out := &recordingSink{}

	loop := NewLoop(sim, in, out, LoopConfig{
		FrameInterval: time.Second,
		Now:           clk.Now,
		Sleep:         clk.Advance,
	})
	if err := loop.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	gens := make([]uint64, len(out.frames))
	for i, f := range out.frames {
		gens[i] = f.Generation
	}
	expected := []uint64{0, 0, 1, 1, 1}
	for i := range expected {
		if gens[i] != expected[i] {
			t.Fatalf("generations per frame = %v, expected %v", gens, expected)
		}
	}
	if !out.frames[3].Cells.Equal(out.frames[2].Cells) {
		t.Error("a render without a new step request must show no change")
	}
	if !out.frames[1].Paused {
		t.Error("frames after the toggle should be paused")
	}
}

func TestLoopPropagatesRenderError(t *testing.T) {
	boom := errors.New("terminal gone")
	sim := New(Config{Height: 3, Width: 3})
	out := &recordingSink{err: boom, failAt: 2}

	err := NewLoop(sim, &scriptedInput{}, out, LoopConfig{}).Run()
	if err != boom {
		t.Errorf("Run() = %v, expected the sink's error unchanged", err)
	}
	if len(out.frames) != 2 {
		t.Errorf("rendered %d frames before failing, expected 2", len(out.frames))
	}
}

func TestLoopPropagatesInputError(t *testing.T) {
	boom := errors.New("stdin closed")
	sim := New(Config{Height: 3, Width: 3})
	in := &scriptedInput{err: boom, failAt: 3}

	err := NewLoop(sim, in, &recordingSink{}, LoopConfig{}).Run()
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected %v", err, boom)
	}
}

func TestLoopReportsTelemetry(t *testing.T) {
	clk := newFakeClock()
	sim := New(Config{Height: 4, Width: 4, Now: clk.Now})

	script := make([]Command, 25)
	script[24] = CommandQuit
	out := &recordingSink{}

	loop := NewLoop(sim, &scriptedInput{script: script}, out, LoopConfig{
		FrameInterval: 50 * time.Millisecond,
		Now:           clk.Now,
		Sleep:         clk.Advance,
	})
	if err := loop.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// 20 iterations per second, a generation on every second one.
	last := out.frames[len(out.frames)-1]
	if last.FPS < 18 || last.FPS > 22 {
		t.Errorf("FPS = %.2f, expected about 20", last.FPS)
	}
	if last.UPS < 9 || last.UPS > 11 {
		t.Errorf("UPS = %.2f, expected about 10", last.UPS)
	}
	if last.Rate != DefaultRate {
		t.Errorf("Rate = %d, expected %d", last.Rate, DefaultRate)
	}
}

func TestMeter(t *testing.T) {
	m := NewMeter(epoch)

	for i := 1; i <= 30; i++ {
		if i%3 == 0 {
			m.Update()
		}
		m.Frame(epoch.Add(time.Duration(i) * 50 * time.Millisecond))
	}

	// The window closes at frame 20 (1s): 20 frames, 6 updates.
	if m.FPS() != 20 {
		t.Errorf("FPS() = %.2f, expected 20", m.FPS())
	}
	if m.UPS() != 6 {
		t.Errorf("UPS() = %.2f, expected 6", m.UPS())
	}
}
