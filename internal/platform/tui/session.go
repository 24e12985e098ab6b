package tui

import (
	"errors"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrSessionClosed is returned by Session.Render once the view side has gone
// away, for example when the program exits or an SSH client disconnects.
var ErrSessionClosed = errors.New("tui: session closed")

// commandBuffer is how many key presses may queue up between loop iterations.
const commandBuffer = 64

// Session connects a life.Loop running on its own goroutine to a Bubble Tea
// program. It is the loop's InputSource and RenderSink.
//
// Commands flow in through a buffered channel and frames flow out through a
// one-slot channel where a newer frame replaces an unread one.
type Session struct {
	commands chan life.Command
	frames   chan life.Frame
	done     chan struct{}
	stopped  chan struct{}

	closeOnce sync.Once
	stopOnce  sync.Once
}

// NewSession creates an open session.
func NewSession() *Session {
	return &Session{
		commands: make(chan life.Command, commandBuffer),
		frames:   make(chan life.Frame, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Send queues a command for the loop without blocking.
// Returns false if the queue is full or the session is closed.
func (s *Session) Send(cmd life.Command) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}

// Poll implements life.InputSource. A closed session reports Quit.
func (s *Session) Poll() (life.Command, bool, error) {
	select {
	case <-s.done:
		return life.CommandQuit, true, nil
	default:
	}

	select {
	case cmd := <-s.commands:
		return cmd, true, nil
	default:
		return life.CommandNone, false, nil
	}
}

// Render implements life.RenderSink. It never blocks: an unread frame is
// dropped in favour of the new one.
func (s *Session) Render(f life.Frame) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}

	// Only the loop goroutine sends, so after draining there is room.
	select {
	case <-s.frames:
	default:
	}
	s.frames <- f
	return nil
}

// Frames delivers the most recent frame.
func (s *Session) Frames() <-chan life.Frame {
	return s.frames
}

// Close marks the view side as gone. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Done is closed by Close.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Stopped is closed once the loop has returned.
func (s *Session) Stopped() <-chan struct{} {
	return s.stopped
}

func (s *Session) markStopped() {
	s.stopOnce.Do(func() { close(s.stopped) })
}
