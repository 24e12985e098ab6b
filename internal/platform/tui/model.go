package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// frameMsg carries a frame rendered by the loop.
type frameMsg life.Frame

// loopExitMsg reports that the loop has returned.
type loopExitMsg struct{}

// waitForFrame blocks until the loop renders a frame or stops.
func waitForFrame(s *Session) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-s.Frames():
			return frameMsg(f)
		case <-s.Stopped():
			return loopExitMsg{}
		}
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that displays a running simulation.
// It owns no simulation state: keys go to the loop as commands and the
// loop's frames come back as messages.
type Model struct {
	session  *Session
	keys     KeyMap
	help     help.Model
	theme    Theme
	screen   *core.Screen
	frame    life.Frame
	ready    bool // At least one frame received
	width    int
	quitting bool
}

// NewModel creates a model bound to a session.
func NewModel(session *Session, theme Theme) Model {
	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   theme,
		screen:  core.NewScreen(0, 0),
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.session)
}

// Update handles messages and forwards key presses to the loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = life.Frame(msg)
		m.ready = true
		return m, waitForFrame(m.session)

	case loopExitMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The grid keeps its size; only the HUD follows the window.
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey maps a key to a command and queues it for the loop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.Command(msg)
	if cmd == life.CommandNone {
		return m, nil
	}
	if !m.session.Send(cmd) && cmd == life.CommandQuit {
		// Queue full: closing the session makes the next poll report Quit.
		m.session.Close()
	}
	return m, nil
}

// View renders the latest frame, the status line and the key help.
func (m Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	DrawFrame(m.screen, m.frame, m.theme)

	var b strings.Builder
	if m.frame.Height > 0 {
		b.WriteString(RenderScreen(m.screen))
		b.WriteString("\n")
	}
	b.WriteString(StatusLine(m.frame, m.theme, m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
