package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/life"
)

// KeyMap holds the key bindings of a simulation view.
// Each binding maps to exactly one life.Command.
type KeyMap struct {
	Quit      key.Binding
	Pause     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Slower    key.Binding
	Faster    key.Binding
	ResetRate key.Binding
	Step      key.Binding
	Reset     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "toggle cell"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		ResetRate: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset rate"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "."),
			key.WithHelp("n", "step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset grid"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Toggle, k.Step, k.Slower, k.Faster, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Step, k.Toggle, k.Reset},
		{k.Slower, k.Faster, k.ResetRate, k.Quit},
	}
}

// Command translates a key message to a simulation command.
// Unbound keys yield life.CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) life.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return life.CommandQuit
	case key.Matches(msg, k.Pause):
		return life.CommandTogglePause
	case key.Matches(msg, k.Up):
		return life.CommandMoveUp
	case key.Matches(msg, k.Down):
		return life.CommandMoveDown
	case key.Matches(msg, k.Left):
		return life.CommandMoveLeft
	case key.Matches(msg, k.Right):
		return life.CommandMoveRight
	case key.Matches(msg, k.Toggle):
		return life.CommandToggleCell
	case key.Matches(msg, k.Slower):
		return life.CommandDecreaseRate
	case key.Matches(msg, k.Faster):
		return life.CommandIncreaseRate
	case key.Matches(msg, k.ResetRate):
		return life.CommandResetRate
	case key.Matches(msg, k.Step):
		return life.CommandStep
	case key.Matches(msg, k.Reset):
		return life.CommandResetGrid
	}
	return life.CommandNone
}
