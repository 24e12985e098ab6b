package life

// Command is a discrete user intent delivered by an InputSource.
// The set is closed; Simulation.Dispatch ignores any other value.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandTogglePause
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandToggleCell
	CommandDecreaseRate
	CommandIncreaseRate
	CommandResetRate
	CommandStep
	CommandResetGrid
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandQuit:
		return "Quit"
	case CommandTogglePause:
		return "TogglePause"
	case CommandMoveUp:
		return "MoveUp"
	case CommandMoveDown:
		return "MoveDown"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandToggleCell:
		return "ToggleCell"
	case CommandDecreaseRate:
		return "DecreaseRate"
	case CommandIncreaseRate:
		return "IncreaseRate"
	case CommandResetRate:
		return "ResetRate"
	case CommandStep:
		return "Step"
	case CommandResetGrid:
		return "ResetGrid"
	default:
		return "Unknown"
	}
}
