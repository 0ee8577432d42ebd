package engine

// Command is a discrete player input event.
type Command int

const (
	CommandNone Command = iota
	CommandRotateCW
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDropStep
	CommandHardDrop
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandRotateCW:
		return "RotateCW"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandSoftDropStep:
		return "SoftDropStep"
	case CommandHardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}
