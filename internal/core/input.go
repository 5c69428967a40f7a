package core

// CommandKind is a semantic command, abstracted from physical key presses.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdTurnUp
	CmdTurnDown
	CmdTurnLeft
	CmdTurnRight
	CmdTogglePause
	CmdSelectMode // Mode field carries the 1-based menu slot
	CmdConfirm    // Menu -> Playing
	CmdRestart    // GameOver -> Playing
	CmdQuit       // handled by the platform, never reaches a game
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdTurnUp:
		return "TurnUp"
	case CmdTurnDown:
		return "TurnDown"
	case CmdTurnLeft:
		return "TurnLeft"
	case CmdTurnRight:
		return "TurnRight"
	case CmdTogglePause:
		return "TogglePause"
	case CmdSelectMode:
		return "SelectMode"
	case CmdConfirm:
		return "Confirm"
	case CmdRestart:
		return "Restart"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is a single input command delivered to a game.
type Command struct {
	Kind CommandKind
	Mode int // only meaningful for CmdSelectMode
}

// Cmd builds a command without a payload.
func Cmd(kind CommandKind) Command {
	return Command{Kind: kind}
}

// SelectMode builds a mode-selection command for the given 1-based slot.
func SelectMode(n int) Command {
	return Command{Kind: CmdSelectMode, Mode: n}
}

// IsTurn reports whether the command changes direction.
func (c Command) IsTurn() bool {
	switch c.Kind {
	case CmdTurnUp, CmdTurnDown, CmdTurnLeft, CmdTurnRight:
		return true
	}
	return false
}
