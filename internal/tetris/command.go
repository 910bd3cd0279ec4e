package tetris

import "fmt"

// Command is one of the eight discrete inputs the engine reacts to.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotateCW
	CmdRotateCCW
	CmdTogglePause
	CmdTick
)

var commandNames = map[Command]string{
	CmdMoveLeft:    "move_left",
	CmdMoveRight:   "move_right",
	CmdSoftDrop:    "soft_drop",
	CmdHardDrop:    "hard_drop",
	CmdRotateCW:    "rotate_cw",
	CmdRotateCCW:   "rotate_ccw",
	CmdTogglePause: "toggle_pause",
	CmdTick:        "tick",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the command by name, for replay logs.
func (c Command) MarshalText() ([]byte, error) {
	name, ok := commandNames[c]
	if !ok {
		return nil, fmt.Errorf("tetris: unknown command %d", int(c))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a command from its name.
func (c *Command) UnmarshalText(text []byte) error {
	name := string(text)
	for cmd, n := range commandNames {
		if n == name {
			*c = cmd
			return nil
		}
	}
	return fmt.Errorf("tetris: unknown command %q", name)
}
