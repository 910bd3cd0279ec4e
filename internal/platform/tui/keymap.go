package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// KeyMapper translates Bubble Tea key messages to engine commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an engine command.
// Returns the command, whether a command matched, and whether the key was a
// quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd tetris.Command, ok bool, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return 0, false, true
	}

	switch key {
	case "left", "h", "a":
		return tetris.CmdMoveLeft, true, false
	case "right", "l", "d":
		return tetris.CmdMoveRight, true, false
	case "down", "j", "s":
		return tetris.CmdSoftDrop, true, false
	case "up", "x", "w":
		return tetris.CmdRotateCW, true, false
	case "z":
		return tetris.CmdRotateCCW, true, false
	case " ":
		return tetris.CmdHardDrop, true, false
	case "p", "esc":
		return tetris.CmdTogglePause, true, false
	}

	return 0, false, false
}

// IsRestart reports whether the key requests a new game.
// Only honored by the model once the current game is over.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}
