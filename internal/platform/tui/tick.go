// Package tui provides the Bubble Tea shell around the engine: the terminal
// UI loop, key mapping, gravity timing, rendering, and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when gravity should pull the active piece down one row.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires one gravity tick after the
// given interval. The interval shrinks as the level rises, so the loop is
// re-armed after every tick rather than running at a fixed rate.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
