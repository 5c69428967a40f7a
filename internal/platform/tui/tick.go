// Package tui provides the Bubble Tea integration for the snake games.
// It handles the terminal UI loop, input mapping and frame rendering; the
// game runs its own simulation clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshMsg is sent to redraw the current frame.
type RefreshMsg time.Time

// refreshCmd returns a Bubble Tea command that sends refresh messages at
// the specified rate.
func refreshCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return RefreshMsg(t)
	})
}
