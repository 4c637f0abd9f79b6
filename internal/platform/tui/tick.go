// Package tui provides the Bubble Tea integration for the 2048 game.
// It handles the terminal UI loop, input mapping, persistence hooks and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long spawn/merge cues stay highlighted.
const flashDuration = 150 * time.Millisecond

// FlashMsg asks the model to clear the cues of move Seq.
type FlashMsg struct {
	Seq int
}

// flashCmd returns a command that clears the cues of move seq after d.
func flashCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FlashMsg{Seq: seq}
	})
}
