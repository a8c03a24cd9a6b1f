// Package tui provides the Bubble Tea front end for the arcade: the game
// model, the picker menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation frame of the model with the given ID.
// Ticks are addressed so a stale chain from a previous game cannot double
// the frame rate of the next one.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
