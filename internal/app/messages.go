package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the playback position.
type TickMsg time.Time

// TickCmd returns a command that sends TickMsg after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
