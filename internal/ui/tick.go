// Package ui is the Bubble Tea front end: it maps keys and mouse clicks onto
// game calls, polls the mismatch timer and draws snapshots.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a poll.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
