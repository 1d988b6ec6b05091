// Package tui provides the Bubble Tea integration for the runner platform.
// It handles the terminal UI loop, input mapping, and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a host frame callback.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers frame messages at the
// requested rate. The simulation still advances at a fixed 60 Hz; this only
// controls how often the loop gets a chance to catch up and draw.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
