// Package tui provides the Bubble Tea frontend of the game.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fpsMeter counts ticks over one-second windows.
type fpsMeter struct {
	frames int
	since  time.Time
	value  float64
}

// Frame records a frame at now and returns the latest measured rate.
func (f *fpsMeter) Frame(now time.Time) float64 {
	if f.since.IsZero() {
		f.since = now
	}
	f.frames++
	if d := now.Sub(f.since); d >= time.Second {
		f.value = float64(f.frames) / d.Seconds()
		f.frames = 0
		f.since = now
	}
	return f.value
}
