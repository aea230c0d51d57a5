// Package tui runs the shooter in a terminal with Bubble Tea, locally or
// over SSH. It maps keys and the mouse onto game input and draws the
// play field onto the cell grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into elapsed milliseconds.
type frameClock struct {
	last time.Time
}

// Elapsed returns the milliseconds since the previous call. The first call
// returns the nominal frame time for tickRate.
func (c *frameClock) Elapsed(now time.Time, tickRate int) float64 {
	var ms float64
	if c.last.IsZero() {
		ms = 1000 / float64(max(tickRate, 1))
	} else {
		ms = float64(now.Sub(c.last)) / float64(time.Millisecond)
	}
	c.last = now
	return ms
}
