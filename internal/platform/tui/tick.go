// Package tui runs games in the terminal with Bubble Tea. It owns the
// fixed-rate tick loop, key mapping, the menus, the scoreboard and the
// SSH server; games only see input frames and a screen buffer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model that scheduled it; ticks from a model that was replaced
// are dropped so two loops never drive one game.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a generation number for a new game model.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next tick at the given rate. A non-positive rate
// falls back to 60 ticks per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
