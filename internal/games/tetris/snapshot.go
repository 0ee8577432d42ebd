package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// GameStateType names what the player currently sees.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	Interval float64 // Seconds per gravity tick
	Board    [][]engine.Color
	Active   []engine.Loc
	Current  engine.Shape
	Next     engine.Shape
	Stats    engine.Stats
	Phase    string // Engine state machine phase
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.IsGameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	f := g.session.Frame()
	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    f.Score,
		Interval: g.session.TickInterval(),
		Board:    f.Cells,
		Active:   f.Active,
		Current:  g.session.Current().Shape(),
		Next:     f.NextShape,
		Stats:    f.Stats,
		Phase:    f.State.String(),
		State:    state,
	}
}
