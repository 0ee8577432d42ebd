// Package tetris adapts the falling-block engine to the game registry.
// It turns fixed-rate Step calls into elapsed-time deltas, platform actions
// into engine commands and engine frames into screen cells.
package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects what happens when the stack reaches the spawn point.
type Mode string

const (
	ModeClassic Mode = "classic" // Game over, restart with R
	ModeEndless Mode = "endless" // Board clears and play continues
)

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	mode    Mode
	session *engine.Session
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	level   *config.DifficultyManager

	// configErr is the error from loading the requested config file, if
	// any; the game then runs on defaults.
	configErr error

	tick     uint64
	paused   bool
	tooSmall bool
}

// New creates a classic game that ends on block-out.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a game that clears the board on block-out.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "tetris_endless"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Tetris (Endless)"
	}
	return "Tetris"
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.paused = false

	cfg, err := config.LoadTetris(runtime.ConfigPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if preset, err := config.ParsePreset(runtime.Difficulty); err == nil {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	if g.mode == ModeEndless {
		cfg.Gameplay.BlockOut = config.BlockOutReset
	}
	g.cfg = cfg
	g.level = config.NewDifficultyManager(cfg.Difficulty)

	g.session = engine.NewSession(cfg.EngineOptions(runtime.Seed))
	g.checkScreenSize()
}

// ConfigError returns the error from loading a custom config, or nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

// checkScreenSize pauses the game while the terminal cannot show the board.
func (g *Game) checkScreenSize() {
	w, h := layoutSize(g.cfg.Board.Width, g.cfg.Board.Height)
	screen := core.NewRect(0, 0, g.runtime.ScreenW, g.runtime.ScreenH)
	g.tooSmall = !screen.Fits(core.NewRect(0, 0, w, h))
}

// Step applies the queued actions and advances the session by one tick
// of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.IsGameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.session.IsGameOver() {
		// Restart after game over is handled by the platform calling Reset.
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if cmd, ok := commandFor(a); ok {
			g.session.HandleCommand(cmd)
		}
	}

	res := g.session.ProcessGameLoop(g.runtime.StepSeconds())
	return core.StepResult{
		State:     g.State(),
		Cleared:   res.RowsCleared,
		Restarted: res.Reset,
	}
}

// HandleAction applies a movement action immediately. Pause, restart and
// menu actions are left for Step.
func (g *Game) HandleAction(a core.Action) bool {
	cmd, ok := commandFor(a)
	if !ok {
		return false
	}
	if g.session != nil && !g.paused && !g.tooSmall {
		g.session.HandleCommand(cmd)
	}
	return true
}

// commandFor maps a platform action to an engine command.
func commandFor(a core.Action) (engine.Command, bool) {
	switch a {
	case core.ActionUp:
		return engine.CommandRotateCW, true
	case core.ActionDown:
		return engine.CommandSoftDropStep, true
	case core.ActionLeft:
		return engine.CommandMoveLeft, true
	case core.ActionRight:
		return engine.CommandMoveRight, true
	case core.ActionDrop:
		return engine.CommandHardDrop, true
	default:
		return engine.CommandNone, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lines:    g.session.Stats().Rows,
		Pieces:   g.session.Stats().Pieces,
		GameOver: g.session.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats returns the session counters for the current game.
func (g *Game) Stats() engine.Stats {
	if g.session == nil {
		return engine.Stats{}
	}
	return g.session.Stats()
}
