// Package config loads the YAML game configuration and turns its difficulty
// section into the engine's tick-interval policy.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// TetrisConfig contains all configuration for a Tetris session.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
}

// BoardConfig sets the grid size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity speed in seconds per tick.
type TimingConfig struct {
	BaseInterval float64 `yaml:"base_interval"` // At difficulty level 0
	MinInterval  float64 `yaml:"min_interval"`  // Floor
}

// GameplayConfig holds rule switches.
type GameplayConfig struct {
	BlockOut string `yaml:"block_out"` // "game_over" or "reset"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty grows with score.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which the top level is reached
}

// ScalingConfig defines how strongly the level speeds up gravity.
type ScalingConfig struct {
	// SpeedMultiplier: at level 1.0 gravity runs (1 + SpeedMultiplier) times
	// faster than the base interval.
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

const (
	ProgressionScore = "score"
	ProgressionNone  = "none"

	BlockOutGameOver = "game_over"
	BlockOutReset    = "reset"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset maps a preset name to its value. The empty name means "keep
// the config file's difficulty" and is valid.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports the first field that would make the session unplayable.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 4 {
		return fmt.Errorf("config: board.width must be at least 4, got %d", c.Board.Width)
	}
	if c.Board.Height < 4 {
		return fmt.Errorf("config: board.height must be at least 4, got %d", c.Board.Height)
	}
	if c.Timing.MinInterval <= 0 {
		return fmt.Errorf("config: timing.min_interval must be positive, got %g", c.Timing.MinInterval)
	}
	if c.Timing.BaseInterval < c.Timing.MinInterval {
		return fmt.Errorf("config: timing.base_interval %g is below min_interval %g",
			c.Timing.BaseInterval, c.Timing.MinInterval)
	}
	if l := c.Difficulty.InitialLevel; l < 0 || l > 1 {
		return fmt.Errorf("config: difficulty.initial_level must be within [0, 1], got %g", l)
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		return fmt.Errorf("config: difficulty.scaling.speed_multiplier must not be negative, got %g",
			c.Difficulty.Scaling.SpeedMultiplier)
	}
	switch c.Difficulty.Progression.Type {
	case ProgressionScore, ProgressionNone, "":
	default:
		return fmt.Errorf("config: difficulty.progression.type must be %q or %q, got %q",
			ProgressionScore, ProgressionNone, c.Difficulty.Progression.Type)
	}
	if _, err := c.Gameplay.Policy(); err != nil {
		return err
	}
	return nil
}

// Policy converts the block_out name into the engine's policy. An empty
// name means game over.
func (g GameplayConfig) Policy() (engine.BlockOutPolicy, error) {
	switch g.BlockOut {
	case BlockOutGameOver, "":
		return engine.BlockOutGameOver, nil
	case BlockOutReset:
		return engine.BlockOutReset, nil
	default:
		return engine.BlockOutGameOver, fmt.Errorf("config: gameplay.block_out must be %q or %q, got %q",
			BlockOutGameOver, BlockOutReset, g.BlockOut)
	}
}

// EngineOptions builds session options from a validated config.
func (c TetrisConfig) EngineOptions(seed int64) engine.Options {
	policy, _ := c.Gameplay.Policy()
	return engine.Options{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		Seed:         seed,
		TickInterval: NewDifficultyManager(c.Difficulty).TickIntervalFunc(c.Timing),
		BlockOut:     policy,
	}
}
