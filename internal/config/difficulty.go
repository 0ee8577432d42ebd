package config

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// DifficultyManager maps score to a difficulty level and the level to a
// gravity interval.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty level (0.0 to 1.0) for a score. It never
// decreases as score grows.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != ProgressionScore {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Interval returns seconds per gravity tick at score: the base interval
// shortened by the level's speed-up, never below the floor.
func (d *DifficultyManager) Interval(timing TimingConfig, score int) float64 {
	speedup := 1.0 + d.Level(score)*d.cfg.Scaling.SpeedMultiplier
	return math.Max(timing.MinInterval, timing.BaseInterval/speedup)
}

// TickIntervalFunc binds the manager to timing for use by the engine.
func (d *DifficultyManager) TickIntervalFunc(timing TimingConfig) engine.TickIntervalFunc {
	return func(score int) float64 {
		return d.Interval(timing, score)
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
