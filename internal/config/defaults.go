package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration, used when even
// the embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  engine.DefaultWidth,
			Height: engine.DefaultHeight,
		},
		Timing: TimingConfig{
			BaseInterval: engine.DefaultBaseInterval,
			MinInterval:  engine.DefaultMinInterval,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
		Gameplay: GameplayConfig{
			BlockOut: BlockOutGameOver,
		},
	}
}

// DefaultTetrisYAML returns the embedded default config file.
func DefaultTetrisYAML() []byte {
	return defaultTetrisYAML
}
