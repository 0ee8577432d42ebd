package core

// RuntimeConfig is handed to a game on Reset. The platform fills it from
// command-line flags and the current terminal size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Step calls per second
	Seed     int64 // RNG seed; equal seeds replay equal piece sequences

	// ConfigPath points at a game config file. Empty means the default
	// search order.
	ConfigPath string
	// Difficulty names a preset to apply over the loaded config.
	Difficulty string
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means seed from the clock in the platform layer
	}
}

// StepSeconds returns the simulated time covered by one Step call.
func (c RuntimeConfig) StepSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / float64(DefaultConfig().TickRate)
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Points this game
	Lines    int  // Rows cleared this game
	Pieces   int  // Pieces locked this game
	GameOver bool // Waiting for restart
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState

	// Cleared is the number of rows removed during the step.
	Cleared int
	// Restarted is set when the game started over on its own.
	Restarted bool
}
