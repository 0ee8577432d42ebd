package engine

import "math"

// Reference timing: seconds per gravity step before any speed-up, and the
// floor the interval never drops below.
const (
	DefaultBaseInterval = 0.5
	DefaultMinInterval  = 0.08
)

// TickIntervalFunc maps the current score to seconds per gravity tick.
// Implementations must be pure and non-increasing in score.
type TickIntervalFunc func(score int) float64

// ConstantTickInterval returns a policy that never speeds up.
func ConstantTickInterval(seconds float64) TickIntervalFunc {
	return func(int) float64 {
		return seconds
	}
}

// LinearTickInterval shortens the interval by perPoint seconds for every
// point scored, never going below floor.
func LinearTickInterval(base, floor, perPoint float64) TickIntervalFunc {
	return func(score int) float64 {
		return math.Max(floor, base-perPoint*float64(score))
	}
}

// BlockOutPolicy decides what happens when a new piece cannot spawn.
type BlockOutPolicy int

const (
	// BlockOutGameOver stops the session in StateGameOver until Reset.
	BlockOutGameOver BlockOutPolicy = iota
	// BlockOutReset starts a fresh game immediately.
	BlockOutReset
)

// String returns the policy name used in config files.
func (p BlockOutPolicy) String() string {
	switch p {
	case BlockOutGameOver:
		return "game_over"
	case BlockOutReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Options configures a Session.
type Options struct {
	Width        int
	Height       int
	Seed         int64
	TickInterval TickIntervalFunc
	BlockOut     BlockOutPolicy
}

// DefaultOptions returns the reference 10x19 board with a linear speed-up.
func DefaultOptions() Options {
	return Options{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		TickInterval: LinearTickInterval(DefaultBaseInterval, DefaultMinInterval, 0.01),
		BlockOut:     BlockOutGameOver,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.TickInterval == nil {
		o.TickInterval = def.TickInterval
	}
	return o
}
