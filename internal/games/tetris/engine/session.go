package engine

import "math/rand"

// State is the phase of the session state machine.
type State int

const (
	StateIdle State = iota
	StateSpawning
	StateFalling
	StateLocking
	StateClearing
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateClearing:
		return "clearing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Stats counts what happened since the last Reset. Resets survives a
// block-out reset so the driver can tell how many games ran back to back.
type Stats struct {
	Pieces int // Pieces locked into the board
	Rows   int // Rows cleared
	Ticks  int // Gravity ticks taken
	Resets int // Automatic resets under BlockOutReset
}

// LoopResult reports what one ProcessGameLoop call did.
type LoopResult struct {
	Ticked      bool // A gravity tick ran
	Locked      bool // A locked piece was consumed and the next one spawned (or failed to)
	RowsCleared int  // Rows removed this call
	GameOver    bool // The session is in StateGameOver
	Reset       bool // A block-out restarted the session
}

// Session owns the board and both pieces and is their only mutator.
// It is not safe for concurrent use; one driver calls ProcessGameLoop once
// per frame and HandleCommand between frames.
type Session struct {
	opts  Options
	rng   *rand.Rand
	board *Board

	current Piece
	next    Tetromino

	score          int
	sinceTick      float64
	secondsPerTick float64
	placed         bool
	state          State
	stats          Stats
}

// NewSession creates a session and starts the first game.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		board: NewBoard(opts.Width, opts.Height),
		state: StateIdle,
	}
	s.Reset()
	return s
}

// Reset starts a new game: zero score, recompute the tick interval, clear
// the board, spawn a piece and pick the one on deck.
func (s *Session) Reset() {
	s.score = 0
	s.sinceTick = 0
	s.placed = false
	s.stats = Stats{}
	s.secondsPerTick = s.opts.TickInterval(s.score)
	s.board.Empty()

	s.state = StateSpawning
	s.pickNext()
	s.spawnNext()
	s.pickNext()
	s.state = StateFalling
}

// Board returns the session's board. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// Current returns the active piece.
func (s *Session) Current() Piece {
	return s.current
}

// Next returns the on-deck tetromino.
func (s *Session) Next() Tetromino {
	return s.next
}

// Score returns the number of points scored this game.
func (s *Session) Score() int {
	return s.score
}

// State returns the current state machine phase.
func (s *Session) State() State {
	return s.state
}

// Stats returns the counters for the current game.
func (s *Session) Stats() Stats {
	return s.stats
}

// TickInterval returns the current seconds per gravity tick.
func (s *Session) TickInterval() float64 {
	return s.secondsPerTick
}

// IsGameOver reports whether the session is waiting for Reset.
func (s *Session) IsGameOver() bool {
	return s.state == StateGameOver
}

// IsShapeWithinBorders reports whether every block is inside the left,
// right and bottom borders. The top border is not checked so pieces can
// enter from above the grid.
func (s *Session) IsShapeWithinBorders(p Piece) bool {
	for _, l := range p.Cells() {
		if l.X < 0 || l.X >= s.board.Width() || l.Y >= s.board.Height() {
			return false
		}
	}
	return true
}

// IsPositionLegal reports whether p is within borders and overlaps no
// locked block.
func (s *Session) IsPositionLegal(p Piece) bool {
	return s.IsShapeWithinBorders(p) && s.board.AreLocsEmpty(p.Cells())
}

// TryTransform applies transform to a copy of p and returns the result only
// if it is legal. p itself is never modified.
func (s *Session) TryTransform(p Piece, transform func(Piece) Piece) (Piece, bool) {
	candidate := transform(p)
	if !s.IsPositionLegal(candidate) {
		return p, false
	}
	return candidate, true
}

// AttemptMove moves p by (dx, dy) if the result is legal.
func (s *Session) AttemptMove(p *Piece, dx, dy int) bool {
	moved, ok := s.TryTransform(*p, func(c Piece) Piece {
		return c.Moved(dx, dy)
	})
	if ok {
		*p = moved
	}
	return ok
}

// AttemptRotate rotates p clockwise if the result is legal.
func (s *Session) AttemptRotate(p *Piece) bool {
	rotated, ok := s.TryTransform(*p, Piece.Rotated)
	if ok {
		*p = rotated
	}
	return ok
}

// Drop moves p down until the next step would be illegal.
func (s *Session) Drop(p *Piece) {
	for s.AttemptMove(p, 0, 1) {
	}
}

// Lock copies p's color into the board at its cells and marks that a piece
// was placed. Cells above the board are dropped.
func (s *Session) Lock(p Piece) {
	s.board.SetContents(p.Cells(), p.Color())
	s.placed = true
	s.stats.Pieces++
	s.state = StateLocking
}

// Tick moves the active piece down one row, locking it if it cannot move.
// It reports false and does nothing while a locked piece awaits the loop.
func (s *Session) Tick() bool {
	if s.placed || s.state == StateGameOver {
		return false
	}
	s.stats.Ticks++
	if !s.AttemptMove(&s.current, 0, 1) {
		s.Lock(s.current)
	}
	return true
}

// ProcessGameLoop advances the session by elapsed seconds. At most one
// gravity tick runs per call; the time beyond one interval carries over.
// A piece locked since the previous call is replaced by the on-deck piece,
// completed rows are scored and the tick interval is recomputed.
func (s *Session) ProcessGameLoop(elapsed float64) LoopResult {
	if s.state == StateGameOver {
		return LoopResult{GameOver: true}
	}

	var res LoopResult

	s.sinceTick += elapsed
	if s.sinceTick > s.secondsPerTick {
		res.Ticked = s.Tick()
		s.sinceTick -= s.secondsPerTick
	}

	if !s.placed {
		return res
	}
	res.Locked = true

	s.state = StateSpawning
	if !s.spawnNext() {
		s.blockOut(&res)
		return res
	}
	s.pickNext()

	s.state = StateClearing
	rows := s.board.RemoveCompletedRows()
	s.score += rows
	s.stats.Rows += rows
	res.RowsCleared = rows

	s.secondsPerTick = s.opts.TickInterval(s.score)
	s.placed = false
	s.state = StateFalling
	return res
}

// HandleCommand applies one player command. It returns whether the active
// piece changed. Commands are ignored while a locked piece is waiting for
// the next game loop and after game over.
func (s *Session) HandleCommand(cmd Command) bool {
	if s.placed || s.state == StateGameOver {
		return false
	}

	switch cmd {
	case CommandRotateCW:
		return s.AttemptRotate(&s.current)
	case CommandMoveLeft:
		return s.AttemptMove(&s.current, -1, 0)
	case CommandMoveRight:
		return s.AttemptMove(&s.current, 1, 0)
	case CommandSoftDropStep:
		if !s.AttemptMove(&s.current, 0, 1) {
			s.Lock(s.current)
		}
		return true
	case CommandHardDrop:
		s.Drop(&s.current)
		s.Lock(s.current)
		return true
	default:
		return false
	}
}

func (s *Session) blockOut(res *LoopResult) {
	switch s.opts.BlockOut {
	case BlockOutReset:
		resets := s.stats.Resets + 1
		s.Reset()
		s.stats.Resets = resets
		res.Reset = true
	default:
		s.placed = false
		s.state = StateGameOver
		res.GameOver = true
	}
}

// pickNext puts a random tetromino on deck.
func (s *Session) pickNext() {
	s.next.SetShape(RandomShape(s.rng))
}

// spawnNext makes the on-deck tetromino active at the spawn location and
// reports whether that position is legal.
func (s *Session) spawnNext() bool {
	s.current = NewPiece(s.next, s.board.SpawnLoc())
	return s.IsPositionLegal(s.current)
}
