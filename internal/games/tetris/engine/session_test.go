package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	s := NewSession(opts)
	require.Equal(t, StateFalling, s.State())
	return s
}

// withPiece replaces the active piece with shape at the spawn location.
func withPiece(s *Session, shape Shape) {
	s.current = NewPiece(NewTetromino(shape), s.board.SpawnLoc())
}

func TestSessionResetState(t *testing.T) {
	s := newTestSession(t, Options{TickInterval: ConstantTickInterval(0.5)})

	assert.Zero(t, s.Score())
	assert.Equal(t, 0.5, s.TickInterval())
	assert.Equal(t, s.Board().SpawnLoc(), s.Current().Loc())
	assert.True(t, s.IsPositionLegal(s.Current()))
	assert.Equal(t, Stats{}, s.Stats())
}

func TestSpawnIsLegalForEveryShape(t *testing.T) {
	s := newTestSession(t, Options{})

	for _, shape := range Shapes() {
		p := NewPiece(NewTetromino(shape), s.Board().SpawnLoc())
		assert.True(t, s.IsPositionLegal(p), "shape %v", shape)
	}
}

func TestIsShapeWithinBorders(t *testing.T) {
	s := newTestSession(t, Options{})
	w, h := s.Board().Width(), s.Board().Height()
	tet := NewTetromino(ShapeI) // blocks span y-1..y+2 in column x

	tests := []struct {
		name     string
		loc      Loc
		expected bool
	}{
		{"inside", L(3, 5), true},
		{"above top", L(3, -2), true},
		{"entirely above top", L(3, -10), true},
		{"left of board", L(-1, 5), false},
		{"right of board", L(w, 5), false},
		{"last column", L(w-1, 5), true},
		{"below bottom", L(3, h-2), false},
		{"resting on bottom", L(3, h-3), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.IsShapeWithinBorders(NewPiece(tet, tc.loc)))
		})
	}
}

func TestIsPositionLegalChecksOccupancy(t *testing.T) {
	s := newTestSession(t, Options{})
	p := NewPiece(NewTetromino(ShapeO), L(2, 2))
	require.True(t, s.IsPositionLegal(p))

	s.Board().SetContentAt(3, 3, ColorRed)
	assert.False(t, s.IsPositionLegal(p))
}

func TestAttemptMoveCommitsOnlyLegalMoves(t *testing.T) {
	s := newTestSession(t, Options{})
	p := NewPiece(NewTetromino(ShapeO), L(0, 5))

	assert.True(t, s.AttemptMove(&p, 1, 0))
	assert.Equal(t, L(1, 5), p.Loc())

	before := p
	assert.False(t, s.AttemptMove(&p, -2, 0))
	assert.Equal(t, before, p)

	s.Board().SetContentAt(1, 7, ColorGreen)
	assert.False(t, s.AttemptMove(&p, 0, 1))
	assert.Equal(t, before, p)
}

func TestAttemptRotateLeavesPieceOnFailure(t *testing.T) {
	s := newTestSession(t, Options{})

	// Vertical I hugging the right wall: rotating lays it across the wall.
	p := NewPiece(NewTetromino(ShapeI), L(s.Board().Width()-1, 5))
	before := p
	assert.False(t, s.AttemptRotate(&p))
	assert.Equal(t, before, p)

	p.SetLoc(L(4, 5))
	assert.True(t, s.AttemptRotate(&p))
	assert.Equal(t, NewTetromino(ShapeI).Rotated().Blocks(), p.Blocks())
}

func TestTryTransformDoesNotMutateInput(t *testing.T) {
	s := newTestSession(t, Options{})
	p := NewPiece(NewTetromino(ShapeS), L(4, 4))

	moved, ok := s.TryTransform(p, func(c Piece) Piece { return c.Moved(0, 1) })
	require.True(t, ok)
	assert.Equal(t, L(4, 5), moved.Loc())
	assert.Equal(t, L(4, 4), p.Loc())

	same, ok := s.TryTransform(p, func(c Piece) Piece { return c.Moved(-10, 0) })
	assert.False(t, ok)
	assert.Equal(t, p, same)
}

func TestDropReachesFloor(t *testing.T) {
	s := newTestSession(t, Options{})
	p := NewPiece(NewTetromino(ShapeO), s.Board().SpawnLoc())

	s.Drop(&p)

	assert.Equal(t, s.Board().Height()-2, p.Loc().Y)
	assert.False(t, s.AttemptMove(&p, 0, 1))
}

func TestLockWritesColorAndIgnoresCellsAboveBoard(t *testing.T) {
	s := newTestSession(t, Options{})
	p := NewPiece(NewTetromino(ShapeI), L(2, 0)) // top block at y=-1

	s.Lock(p)

	assert.Equal(t, StateLocking, s.State())
	for y := 0; y <= 2; y++ {
		assert.Equal(t, ColorLightBlue, s.Board().ContentAt(2, y))
	}
	assert.Equal(t, 1, s.Stats().Pieces)
}

func TestProcessGameLoopAccumulatesTime(t *testing.T) {
	s := newTestSession(t, Options{TickInterval: ConstantTickInterval(0.5)})
	start := s.Current().Loc()

	res := s.ProcessGameLoop(0.3)
	assert.False(t, res.Ticked)
	assert.Equal(t, start, s.Current().Loc())

	res = s.ProcessGameLoop(0.3)
	assert.True(t, res.Ticked)
	assert.Equal(t, start.Move(0, 1), s.Current().Loc())
	assert.InDelta(t, 0.1, s.sinceTick, 1e-9)

	// Exactly one interval is not enough: the comparison is strict.
	s.sinceTick = 0
	res = s.ProcessGameLoop(0.5)
	assert.False(t, res.Ticked)
}

func TestProcessGameLoopRunsOneTickPerCall(t *testing.T) {
	s := newTestSession(t, Options{TickInterval: ConstantTickInterval(0.1)})
	start := s.Current().Loc()

	s.ProcessGameLoop(0.35)

	assert.Equal(t, start.Move(0, 1), s.Current().Loc())
	assert.InDelta(t, 0.25, s.sinceTick, 1e-9)
}

func TestTickLocksAtBottomAndLoopSpawnsNext(t *testing.T) {
	s := newTestSession(t, Options{TickInterval: ConstantTickInterval(0.5)})
	withPiece(s, ShapeO)
	s.Drop(&s.current)
	next := s.Next()

	require.True(t, s.Tick())
	require.Equal(t, StateLocking, s.State())

	res := s.ProcessGameLoop(0)
	assert.True(t, res.Locked)
	assert.False(t, res.GameOver)
	assert.Equal(t, StateFalling, s.State())
	assert.Equal(t, next.Shape(), s.Current().Shape())
	assert.Equal(t, s.Board().SpawnLoc(), s.Current().Loc())
	assert.Equal(t, ColorYellow, s.Board().ContentAt(5, s.Board().Height()-1))
}

func TestLoopDoesNotReportTickWhilePieceIsLocked(t *testing.T) {
	s := newTestSession(t, Options{TickInterval: ConstantTickInterval(0.5)})
	withPiece(s, ShapeO)
	s.Drop(&s.current)
	require.True(t, s.Tick())
	ticks := s.Stats().Ticks

	assert.False(t, s.Tick(), "tick while locked")

	res := s.ProcessGameLoop(1)
	assert.False(t, res.Ticked)
	assert.True(t, res.Locked)
	assert.Equal(t, ticks, s.Stats().Ticks)
}

func TestHardDropClearsRowsAndScores(t *testing.T) {
	s := newTestSession(t, Options{TickInterval: LinearTickInterval(0.5, 0.1, 0.05)})
	b := s.Board()

	// Four bottom rows full except the spawn column.
	for y := b.Height() - 4; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if x != b.SpawnLoc().X {
				b.SetContentAt(x, y, ColorRed)
			}
		}
	}
	b.SetContentAt(0, b.Height()-5, ColorGreen)
	withPiece(s, ShapeI)

	require.True(t, s.HandleCommand(CommandHardDrop))
	res := s.ProcessGameLoop(0)

	assert.Equal(t, 4, res.RowsCleared)
	assert.Equal(t, 4, s.Score())
	assert.Equal(t, 4, s.Stats().Rows)
	assert.InDelta(t, 0.3, s.TickInterval(), 1e-9)
	assert.Equal(t, ColorGreen, b.ContentAt(0, b.Height()-1))
	assert.Empty(t, b.CompletedRows())
}

func TestSoftDropLocksWhenBlocked(t *testing.T) {
	s := newTestSession(t, Options{})
	withPiece(s, ShapeO)

	assert.True(t, s.HandleCommand(CommandSoftDropStep))
	assert.Equal(t, s.Board().SpawnLoc().Move(0, 1), s.Current().Loc())

	s.Drop(&s.current)
	assert.True(t, s.HandleCommand(CommandSoftDropStep))
	assert.Equal(t, StateLocking, s.State())

	// Further commands wait for the next loop.
	assert.False(t, s.HandleCommand(CommandMoveLeft))
}

func TestHandleCommandMoves(t *testing.T) {
	s := newTestSession(t, Options{})
	withPiece(s, ShapeO)
	start := s.Current().Loc()

	assert.True(t, s.HandleCommand(CommandMoveLeft))
	assert.Equal(t, start.Move(-1, 0), s.Current().Loc())
	assert.True(t, s.HandleCommand(CommandMoveRight))
	assert.Equal(t, start, s.Current().Loc())
	assert.True(t, s.HandleCommand(CommandRotateCW))
	assert.False(t, s.HandleCommand(CommandNone))
	assert.False(t, s.HandleCommand(Command(99)))
}

func TestBlockOutGameOver(t *testing.T) {
	s := newTestSession(t, Options{BlockOut: BlockOutGameOver})
	s.Board().SetContent(s.Board().SpawnLoc(), ColorRed)
	s.placed = true

	res := s.ProcessGameLoop(0)

	assert.True(t, res.GameOver)
	assert.True(t, s.IsGameOver())
	assert.Equal(t, StateGameOver, s.State())

	// Terminal until Reset.
	assert.False(t, s.HandleCommand(CommandMoveLeft))
	assert.True(t, s.ProcessGameLoop(10).GameOver)

	s.Reset()
	assert.Equal(t, StateFalling, s.State())
	assert.Equal(t, EmptyBlock, s.Board().Content(s.Board().SpawnLoc()))
}

func TestBlockOutReset(t *testing.T) {
	s := newTestSession(t, Options{BlockOut: BlockOutReset})
	s.score = 12
	s.Board().SetContent(s.Board().SpawnLoc(), ColorRed)
	s.placed = true

	res := s.ProcessGameLoop(0)

	assert.True(t, res.Reset)
	assert.False(t, res.GameOver)
	assert.Zero(t, s.Score())
	assert.Equal(t, 1, s.Stats().Resets)
	assert.Equal(t, StateFalling, s.State())
	assert.Equal(t, EmptyBlock, s.Board().Content(s.Board().SpawnLoc()))
}

func TestSessionsWithSameSeedAreDeterministic(t *testing.T) {
	a := NewSession(Options{Seed: 99})
	b := NewSession(Options{Seed: 99})

	commands := []Command{CommandMoveLeft, CommandRotateCW, CommandHardDrop, CommandMoveRight, CommandSoftDropStep}
	for i := 0; i < 300; i++ {
		cmd := commands[i%len(commands)]
		a.HandleCommand(cmd)
		b.HandleCommand(cmd)
		a.ProcessGameLoop(1.0 / 60)
		b.ProcessGameLoop(1.0 / 60)
	}

	assert.Equal(t, a.Frame(), b.Frame())
}

func TestLinearTickIntervalIsMonotonicWithFloor(t *testing.T) {
	f := LinearTickInterval(0.5, 0.1, 0.02)

	prev := f(0)
	assert.Equal(t, 0.5, prev)
	for score := 1; score < 100; score++ {
		cur := f(score)
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, 0.1)
		prev = cur
	}
	assert.Equal(t, 0.1, f(1000))
}

func TestFrameIsSnapshot(t *testing.T) {
	s := newTestSession(t, Options{})
	f := s.Frame()

	assert.Equal(t, s.Board().Width(), f.Width)
	assert.Equal(t, s.Current().Cells(), f.Active)
	assert.Equal(t, s.Next().Blocks(), f.Next)
	assert.Equal(t, s.Next().Color(), f.NextColor)

	landed := s.Current()
	s.Drop(&landed)
	assert.Equal(t, landed.Cells(), f.Ghost)
	assert.Equal(t, s.Board().SpawnLoc(), s.Current().Loc(), "Frame must not move the active piece")

	f.Cells[0][0] = ColorRed
	assert.Equal(t, EmptyBlock, s.Board().ContentAt(0, 0))
}
