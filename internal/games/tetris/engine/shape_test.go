package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetRotateClockwiseCycle(t *testing.T) {
	expected := []Offset{{1, 2}, {2, -1}, {-1, -2}, {-2, 1}, {1, 2}}

	o := expected[0]
	for i := 1; i < len(expected); i++ {
		o = o.RotateClockwise()
		assert.Equal(t, expected[i], o, "rotation %d", i)
	}
}

func TestPointHelpers(t *testing.T) {
	p := P(3, -4)

	assert.Equal(t, P(5, -3), p.Add(2, 1))
	assert.Equal(t, P(-4, 3), p.SwapXY())
	assert.Equal(t, P(-6, -4), p.MultiplyX(-2))
	assert.Equal(t, P(3, 12), p.MultiplyY(-3))
	assert.Equal(t, "[3,-4]", p.String())
	assert.Equal(t, L(4, 5), L(1, 1).Add(Offset{3, 4}))
}

func TestSetShapeCanonicalTable(t *testing.T) {
	tests := []struct {
		shape  Shape
		color  Color
		blocks []Offset
	}{
		{ShapeO, ColorYellow, []Offset{{0, 0}, {1, 1}, {0, 1}, {1, 0}}},
		{ShapeI, ColorLightBlue, []Offset{{0, 0}, {0, -1}, {0, 1}, {0, 2}}},
		{ShapeS, ColorRed, []Offset{{0, 0}, {-1, 0}, {0, 1}, {1, 1}}},
		{ShapeZ, ColorGreen, []Offset{{0, 0}, {-1, 1}, {0, 1}, {1, 0}}},
		{ShapeL, ColorOrange, []Offset{{0, 0}, {0, 1}, {0, -1}, {1, -1}}},
		{ShapeJ, ColorDarkBlue, []Offset{{0, 0}, {0, 1}, {0, -1}, {-1, -1}}},
		{ShapeT, ColorPurple, []Offset{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}},
	}

	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			tet := NewTetromino(tc.shape)
			assert.Equal(t, tc.shape, tet.Shape())
			assert.Equal(t, tc.color, tet.Color())
			assert.Equal(t, tc.blocks, tet.Blocks())
		})
	}
}

func TestEveryShapeHasFourBlocks(t *testing.T) {
	var tet Tetromino
	for _, s := range Shapes() {
		tet.RotateClockwise()
		tet.SetShape(s)
		assert.Len(t, tet.Blocks(), BlockCount, "shape %v", s)

		for r := 0; r < 4; r++ {
			tet.RotateClockwise()
			assert.Len(t, tet.Blocks(), BlockCount, "shape %v after %d rotations", s, r+1)
		}
	}
}

func TestSetShapeDiscardsRotation(t *testing.T) {
	tet := NewTetromino(ShapeL)
	tet.RotateClockwise()
	tet.SetShape(ShapeL)

	assert.Equal(t, NewTetromino(ShapeL).Blocks(), tet.Blocks())
}

func TestFourRotationsRestoreEveryShape(t *testing.T) {
	for _, s := range Shapes() {
		tet := NewTetromino(s)
		original := tet.Blocks()

		for i := 0; i < 4; i++ {
			tet.RotateClockwise()
		}
		assert.Equal(t, original, tet.Blocks(), "shape %v", s)
	}
}

func TestRotatedLeavesOriginal(t *testing.T) {
	tet := NewTetromino(ShapeT)
	rotated := tet.Rotated()

	assert.Equal(t, NewTetromino(ShapeT).Blocks(), tet.Blocks())
	assert.Equal(t, []Offset{{0, 0}, {0, 1}, {0, -1}, {-1, 0}}, rotated.Blocks())
}

func TestSetShapeUnknownPanics(t *testing.T) {
	var tet Tetromino
	assert.Panics(t, func() { tet.SetShape(ShapeCount) })
	assert.Panics(t, func() { tet.SetShape(-1) })
}

func TestRandomShapeCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Shape]int)
	for i := 0; i < 700; i++ {
		s := RandomShape(rng)
		require.True(t, s >= 0 && s < ShapeCount)
		seen[s]++
	}
	assert.Len(t, seen, int(ShapeCount))
}

func TestRandomShapeIsSeedable(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		assert.Equal(t, RandomShape(a), RandomShape(b))
	}
}

func TestTetrominoString(t *testing.T) {
	expected := ".......\n" +
		".......\n" +
		"...xx..\n" +
		"...xx..\n" +
		".......\n" +
		".......\n" +
		".......\n"

	assert.Equal(t, expected, NewTetromino(ShapeO).String())
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(NewTetromino(ShapeT), L(4, 6))

	assert.Equal(t, []Loc{{4, 6}, {3, 6}, {5, 6}, {4, 5}}, p.Cells())

	p.Move(-2, 3)
	assert.Equal(t, L(2, 9), p.Loc())
	assert.Equal(t, []Loc{{2, 9}, {1, 9}, {3, 9}, {2, 8}}, p.Cells())

	// Cells is read-only.
	cells := p.Cells()
	cells[0] = L(99, 99)
	assert.Equal(t, L(2, 9), p.Cells()[0])
}
