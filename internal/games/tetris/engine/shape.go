package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// BlockCount is the number of blocks in every tetromino.
const BlockCount = 4

// Color is the content of a board cell: EmptyBlock or a block color.
type Color int

// EmptyBlock marks a cell with no locked content.
const EmptyBlock Color = -1

// Block colors. The order matches the block sprite sheet of the reference
// game and is what gets written into the board.
const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorLightBlue
	ColorDarkBlue
	ColorPurple
	ColorCount
)

// Valid reports whether c is a block color (not EmptyBlock).
func (c Color) Valid() bool {
	return c >= 0 && c < ColorCount
}

// String returns a human-readable color name.
func (c Color) String() string {
	switch c {
	case EmptyBlock:
		return "Empty"
	case ColorRed:
		return "Red"
	case ColorOrange:
		return "Orange"
	case ColorYellow:
		return "Yellow"
	case ColorGreen:
		return "Green"
	case ColorLightBlue:
		return "LightBlue"
	case ColorDarkBlue:
		return "DarkBlue"
	case ColorPurple:
		return "Purple"
	default:
		return "Unknown"
	}
}

// Shape identifies one of the seven tetromino variants.
type Shape int

const (
	ShapeS Shape = iota
	ShapeZ
	ShapeL
	ShapeJ
	ShapeO
	ShapeI
	ShapeT
	ShapeCount
)

var shapeNames = [ShapeCount]string{"S", "Z", "L", "J", "O", "I", "T"}

// String returns the single-letter shape name.
func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return "?"
	}
	return shapeNames[s]
}

// Shapes returns all shape variants in catalog order.
func Shapes() []Shape {
	shapes := make([]Shape, ShapeCount)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

// RandomShape picks a shape uniformly using rng.
func RandomShape(rng *rand.Rand) Shape {
	return Shape(rng.Intn(int(ShapeCount)))
}

type shapeDef struct {
	color  Color
	blocks [BlockCount]Offset
}

// catalog holds the canonical spawn orientation of every shape.
var catalog = [ShapeCount]shapeDef{
	ShapeS: {ColorRed, [BlockCount]Offset{{0, 0}, {-1, 0}, {0, 1}, {1, 1}}},
	ShapeZ: {ColorGreen, [BlockCount]Offset{{0, 0}, {-1, 1}, {0, 1}, {1, 0}}},
	ShapeL: {ColorOrange, [BlockCount]Offset{{0, 0}, {0, 1}, {0, -1}, {1, -1}}},
	ShapeJ: {ColorDarkBlue, [BlockCount]Offset{{0, 0}, {0, 1}, {0, -1}, {-1, -1}}},
	ShapeO: {ColorYellow, [BlockCount]Offset{{0, 0}, {1, 1}, {0, 1}, {1, 0}}},
	ShapeI: {ColorLightBlue, [BlockCount]Offset{{0, 0}, {0, -1}, {0, 1}, {0, 2}}},
	ShapeT: {ColorPurple, [BlockCount]Offset{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}},
}

// Tetromino is a shape with its current rotation state. The block array is
// the only mutable part; shape and color are fixed by SetShape. Tetromino is
// a value type: copying it copies its rotation state.
type Tetromino struct {
	shape  Shape
	color  Color
	blocks [BlockCount]Offset
}

// NewTetromino returns a tetromino in the canonical orientation of s.
func NewTetromino(s Shape) Tetromino {
	var t Tetromino
	t.SetShape(s)
	return t
}

// SetShape replaces the blocks and color with the canonical table entry for
// s. Panics on an unknown shape.
func (t *Tetromino) SetShape(s Shape) {
	if s < 0 || s >= ShapeCount {
		panic(fmt.Sprintf("tetris: unknown shape %d", int(s)))
	}
	def := catalog[s]
	t.shape = s
	t.color = def.color
	t.blocks = def.blocks
}

// Shape returns the variant.
func (t Tetromino) Shape() Shape {
	return t.shape
}

// Color returns the block color.
func (t Tetromino) Color() Color {
	return t.color
}

// Blocks returns the current local block offsets.
func (t Tetromino) Blocks() []Offset {
	blocks := make([]Offset, BlockCount)
	copy(blocks, t.blocks[:])
	return blocks
}

// RotateClockwise turns every block 90 degrees clockwise around the local
// origin. Four rotations restore the original offsets exactly.
func (t *Tetromino) RotateClockwise() {
	for i := range t.blocks {
		t.blocks[i] = t.blocks[i].RotateClockwise()
	}
}

// Rotated returns a clockwise-rotated copy, leaving t untouched.
func (t Tetromino) Rotated() Tetromino {
	t.RotateClockwise()
	return t
}

// String draws the blocks on a 7x7 grid centred on the local origin, 'x'
// for a block and '.' elsewhere. Rows run from y=3 down to y=-3.
func (t Tetromino) String() string {
	var sb strings.Builder
	for y := 3; y > -4; y-- {
		for x := -3; x < 4; x++ {
			if t.has(Offset{X: x, Y: y}) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t Tetromino) has(o Offset) bool {
	for _, b := range t.blocks {
		if b == o {
			return true
		}
	}
	return false
}
