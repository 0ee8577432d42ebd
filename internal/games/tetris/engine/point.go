// Package engine implements the falling-block gameplay core: the board,
// the tetromino catalog with its rotation geometry, grid-bound pieces and
// the per-tick session state machine.
//
// The package is pure: it has no terminal, clock, logging or I/O
// dependencies. Time enters only as elapsed seconds passed to
// Session.ProcessGameLoop, and randomness only through a seeded *rand.Rand.
package engine

import "fmt"

// Point is a 2D integer coordinate. X grows to the right, Y grows downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// SwapXY returns the point with its axes exchanged.
func (p Point) SwapXY() Point {
	return Point{X: p.Y, Y: p.X}
}

// MultiplyX returns the point with X scaled by factor.
func (p Point) MultiplyX(factor int) Point {
	return Point{X: p.X * factor, Y: p.Y}
}

// MultiplyY returns the point with Y scaled by factor.
func (p Point) MultiplyY(factor int) Point {
	return Point{X: p.X, Y: p.Y * factor}
}

// String returns the point as "[x,y]".
func (p Point) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}

// Offset is a block position relative to a tetromino's local origin.
// It lives in shape space and cannot be used as a board coordinate without
// going through Loc.Add.
type Offset Point

// RotateClockwise turns the offset 90 degrees clockwise around the local
// origin: (x, y) -> (y, -x).
func (o Offset) RotateClockwise() Offset {
	return Offset(Point(o).SwapXY().MultiplyY(-1))
}

// String returns the offset as "[x,y]".
func (o Offset) String() string {
	return Point(o).String()
}

// Loc is an absolute board coordinate. Y may be negative while a piece is
// entering from above the visible grid.
type Loc Point

// L is a convenience constructor for Loc.
func L(x, y int) Loc {
	return Loc{X: x, Y: y}
}

// Add maps a shape-local offset onto the board relative to l.
func (l Loc) Add(o Offset) Loc {
	return Loc{X: l.X + o.X, Y: l.Y + o.Y}
}

// Move returns the location translated by (dx, dy).
func (l Loc) Move(dx, dy int) Loc {
	return Loc(Point(l).Add(dx, dy))
}

// String returns the location as "[x,y]".
func (l Loc) String() string {
	return Point(l).String()
}
