package engine

import (
	"fmt"
	"strings"
)

// Reference board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 19
)

// Board is a fixed-size grid of locked blocks. Each cell holds EmptyBlock or
// the Color of the piece that was locked there. Dimensions never change
// after construction.
type Board struct {
	width  int
	height int
	cells  [][]Color // cells[y][x]
	spawn  Loc
}

// NewBoard creates an empty board. Panics if either dimension is not
// positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}

	b := &Board{
		width:  width,
		height: height,
		spawn:  L(width/2, 0),
	}
	b.cells = make([][]Color, height)
	for y := range b.cells {
		b.cells[y] = make([]Color, width)
	}
	b.Empty()
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// SpawnLoc returns the location where new pieces enter the board.
func (b *Board) SpawnLoc() Loc {
	return b.spawn
}

// InBounds reports whether l addresses a cell of the board.
func (b *Board) InBounds(l Loc) bool {
	return l.X >= 0 && l.X < b.width && l.Y >= 0 && l.Y < b.height
}

// Content returns the cell at l. Panics if l is outside the board; callers
// validate coordinates first.
func (b *Board) Content(l Loc) Color {
	b.mustBeInBounds(l)
	return b.cells[l.Y][l.X]
}

// ContentAt returns the cell at (x, y). Panics if outside the board.
func (b *Board) ContentAt(x, y int) Color {
	return b.Content(L(x, y))
}

// SetContent writes a single cell. Panics if l is outside the board.
func (b *Board) SetContent(l Loc, c Color) {
	b.mustBeInBounds(l)
	b.cells[l.Y][l.X] = c
}

// SetContentAt writes the cell at (x, y). Panics if outside the board.
func (b *Board) SetContentAt(x, y int, c Color) {
	b.SetContent(L(x, y), c)
}

// SetContents writes c to every location in locs. Locations outside the
// board are skipped: pieces may legitimately hang above the top edge when
// they lock.
func (b *Board) SetContents(locs []Loc, c Color) {
	for _, l := range locs {
		if b.InBounds(l) {
			b.cells[l.Y][l.X] = c
		}
	}
}

// AreLocsEmpty reports whether every on-board location in locs is empty.
// Off-board locations are ignored, so a list with no on-board locations is
// empty.
func (b *Board) AreLocsEmpty(locs []Loc) bool {
	for _, l := range locs {
		if b.InBounds(l) && b.cells[l.Y][l.X] != EmptyBlock {
			return false
		}
	}
	return true
}

// IsRowCompleted reports whether no cell of the row is empty.
func (b *Board) IsRowCompleted(row int) bool {
	for _, c := range b.cells[row] {
		if c == EmptyBlock {
			return false
		}
	}
	return true
}

// CompletedRows returns the indices of all completed rows in ascending
// order.
func (b *Board) CompletedRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		if b.IsRowCompleted(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveCompletedRows collapses every completed row and returns how many
// were removed.
func (b *Board) RemoveCompletedRows() int {
	rows := b.CompletedRows()
	b.removeRows(rows)
	return len(rows)
}

// removeRows removes rows in the given order. The order must be ascending:
// each removal only shifts rows above it, which are still uncollapsed.
func (b *Board) removeRows(rows []int) {
	for _, r := range rows {
		b.removeRow(r)
	}
}

// removeRow shifts every row above r down by one and blanks row 0.
func (b *Board) removeRow(r int) {
	for y := r; y > 0; y-- {
		b.copyRowIntoRow(y-1, y)
	}
	b.fillRow(0, EmptyBlock)
}

func (b *Board) copyRowIntoRow(src, dst int) {
	copy(b.cells[dst], b.cells[src])
}

func (b *Board) fillRow(row int, c Color) {
	for x := range b.cells[row] {
		b.cells[row][x] = c
	}
}

// Empty clears every cell.
func (b *Board) Empty() {
	for y := range b.cells {
		b.fillRow(y, EmptyBlock)
	}
}

// Rows returns a copy of the grid, indexed [y][x].
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for y := range b.cells {
		rows[y] = make([]Color, b.width)
		copy(rows[y], b.cells[y])
	}
	return rows
}

// String dumps the grid one row per line, cells right-aligned to width 2,
// with -1 for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			fmt.Fprintf(&sb, "%2d", int(c))
		}
	}
	return sb.String()
}

func (b *Board) mustBeInBounds(l Loc) {
	if !b.InBounds(l) {
		panic(fmt.Sprintf("tetris: cell %v outside %dx%d board", l, b.width, b.height))
	}
}
