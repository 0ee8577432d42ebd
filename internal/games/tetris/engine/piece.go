package engine

// Piece is a tetromino bound to an absolute board location. Its mapped
// cells are the local offsets translated by the location. Legality is not
// maintained here; Session checks every candidate before committing it.
type Piece struct {
	Tetromino
	loc Loc
}

// NewPiece places t at loc.
func NewPiece(t Tetromino, loc Loc) Piece {
	return Piece{Tetromino: t, loc: loc}
}

// Loc returns the piece's board location.
func (p Piece) Loc() Loc {
	return p.loc
}

// SetLoc moves the piece to loc.
func (p *Piece) SetLoc(loc Loc) {
	p.loc = loc
}

// Move translates the piece by (dx, dy).
func (p *Piece) Move(dx, dy int) {
	p.loc = p.loc.Move(dx, dy)
}

// Moved returns a translated copy.
func (p Piece) Moved(dx, dy int) Piece {
	p.Move(dx, dy)
	return p
}

// Rotated returns a clockwise-rotated copy.
func (p Piece) Rotated() Piece {
	p.RotateClockwise()
	return p
}

// Cells returns the absolute board locations of the piece's blocks.
func (p Piece) Cells() []Loc {
	cells := make([]Loc, 0, BlockCount)
	for _, o := range p.blocks {
		cells = append(cells, p.loc.Add(o))
	}
	return cells
}
