package engine

// Frame is everything a renderer needs to draw one frame. It is a copy; the
// session may change after Frame returns without affecting it.
type Frame struct {
	Width  int
	Height int
	Cells  [][]Color // Locked content, indexed [y][x]

	Active      []Loc // Active piece cells in board coordinates
	ActiveColor Color
	Ghost       []Loc // Where the active piece would land on a hard drop

	Next      []Offset // On-deck piece in its own local frame
	NextColor Color
	NextShape Shape

	Score int
	State State
	Stats Stats
}

// Frame captures the current session for rendering.
func (s *Session) Frame() Frame {
	ghost := s.current
	s.Drop(&ghost)

	return Frame{
		Width:       s.board.Width(),
		Height:      s.board.Height(),
		Cells:       s.board.Rows(),
		Active:      s.current.Cells(),
		ActiveColor: s.current.Color(),
		Ghost:       ghost.Cells(),
		Next:        s.next.Blocks(),
		NextColor:   s.next.Color(),
		NextShape:   s.next.Shape(),
		Score:       s.score,
		State:       s.state,
		Stats:       s.stats,
	}
}
