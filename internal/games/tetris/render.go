package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth   = 2  // Screen columns per board cell
	panelGap    = 2  // Columns between board and side panel
	panelWidth  = 14 // Side panel width
	panelHeight = 21 // Rows used by the side panel
	previewSize = 4  // Preview box interior, in cells

	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// layoutSize returns the screen size needed for a board of w x h cells:
// a title row above the framed board and the side panel to its right.
func layoutSize(w, h int) (int, int) {
	boardW := w*cellWidth + 2
	boardH := h + 2
	return boardW + panelGap + panelWidth, 1 + core.Max(boardH, panelHeight)
}

// colorFor maps engine block colors onto the screen palette.
func colorFor(c engine.Color) core.Color {
	switch c {
	case engine.ColorRed:
		return core.ColorRed
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorYellow:
		return core.ColorYellow
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorLightBlue:
		return core.ColorCyan
	case engine.ColorDarkBlue:
		return core.ColorBlue
	case engine.ColorPurple:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	f := g.session.Frame()
	w, h := layoutSize(f.Width, f.Height)
	area := dst.Bounds().Centered(w, h)

	title := g.Title()
	dst.DrawTextColored(area.X+(f.Width*cellWidth+2-len(title))/2, area.Y, title, core.ColorWhite)

	board := core.NewRect(area.X, area.Y+1, f.Width*cellWidth+2, f.Height+2)
	g.renderBoard(dst, board, f)
	g.renderPanel(dst, core.NewRect(board.Right()+panelGap, board.Y, panelWidth, panelHeight), f)
	g.renderOverlays(dst, board, f)

	if area.Bottom() < dst.Height() {
		dst.DrawTextCenteredColored(area.Bottom(), g.Controls(), core.ColorGray)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := layoutSize(g.cfg.Board.Width, g.cfg.Board.Height)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the frame, locked cells, the landing ghost and the
// active piece. Rows above the board are not drawn.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect, f engine.Frame) {
	dst.DrawBoxColored(box, core.ColorGray)

	for y, row := range f.Cells {
		for x, c := range row {
			if c == engine.EmptyBlock {
				dst.SetColored(g.cellX(box, x)+1, box.Y+1+y, emptyRune, core.ColorDim)
				continue
			}
			g.drawCell(dst, box, engine.L(x, y), blockRune, colorFor(c))
		}
	}

	for _, l := range f.Ghost {
		if l.Y >= 0 && f.Cells[l.Y][l.X] == engine.EmptyBlock {
			g.drawCell(dst, box, l, ghostRune, colorFor(f.ActiveColor))
		}
	}
	for _, l := range f.Active {
		if l.Y >= 0 {
			g.drawCell(dst, box, l, blockRune, colorFor(f.ActiveColor))
		}
	}
}

func (g *Game) cellX(box core.Rect, x int) int {
	return box.X + 1 + x*cellWidth
}

func (g *Game) drawCell(dst *core.Screen, box core.Rect, l engine.Loc, r rune, c core.Color) {
	x := g.cellX(box, l.X)
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(x+i, box.Y+1+l.Y, r, c)
	}
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, panel core.Rect, f engine.Frame) {
	dst.DrawText(panel.X, panel.Y, "NEXT")
	preview := core.NewRect(panel.X, panel.Y+1, previewSize*cellWidth+2, previewSize+2)
	dst.DrawBoxColored(preview, core.ColorGray)
	g.renderPreview(dst, preview, f.Next, colorFor(f.NextColor))

	level := 1 + int(g.level.Level(f.Score)*9)
	rows := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", f.Score)},
		{"LINES", fmt.Sprintf("%d", f.Stats.Rows)},
		{"LEVEL", fmt.Sprintf("%d", level)},
		{"SPEED", fmt.Sprintf("%.2fs", g.session.TickInterval())},
	}
	y := preview.Bottom() + 1
	for _, r := range rows {
		dst.DrawTextColored(panel.X, y, r.label, core.ColorGray)
		dst.DrawText(panel.X, y+1, r.value)
		dst.DrawHLine(panel.X, y+2, preview.W, '─', core.ColorDim)
		y += 3
	}

	if g.mode == ModeEndless {
		dst.DrawTextColored(panel.X, y, fmt.Sprintf("RESETS %d", f.Stats.Resets), core.ColorGray)
	}
}

// renderPreview centers the on-deck piece inside box.
func (g *Game) renderPreview(dst *core.Screen, box core.Rect, blocks []engine.Offset, c core.Color) {
	if len(blocks) == 0 {
		return
	}
	minX, minY := blocks[0].X, blocks[0].Y
	maxX, maxY := minX, minY
	for _, o := range blocks[1:] {
		minX, maxX = core.Min(minX, o.X), core.Max(maxX, o.X)
		minY, maxY = core.Min(minY, o.Y), core.Max(maxY, o.Y)
	}
	padX := (previewSize - (maxX - minX + 1)) / 2
	padY := (previewSize - (maxY - minY + 1)) / 2

	for _, o := range blocks {
		g.drawCell(dst, box, engine.L(o.X-minX+padX, o.Y-minY+padY), blockRune, c)
	}
}

// renderOverlays draws pause and game-over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect, f engine.Frame) {
	switch {
	case f.State == engine.StateGameOver:
		g.drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score: %d", f.Score), "Press R to restart")
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered on area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←→ Move  ↑ Rotate  ↓ Soft  Space Drop  P Pause  R Restart  Esc Menu  Q Quit"
}
