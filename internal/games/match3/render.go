package match3

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/core"
)

const (
	cellWidth = 3 // bracket, glyph, bracket
	hudHeight = 3
)

// boardSize returns the outer size of the framed board.
func (g *Game) boardSize() (w, h int) {
	return g.board.Columns()*cellWidth + 2, g.board.Rows() + 2
}

// checkScreenSize checks if the screen is large enough for the board, the
// HUD and the footer.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	g.tooSmall = g.screenW < max(w, 30) || g.screenH < h+hudHeight+2
}

// Resize adapts the game to a new screen size without restarting it.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.checkScreenSize()
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	frame := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, frame)
	g.renderBoard(dst, frame)
	dst.DrawTextCenteredColored(frame.Bottom()+1, g.status(), core.ColorGray)
	g.renderOverlays(dst, frame)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	w, h := g.boardSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", max(w, 30), h+hudHeight+2))
}

// renderHUD draws the title, the score and the mode line.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorYellow)

	left := frame.X
	right := frame.Right()
	if w := right - left; w < 30 {
		left = (g.screenW - 30) / 2
		right = left + 30
	}

	score := fmt.Sprintf("Score: %d", g.Score())
	dst.DrawText(left, 1, score)

	var info string
	if lvl, ok := g.Level(); ok {
		info = fmt.Sprintf("%d/%d  Moves: %d", g.LevelScore(), lvl.TargetScore, g.movesLeft)
	} else {
		info = fmt.Sprintf("Moves: %d", g.moves)
	}
	dst.DrawText(right-utf8.RuneCountInString(info), 1, info)

	var mode string
	if lvl, ok := g.Level(); ok {
		mode = fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.cfg.Campaign), levelName(lvl))
	} else {
		mode = fmt.Sprintf("Endless  %d colors", g.board.Palette().Len())
	}
	dst.DrawTextCenteredColored(2, mode, core.ColorGray)
}

// renderBoard draws the frame and one three-column cell per tile. The
// cursor, the picked-up tile and a hinted swap are marked by the brackets
// around the glyph.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame, core.ColorGray)

	d := g.board.Dims()
	for i, c := range g.board.Cells() {
		x := frame.X + 1 + d.Column(i)*cellWidth
		y := frame.Y + 1 + d.Row(i)

		glyph, color := g.tileLook(c)
		dst.SetColored(x+1, y, glyph, color)

		left, right, bracket := g.brackets(i)
		dst.SetColored(x, y, left, bracket)
		dst.SetColored(x+2, y, right, bracket)
	}
}

func (g *Game) tileLook(c board.Cell) (rune, core.Color) {
	if c.Visible {
		return tileGlyph(c.Color), g.tiles[int(c.Color)%len(g.tiles)]
	}
	// Cleared tiles sparkle for the first half of the fade, then dim.
	if g.fade*2 > g.cfg.Animation.FadeTicks {
		return '*', core.ColorWhite
	}
	return '·', core.ColorGray
}

func (g *Game) brackets(i int) (left, right rune, c core.Color) {
	switch {
	case i == g.selected:
		return '<', '>', core.ColorYellow
	case i == g.cursor:
		return '[', ']', core.ColorWhite
	case g.hint != nil && (i == g.hint.A || i == g.hint.B):
		return '(', ')', core.ColorGreen
	}
	return ' ', ' ', core.ColorDefault
}

// status is the line under the board.
func (g *Game) status() string {
	switch {
	case g.rejected:
		return "No match there"
	case g.fade > 0 && g.chain > 1:
		return fmt.Sprintf("+%d  chain x%d", g.lastGain, g.chain)
	case g.fade > 0:
		return fmt.Sprintf("+%d", g.lastGain)
	case g.hint != nil:
		return "Try the tiles in ( )"
	case g.stuck:
		return "No legal swap on this board"
	}
	return ""
}

func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, frame, "PAUSED", "Press P to resume")
	case g.levelCleared:
		target := fmt.Sprintf("Target %d reached!", g.target)
		if g.levelIndex >= len(g.cfg.Campaign)-1 {
			g.drawOverlay(dst, frame, target, "Final level complete!")
		} else {
			g.drawOverlay(dst, frame, target, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won:
		g.drawOverlay(dst, frame, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.Score()), "Press R to restart")
	case g.gameOver && g.mode == ModeCampaign && g.movesLeft <= 0:
		g.drawOverlay(dst, frame, "OUT OF MOVES", fmt.Sprintf("Score: %d", g.Score()), "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, frame, "NO MOVES LEFT", fmt.Sprintf("Score: %d", g.Score()), "Press R to restart")
	case g.stuck && g.fade == 0:
		g.drawOverlay(dst, frame, "NO MOVES", fmt.Sprintf("N: new deal (%d left)", g.shuffles))
	}
}

// drawOverlay draws a framed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, frame core.Rect, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	box := frame.Centered(width+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
