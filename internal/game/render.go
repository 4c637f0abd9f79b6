package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// layout describes tile geometry for one board size.
type layout struct {
	cellW int
	cellH int
	gap   int
}

var (
	largeLayout = layout{cellW: 7, cellH: 3, gap: 1}
	smallLayout = layout{cellW: 5, cellH: 1, gap: 1}
)

const hudHeight = 3

func (l layout) boardW() int {
	return engine.Size*l.cellW + (engine.Size+1)*l.gap
}

func (l layout) boardH() int {
	return engine.Size*l.cellH + (engine.Size+1)*l.gap
}

// pickLayout returns the largest layout that fits the screen.
func (g *Game) pickLayout() (layout, bool) {
	for _, l := range []layout{largeLayout, smallLayout} {
		if g.screenW >= l.boardW() && g.screenH >= l.boardH()+hudHeight+1 {
			return l, true
		}
	}
	return layout{}, false
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := g.pickLayout()
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	screen := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-1)
	board := screen.Centered(l.boardW(), l.boardH())

	g.renderHUD(dst, board)
	g.renderBoard(dst, board, l)
	g.renderOverlays(dst, board)

	dst.DrawTextCentered(g.screenH-1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and mode info above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := core.Style{FG: g.theme.Accent, Bold: true}
	muted := core.Style{FG: g.theme.Muted}

	dst.DrawStyledText(board.X, 0, "2048", title)

	scoreStr := fmt.Sprintf("Score: %d  Best: %d", g.score, g.best)
	dst.DrawStyledText(board.Right()-len(scoreStr), 0, scoreStr, core.Style{FG: g.theme.Text, Bold: true})

	var info string
	switch g.mode {
	case ModeCampaign:
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.currentTarget)
	case ModeEndless:
		info = fmt.Sprintf("Endless  Max: %d", engine.MaxTile(g.board))
	default:
		info = fmt.Sprintf("Join the tiles, get to %d!", g.winTile)
	}
	dst.DrawStyledText(board.X, 1, info, muted)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawStyledText(board.Right()-len(movesStr), 1, movesStr, muted)
}

// renderBoard draws the grid background and the tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect, l layout) {
	dst.FillRect(board, core.Style{BG: g.theme.Grid})

	for i, tile := range g.board {
		row, col := engine.Coord(i)
		cell := core.NewRect(
			board.X+l.gap+col*(l.cellW+l.gap),
			board.Y+l.gap+row*(l.cellH+l.gap),
			l.cellW, l.cellH,
		)
		g.renderTile(dst, cell, tile)
	}
}

// renderTile paints one slot. Fresh and merged tiles are drawn bold so the
// platform can flash them briefly.
func (g *Game) renderTile(dst *core.Screen, cell core.Rect, tile engine.Tile) {
	colors := g.theme.TileStyle(tile.Value)
	st := core.Style{FG: colors.FG, BG: colors.BG}
	dst.FillRect(cell, st)
	if tile.Empty() {
		return
	}

	label := strconv.Itoa(tile.Value)
	if tile.Spawned || tile.Merged {
		st.Bold = true
	}
	if tile.Merged && len(label)+2 <= cell.W {
		label = "+" + label
	}

	x := cell.X + (cell.W-len(label))/2
	y := cell.Y + cell.H/2
	dst.DrawStyledText(x, y, label, st)
}

// renderOverlays draws game state banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, board, "You Win!", fmt.Sprintf("Score: %d", g.score), "C: keep going  R: new game")
	case g.levelCleared:
		target := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, board, target, "Final level complete!", "Press C")
		} else {
			g.drawOverlay(dst, board, target, fmt.Sprintf("C: Level %d", g.levelIndex+2))
		}
	case g.campaignDone:
		g.drawOverlay(dst, board, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Max tile: %d", engine.MaxTile(g.board)), "Press R to restart")
	}
}

// drawOverlay draws a centered box with one line of text per argument.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	st := core.Style{FG: g.theme.Text, BG: g.theme.EmptyCell, Bold: true}
	dst.FillRect(box, st)
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawStyledText(x, box.Y+1+i, line, st)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | C: Continue | P: Pause | R: Restart | Q: Quit"
}
