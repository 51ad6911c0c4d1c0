package sumgrid

import (
	"fmt"

	"github.com/vovakirdan/tui-sumrush/internal/core"
)

// Board layout constants for rendering.
const (
	cellWidth = 4 // Each tile occupies 4 columns: "[ 9]"
	hudHeight = 2 // Top HUD lines
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)

	snap := g.engine.Snapshot()
	switch snap.Status {
	case StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d — Press R to restart", snap.Score))
	case StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.engine.Snapshot()

	var hud string
	if g.mode == ModeTime {
		hud = fmt.Sprintf(" %s — Target: %d  Sum: %d  Score: %d  Time: %ds",
			g.Title(), snap.Target, snap.SelectionSum, snap.Score, snap.TimeLeft)
	} else {
		hud = fmt.Sprintf(" %s — Target: %d  Sum: %d  Score: %d",
			g.Title(), snap.Target, snap.SelectionSum, snap.Score)
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the tiles, the selection, and the cursor.
func (g *Game) renderGrid(dst *core.Screen) {
	gridW := Cols * cellWidth
	offsetX := (dst.Width() - gridW) / 2
	offsetY := hudHeight + 1

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			x := offsetX + col*cellWidth
			y := offsetY + row

			tile, occupied := g.engine.TileAt(row, col)
			underCursor := row == g.cursorRow && col == g.cursorCol

			if !occupied {
				dst.SetCell(x+1, y, '·', core.ColorGray)
				if underCursor {
					dst.SetCell(x, y, '[', core.ColorBrightCyan)
					dst.SetCell(x+2, y, ']', core.ColorBrightCyan)
				}
				continue
			}

			color := core.ColorWhite
			if g.engine.IsSelected(tile.ID) {
				color = core.ColorBrightYellow
			}

			dst.SetCell(x+1, y, rune('0'+tile.Value), color)
			if underCursor {
				dst.SetCell(x, y, '[', core.ColorBrightCyan)
				dst.SetCell(x+2, y, ']', core.ColorBrightCyan)
			} else if g.engine.IsSelected(tile.ID) {
				dst.SetCell(x, y, '(', core.ColorBrightYellow)
				dst.SetCell(x+2, y, ')', core.ColorBrightYellow)
			}
		}
	}

	// Footer hint below the grid
	hint := "Arrows: move  Space: pick  P: pause  Q: quit"
	dst.DrawTextCentered(offsetY+Rows+1, hint)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
