package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
	"github.com/rocketscienceinc/quantum-gomoku/internal/gomoku"
)

const (
	boardTop  = 2
	boardLeft = 4
	cellWidth = 4
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleBlack   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWhite   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleWinner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// Draw renders the whole screen.
func (that *App) Draw() {
	view := that.session.Snapshot()

	that.screen.Clear()

	drawText(that.screen, 0, 0, styleTitle, "Quantum Gomoku")

	for col := range entity.BoardSize {
		drawText(that.screen, boardLeft+col*cellWidth, boardTop-1, styleDefault, fmt.Sprintf("%3d", col))
	}

	for row := range entity.BoardSize {
		drawText(that.screen, 0, boardTop+row, styleDefault, fmt.Sprintf("%3d", row))

		for col := range entity.BoardSize {
			text, style := cell(&view, row, col)
			if row == that.cursor.Row && col == that.cursor.Col {
				style = style.Reverse(true)
			}
			drawText(that.screen, boardLeft+col*cellWidth, boardTop+row, style, text)
		}
	}

	y := boardTop + entity.BoardSize + 1
	for _, line := range statusLines(&view) {
		drawText(that.screen, 0, y, styleDefault, line)
		y++
	}

	if that.message != "" {
		drawText(that.screen, 0, y, styleMessage, that.message)
	}
	y += 2

	for _, rule := range gomoku.Rules {
		drawText(that.screen, 0, y, styleDefault, rule)
		y++
	}

	drawText(that.screen, 0, y+1, styleDefault,
		"arrows/hjkl move  space/enter place  o preview  e end turn  r restart  q quit")

	that.screen.Show()
}

// cell returns the text of one board cell: the marker percentage while the
// board is hidden and the resolved piece while it is observed.
func cell(view *entity.GameView, row, col int) (string, tcell.Style) {
	if view.ObservationShown && view.Resolved != nil {
		pos := entity.Position{Row: row, Col: col}

		style := styleDefault
		if view.WinningPieces.Contains(pos) {
			style = styleWinner
		}

		switch view.Resolved.At(row, col) {
		case entity.PieceBlack:
			return "  ●", style
		case entity.PieceWhite:
			return "  ○", style
		default:
			return "  ·", style
		}
	}

	marker := view.Board.At(row, col)
	switch chance := marker.BlackChance(); {
	case chance == 0:
		return "  ·", styleDefault
	case chance > 50:
		return fmt.Sprintf("B%2d", chance), styleBlack
	default:
		return fmt.Sprintf("W%2d", 100-chance), styleWhite
	}
}

func statusLines(view *entity.GameView) []string {
	if view.Over {
		return []string{
			view.OutcomeText,
			"Press r to play again or q to quit.",
		}
	}

	lines := []string{
		fmt.Sprintf("Turn: %s   Previews left: %d", view.Turn, view.ObservationsLeft),
	}

	switch {
	case view.ObservationShown:
		lines = append(lines, "Previewing the board. Press o to hide it.")
	case view.ShowHint:
		lines = append(lines, view.Hint)
	case view.Phase == entity.PhaseAwaitingTurnEnd:
		lines = append(lines, "Piece placed. Press e to end your turn.")
	}

	return lines
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
