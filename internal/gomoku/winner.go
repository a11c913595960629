package gomoku

import "github.com/rocketscienceinc/quantum-gomoku/internal/entity"

const lineLength = 5

// directions are probed in this order from every origin: horizontal, vertical,
// diagonal down-right, diagonal down-left.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckWinner classifies a resolved board. Only the first line found for each
// color is kept, scanning origins row-major and directions in the order above.
func CheckWinner(board *entity.ResolvedBoard) (entity.Outcome, entity.WinningPieces) {
	var pieces entity.WinningPieces

	for row := range board {
		for col := range board[row] {
			current := board[row][col]
			if current == entity.PieceEmpty {
				continue
			}

			for _, direction := range directions {
				line := scanLine(board, row, col, direction)
				if len(line) < lineLength {
					continue
				}

				switch {
				case current == entity.PieceBlack && pieces.Black == nil:
					pieces.Black = line
				case current == entity.PieceWhite && pieces.White == nil:
					pieces.White = line
				}
			}
		}
	}

	return classify(board, pieces), pieces
}

// scanLine collects the run of pieces matching the origin, walking forward
// from it for at most lineLength cells.
func scanLine(board *entity.ResolvedBoard, row, col int, direction [2]int) []entity.Position {
	current := board[row][col]
	line := []entity.Position{{Row: row, Col: col}}

	for step := 1; step < lineLength; step++ {
		r := row + direction[0]*step
		c := col + direction[1]*step

		if !entity.InBounds(r, c) || board[r][c] != current {
			break
		}

		line = append(line, entity.Position{Row: r, Col: c})
	}

	return line
}

func classify(board *entity.ResolvedBoard, pieces entity.WinningPieces) entity.Outcome {
	blackWins := pieces.Black != nil
	whiteWins := pieces.White != nil

	switch {
	case blackWins && whiteWins:
		return entity.OutcomeDrawBothWin
	case blackWins:
		return entity.OutcomeBlackWins
	case whiteWins:
		return entity.OutcomeWhiteWins
	case board.IsFull():
		return entity.OutcomeDrawBoardFull
	default:
		return entity.OutcomeNone
	}
}
