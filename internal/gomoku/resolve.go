package gomoku

import (
	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
	"github.com/rocketscienceinc/quantum-gomoku/internal/random"
)

// Resolve draws a definite piece for every marker on the board. Cells are
// visited row-major and each marker consumes exactly one draw from source.
func Resolve(board *entity.Board, source random.Source) entity.ResolvedBoard {
	var resolved entity.ResolvedBoard

	for row := range board {
		for col := range board[row] {
			resolved[row][col] = resolveMarker(board[row][col], source)
		}
	}

	return resolved
}

func resolveMarker(marker entity.Marker, source random.Source) entity.Piece {
	if marker == entity.MarkerEmpty {
		return entity.PieceEmpty
	}

	if random.Percent(source) < marker.BlackChance() {
		return entity.PieceBlack
	}

	return entity.PieceWhite
}
