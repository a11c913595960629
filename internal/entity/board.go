package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/quantum-gomoku/internal/apperror"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 15

// Marker is a placed but unresolved piece. The number in the name is the
// percentage chance that it resolves to Black, so Black30 and Black10 are the
// markers White plays with.
type Marker string

const (
	MarkerEmpty   Marker = ""
	MarkerBlack90 Marker = "black90"
	MarkerBlack70 Marker = "black70"
	MarkerBlack30 Marker = "black30"
	MarkerBlack10 Marker = "black10"
)

// Piece is the definite color of a resolved cell.
type Piece string

const (
	PieceEmpty Piece = ""
	PieceBlack Piece = "black"
	PieceWhite Piece = "white"
)

var ErrInvalidMarker = errors.New("invalid marker")

// BlackChance returns the percentage chance that the marker resolves to Black.
// Empty and unknown markers return 0.
func (that Marker) BlackChance() int {
	switch that {
	case MarkerBlack90:
		return 90
	case MarkerBlack70:
		return 70
	case MarkerBlack30:
		return 30
	case MarkerBlack10:
		return 10
	default:
		return 0
	}
}

func (that Marker) IsValid() bool {
	return that.BlackChance() > 0
}

// Label describes the marker from the side it favors, e.g. "90% White" for Black10.
func (that Marker) Label() string {
	chance := that.BlackChance()
	switch {
	case chance == 0:
		return ""
	case chance > 50:
		return fmt.Sprintf("%d%% Black", chance)
	default:
		return fmt.Sprintf("%d%% White", 100-chance)
	}
}

// Position is a board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Board holds the probabilistic markers. Placed markers are permanent.
type Board [BoardSize][BoardSize]Marker

func (that *Board) At(row, col int) Marker {
	return that[row][col]
}

// Place puts the marker on an empty cell.
func (that *Board) Place(row, col int, marker Marker) error {
	if !marker.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMarker, marker)
	}

	if !InBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that[row][col] != MarkerEmpty {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = marker

	return nil
}

func (that *Board) IsEmpty() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] != MarkerEmpty {
				return false
			}
		}
	}
	return true
}

// ResolvedBoard is one observation of the board with every marker drawn to a definite piece.
type ResolvedBoard [BoardSize][BoardSize]Piece

func (that *ResolvedBoard) At(row, col int) Piece {
	return that[row][col]
}

func (that *ResolvedBoard) IsFull() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] == PieceEmpty {
				return false
			}
		}
	}
	return true
}
