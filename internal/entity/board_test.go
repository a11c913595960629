package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/quantum-gomoku/internal/apperror"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places a marker on an empty cell", func(t *testing.T) {
		var board Board

		err := board.Place(14, 0, MarkerBlack10)

		require.NoError(t, err)
		assert.Equal(t, MarkerBlack10, board.At(14, 0))
		assert.False(t, board.IsEmpty())
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		var board Board
		require.NoError(t, board.Place(3, 3, MarkerBlack90))

		err := board.Place(3, 3, MarkerBlack30)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MarkerBlack90, board.At(3, 3))
	})

	t.Run("Error outside the board", func(t *testing.T) {
		var board Board

		for _, pos := range []Position{{-1, 0}, {0, -1}, {BoardSize, 0}, {0, BoardSize}} {
			err := board.Place(pos.Row, pos.Col, MarkerBlack70)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		}
		assert.True(t, board.IsEmpty())
	})

	t.Run("Error on empty marker", func(t *testing.T) {
		var board Board

		err := board.Place(0, 0, MarkerEmpty)

		require.ErrorIs(t, err, ErrInvalidMarker)
		assert.True(t, board.IsEmpty())
	})
}

func TestMarker(t *testing.T) {
	tests := []struct {
		marker Marker
		chance int
		label  string
	}{
		{marker: MarkerBlack90, chance: 90, label: "90% Black"},
		{marker: MarkerBlack70, chance: 70, label: "70% Black"},
		{marker: MarkerBlack30, chance: 30, label: "70% White"},
		{marker: MarkerBlack10, chance: 10, label: "90% White"},
		{marker: MarkerEmpty, chance: 0, label: ""},
		{marker: Marker("black50"), chance: 0, label: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.marker), func(t *testing.T) {
			assert.Equal(t, tt.chance, tt.marker.BlackChance())
			assert.Equal(t, tt.chance > 0, tt.marker.IsValid())
			assert.Equal(t, tt.label, tt.marker.Label())
		})
	}
}

func TestResolvedBoard_IsFull(t *testing.T) {
	var board ResolvedBoard
	assert.False(t, board.IsFull())

	for r := range board {
		for c := range board[r] {
			board[r][c] = PieceWhite
		}
	}
	assert.True(t, board.IsFull())

	board[14][14] = PieceEmpty
	assert.False(t, board.IsFull())
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	assert.Equal(t, PlayerBlack, PlayerWhite.Opponent())
	assert.Equal(t, "Black", PlayerBlack.String())
	assert.Equal(t, "White", PlayerWhite.String())
}
