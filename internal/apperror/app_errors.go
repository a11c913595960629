package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrWrongPhase       = errors.New("action is not allowed in the current phase")
	ErrPreviewExhausted = errors.New("no observations left this turn")
	ErrGameOver         = errors.New("game is already over")
	ErrGameNotFound     = errors.New("game not found")

	ErrResultsUnavailable = errors.New("results ledger is not configured")
)
