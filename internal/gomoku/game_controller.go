// Package gomoku holds the rules of quantum five-in-a-row: placing markers,
// observing (resolving) the board, detecting lines and handing the turn over.
package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/quantum-gomoku/internal/apperror"
	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
	"github.com/rocketscienceinc/quantum-gomoku/internal/random"
)

// Session drives one game. It is not safe for concurrent use; hosts that share
// a Session between goroutines must serialize every call.
type Session struct {
	game   *entity.Game
	source random.Source
}

func NewSession(id string, source random.Source) *Session {
	return &Session{
		game:   entity.NewGame(id),
		source: source,
	}
}

func (that *Session) ID() string {
	return that.game.ID
}

func (that *Session) Snapshot() entity.GameView {
	return that.game.Snapshot()
}

// PlacePiece puts the current player's next marker at row, col.
func (that *Session) PlacePiece(row, col int) error {
	if err := validatePlacement(that.game); err != nil {
		return err
	}

	if err := that.game.Board.Place(row, col, that.game.NextMarker()); err != nil {
		return fmt.Errorf("failed to place piece: %w", err)
	}

	that.game.MovesThisTurn++
	that.game.ShowHint = false

	return nil
}

// validatePlacement - checks the game is waiting for this turn's piece.
func validatePlacement(game *entity.Game) error {
	if game.IsOver() {
		return apperror.ErrGameOver
	}

	if game.ObservationShown {
		return fmt.Errorf("%w: hide the observation first", apperror.ErrWrongPhase)
	}

	if !game.IsAwaitingPlacement() {
		return fmt.Errorf("%w: piece already placed this turn", apperror.ErrWrongPhase)
	}

	return nil
}

// Observe toggles the observation. Hiding is always allowed; showing spends
// one of the turn's observations on a fresh resolution of the board.
func (that *Session) Observe() error {
	if that.game.ObservationShown {
		that.game.ObservationShown = false
		return nil
	}

	if that.game.IsOver() {
		return apperror.ErrGameOver
	}

	if that.game.ObservationsLeft <= 0 {
		return apperror.ErrPreviewExhausted
	}

	that.game.ObservationsLeft--
	that.observe()

	return nil
}

// observe - resolves the board and settles the game if a result came out.
func (that *Session) observe() {
	resolved := Resolve(&that.game.Board, that.source)
	outcome, pieces := CheckWinner(&resolved)

	that.game.Resolved = resolved
	that.game.Outcome = outcome
	that.game.WinningPieces = pieces
	that.game.ObservationShown = true

	if outcome.IsFinal() {
		that.game.Over = true
	}
}

// HideObservation hides a shown observation.
func (that *Session) HideObservation() error {
	if !that.game.ObservationShown {
		return fmt.Errorf("%w: no observation is shown", apperror.ErrWrongPhase)
	}

	that.game.ObservationShown = false

	return nil
}

// EndTurn hands the turn to the other player once a piece has been placed.
func (that *Session) EndTurn() error {
	if that.game.IsOver() {
		return apperror.ErrGameOver
	}

	if !that.game.IsAwaitingTurnEnd() {
		return fmt.Errorf("%w: place a piece before ending the turn", apperror.ErrWrongPhase)
	}

	that.game.RotateTurn()

	return nil
}

// Restart starts a new game in the same session.
func (that *Session) Restart() {
	that.game.Reset()
}
