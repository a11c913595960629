package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/quantum-gomoku/internal/apperror"
	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
	"github.com/rocketscienceinc/quantum-gomoku/internal/gomoku"
	"github.com/rocketscienceinc/quantum-gomoku/internal/random"
)

type resultRepo interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Totals(ctx context.Context) (*entity.Totals, error)
}

// GameManager keeps the live sessions of the server. Every action on every
// session goes through one mutex.
type GameManager struct {
	logger    *slog.Logger
	newSource random.Factory
	results   resultRepo

	mu       sync.Mutex
	sessions map[string]*gomoku.Session
}

// NewGameManager - results may be nil, then finished games are not tallied.
func NewGameManager(logger *slog.Logger, newSource random.Factory, results resultRepo) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		newSource: newSource,
		results:   results,

		sessions: make(map[string]*gomoku.Session),
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (entity.GameView, error) {
	log := that.logger.With("method", "CreateGame")

	source, err := that.newSource()
	if err != nil {
		return entity.GameView{}, fmt.Errorf("failed to create random source: %w", err)
	}

	session := gomoku.NewSession(uuid.NewString(), source)

	that.mu.Lock()
	that.sessions[session.ID()] = session
	that.mu.Unlock()

	log.InfoContext(ctx, "game created", "gameID", session.ID())

	return session.Snapshot(), nil
}

func (that *GameManager) PlacePiece(ctx context.Context, id string, row, col int) (entity.GameView, error) {
	return that.apply(ctx, "PlacePiece", id, func(session *gomoku.Session) error {
		return session.PlacePiece(row, col)
	})
}

func (that *GameManager) Observe(ctx context.Context, id string) (entity.GameView, error) {
	return that.apply(ctx, "Observe", id, (*gomoku.Session).Observe)
}

func (that *GameManager) HideObservation(ctx context.Context, id string) (entity.GameView, error) {
	return that.apply(ctx, "HideObservation", id, (*gomoku.Session).HideObservation)
}

func (that *GameManager) EndTurn(ctx context.Context, id string) (entity.GameView, error) {
	return that.apply(ctx, "EndTurn", id, (*gomoku.Session).EndTurn)
}

func (that *GameManager) Restart(ctx context.Context, id string) (entity.GameView, error) {
	return that.apply(ctx, "Restart", id, func(session *gomoku.Session) error {
		session.Restart()
		return nil
	})
}

func (that *GameManager) GetGame(_ context.Context, id string) (entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[id]
	if !ok {
		return entity.GameView{}, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return session.Snapshot(), nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteGame", "gameID", id)

	that.mu.Lock()
	_, ok := that.sessions[id]
	delete(that.sessions, id)
	that.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	log.InfoContext(ctx, "game deleted")

	return nil
}

// Results - returns the tallies of all finished games.
func (that *GameManager) Results(ctx context.Context) (*entity.Totals, error) {
	if that.results == nil {
		return nil, apperror.ErrResultsUnavailable
	}

	totals, err := that.results.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	return totals, nil
}

// apply - runs action on the session under the lock and records the result if the action ended the game.
func (that *GameManager) apply(
	ctx context.Context, method, id string, action func(*gomoku.Session) error,
) (entity.GameView, error) {
	log := that.logger.With("method", method, "gameID", id)

	that.mu.Lock()
	session, ok := that.sessions[id]
	if !ok {
		that.mu.Unlock()
		return entity.GameView{}, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	wasOver := session.Snapshot().Over
	err := action(session)
	view := session.Snapshot()
	that.mu.Unlock()

	if err != nil {
		log.DebugContext(ctx, "action rejected", "error", err)
		return view, err
	}

	if !wasOver && view.Over {
		log.InfoContext(ctx, "game finished", "outcome", view.Outcome)
		that.recordResult(ctx, view.Outcome)
	}

	return view, nil
}

func (that *GameManager) recordResult(ctx context.Context, outcome entity.Outcome) {
	log := that.logger.With("method", "recordResult")

	if that.results == nil {
		return
	}

	if err := that.results.Record(ctx, outcome); err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "failed to record result", "outcome", outcome, "error", err)
	}
}
