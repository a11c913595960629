package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
)

var ErrNoOutcome = errors.New("game has no outcome")

const resultKeyPrefix = "results:"

type ResultRepository interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Totals(ctx context.Context) (*entity.Totals, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Record - counts one finished game under its outcome.
func (that *dbResult) Record(ctx context.Context, outcome entity.Outcome) error {
	if !outcome.IsFinal() {
		return ErrNoOutcome
	}

	if err := that.client.Incr(ctx, resultKey(outcome)).Err(); err != nil {
		return fmt.Errorf("failed to record %s result: %w", outcome, err)
	}

	return nil
}

func (that *dbResult) Totals(ctx context.Context) (*entity.Totals, error) {
	values, err := that.client.MGet(ctx,
		resultKey(entity.OutcomeBlackWins),
		resultKey(entity.OutcomeWhiteWins),
		resultKey(entity.OutcomeDrawBothWin),
		resultKey(entity.OutcomeDrawBoardFull),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	counts := make([]int64, len(values))
	for i, value := range values {
		if counts[i], err = parseCount(value); err != nil {
			return nil, err
		}
	}

	return &entity.Totals{
		Black:         counts[0],
		White:         counts[1],
		DrawBothWin:   counts[2],
		DrawBoardFull: counts[3],
	}, nil
}

func resultKey(outcome entity.Outcome) string {
	return resultKeyPrefix + string(outcome)
}

// parseCount - MGET returns nil for keys that were never incremented.
func parseCount(value any) (int64, error) {
	if value == nil {
		return 0, nil
	}

	raw, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected result value %v", value)
	}

	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse result count: %w", err)
	}

	return count, nil
}
