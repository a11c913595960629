package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/quantum-gomoku/internal/apperror"
	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
)

type resultsUseCase interface {
	Results(ctx context.Context) (*entity.Totals, error)
}

type resultsHandler struct {
	logger  *slog.Logger
	results resultsUseCase
}

type resultsResponse struct {
	*entity.Totals
	Games int64 `json:"games"`
}

func (that *resultsHandler) getResults(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getResults")

	totals, err := that.results.Results(r.Context())
	if errors.Is(err, apperror.ErrResultsUnavailable) {
		http.Error(w, "Results are not available", http.StatusServiceUnavailable)
		return
	}

	if err != nil {
		log.Error("failed to get results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resultsResponse{Totals: totals, Games: totals.Games()}); err != nil {
		log.Error("failed to write results", "error", err)
	}
}
