package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/quantum-gomoku/internal/apperror"
	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
)

const errNoGame = "no game in progress, send game:new first"

func (that *Server) handleNewGame(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleNewGame")

	if c.gameID != "" {
		if err := that.uGame.DeleteGame(ctx, c.gameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
			log.Error("failed to delete previous game", "gameID", c.gameID, "error", err)
		}
		c.gameID = ""
	}

	game, err := that.uGame.CreateGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(c, msg.Action, "failed to create a new game")
	}

	c.gameID = game.ID

	log.Info("game started", "gameID", game.ID)

	return that.sendGame(c, msg.Action, game)
}

func (that *Server) handlePlacePiece(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handlePlacePiece")

	if c.gameID == "" {
		return that.sendErrorResponse(c, msg.Action, errNoGame)
	}

	var payloadReq PlacePayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		log.Debug("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(c, msg.Action, "invalid payload")
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		return that.sendErrorResponse(c, msg.Action, "row and col are required")
	}

	game, err := that.uGame.PlacePiece(ctx, c.gameID, *payloadReq.Row, *payloadReq.Col)

	return that.respond(c, msg.Action, game, err)
}

// gameAction - builds a handler for actions that only need the connection's game.
func (that *Server) gameAction(
	action func(ctx context.Context, id string) (entity.GameView, error),
) func(context.Context, *Message, *client) error {
	return func(ctx context.Context, msg *Message, c *client) error {
		if c.gameID == "" {
			return that.sendErrorResponse(c, msg.Action, errNoGame)
		}

		game, err := action(ctx, c.gameID)

		return that.respond(c, msg.Action, game, err)
	}
}

func (that *Server) respond(c *client, action string, game entity.GameView, err error) error {
	if errors.Is(err, apperror.ErrGameNotFound) {
		c.gameID = ""
		return that.sendErrorResponse(c, action, errNoGame)
	}

	if err != nil {
		return that.sendRejection(c, action, game, err)
	}

	return that.sendGame(c, action, game)
}

func (that *Server) handleDisconnect(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleDisconnect")

	if c.gameID == "" {
		return
	}

	if err := that.uGame.DeleteGame(context.WithoutCancel(ctx), c.gameID); err != nil {
		log.Error("failed to delete game", "gameID", c.gameID, "error", err)
		return
	}

	log.Info("client disconnected, game deleted", "gameID", c.gameID)
}
