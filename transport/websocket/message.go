package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
)

const (
	actionGameNew     = "game:new"
	actionGamePlace   = "game:place"
	actionGameObserve = "game:observe"
	actionGameHide    = "game:hide"
	actionGameEndTurn = "game:end-turn"
	actionGameRestart = "game:restart"
	actionGameState   = "game:state"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// PlacePayload is the payload of game:place.
type PlacePayload struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type ResponsePayload struct {
	Game  *entity.GameView `json:"game,omitempty"`
	Error string           `json:"error,omitempty"`
}

func (that *Server) sendMessage(c *client, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = c.conn.WriteJSON(Message{Action: action, Payload: payloadBytes}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendGame(c *client, action string, game entity.GameView) error {
	return that.sendMessage(c, action, ResponsePayload{Game: &game})
}

func (that *Server) sendErrorResponse(c *client, action, errorMsg string) error {
	if err := that.sendMessage(c, action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

// sendRejection - sends the game as it stands together with the reason the action was refused.
func (that *Server) sendRejection(c *client, action string, game entity.GameView, reason error) error {
	payload := ResponsePayload{Error: reason.Error()}
	if game.ID != "" {
		payload.Game = &game
	}

	if err := that.sendMessage(c, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
