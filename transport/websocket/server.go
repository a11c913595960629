package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
)

const (
	readLimit   = 4096
	writeWait   = 10 * time.Second
	idleTimeout = 10 * time.Minute
)

type uGame interface {
	CreateGame(ctx context.Context) (entity.GameView, error)
	PlacePiece(ctx context.Context, id string, row, col int) (entity.GameView, error)
	Observe(ctx context.Context, id string) (entity.GameView, error)
	HideObservation(ctx context.Context, id string) (entity.GameView, error)
	EndTurn(ctx context.Context, id string) (entity.GameView, error)
	Restart(ctx context.Context, id string) (entity.GameView, error)
	GetGame(ctx context.Context, id string) (entity.GameView, error)
	DeleteGame(ctx context.Context, id string) error
}

// client is one websocket connection and the game it plays. Both players of a
// hot-seat game share it.
type client struct {
	conn   *websocket.Conn
	gameID string
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, message *Message, client *client) error
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *Message, *client) error),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGamePlace] = server.handlePlacePiece
	server.handlers[actionGameObserve] = server.gameAction(uGame.Observe)
	server.handlers[actionGameHide] = server.gameAction(uGame.HideObservation)
	server.handlers[actionGameEndTurn] = server.gameAction(uGame.EndTurn)
	server.handlers[actionGameRestart] = server.gameAction(uGame.Restart)
	server.handlers[actionGameState] = server.gameAction(uGame.GetGame)

	return server
}

// Handler - routes /ws to the websocket endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	c := &client{conn: conn}
	defer that.handleDisconnect(ctx, c)

	if err = that.handleMessages(ctx, c); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it goes away.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	c.conn.SetReadLimit(readLimit)

	for {
		if err := c.conn.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
			return fmt.Errorf("failed to set read deadline: %w", err)
		}

		var message Message
		if err := c.conn.ReadJSON(&message); err != nil {
			if isClosed(err) {
				return nil
			}

			if isMalformed(err) {
				log.Debug("failed to unmarshal message", "error", err)
				if err = that.sendErrorResponse(c, "", "malformed message"); err != nil {
					return err
				}
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			if err := that.sendErrorResponse(c, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err := handler(ctx, &message, c); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

func isClosed(err error) bool {
	var closeErr *websocket.CloseError
	return errors.As(err, &closeErr)
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
