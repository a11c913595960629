package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
	"github.com/rocketscienceinc/quantum-gomoku/internal/random"
	"github.com/rocketscienceinc/quantum-gomoku/internal/usecase"
)

type testClient struct {
	t    *testing.T
	conn *websocket.Conn
}

func newTestServer(t *testing.T) (*usecase.GameManager, *testClient) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, func() (random.Source, error) {
		return random.NewSequence(0), nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := httptest.NewServer(New(logger, manager).Handler(ctx))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return manager, &testClient{t: t, conn: conn}
}

func (that *testClient) send(action string, payload any) ResponsePayload {
	that.t.Helper()

	msg := Message{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(that.t, err)
		msg.Payload = raw
	}

	require.NoError(that.t, that.conn.WriteJSON(msg))

	return that.read(action)
}

func (that *testClient) read(action string) ResponsePayload {
	that.t.Helper()

	require.NoError(that.t, that.conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var resp Message
	require.NoError(that.t, that.conn.ReadJSON(&resp))
	require.Equal(that.t, action, resp.Action)

	var payload ResponsePayload
	require.NoError(that.t, json.Unmarshal(resp.Payload, &payload))

	return payload
}

func TestServer_GameFlow(t *testing.T) {
	_, client := newTestServer(t)

	// Given: a new game
	resp := client.send(actionGameNew, nil)
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Game)
	assert.Equal(t, entity.PlayerBlack, resp.Game.Turn)
	assert.Equal(t, "Next piece: 90% Black", resp.Game.Hint)

	// When: Black places, observes, hides and ends the turn
	resp = client.send(actionGamePlace, PlacePayload{Row: intPtr(7), Col: intPtr(7)})
	require.Empty(t, resp.Error)
	assert.Equal(t, entity.MarkerBlack90, resp.Game.Board.At(7, 7))

	resp = client.send(actionGameObserve, nil)
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Game.Resolved)
	assert.Equal(t, entity.PieceBlack, resp.Game.Resolved.At(7, 7))

	resp = client.send(actionGameHide, nil)
	require.Empty(t, resp.Error)
	assert.Nil(t, resp.Game.Resolved)

	resp = client.send(actionGameEndTurn, nil)
	require.Empty(t, resp.Error)

	// Then: White is up
	resp = client.send(actionGameState, nil)
	require.Empty(t, resp.Error)
	assert.Equal(t, entity.PlayerWhite, resp.Game.Turn)
	assert.Equal(t, entity.MarkerBlack10, resp.Game.NextMarker)
}

func TestServer_Rejections(t *testing.T) {
	t.Run("Actions before game:new", func(t *testing.T) {
		_, client := newTestServer(t)

		resp := client.send(actionGameObserve, nil)

		assert.Equal(t, errNoGame, resp.Error)
		assert.Nil(t, resp.Game)
	})

	t.Run("Occupied cell returns the error and the game", func(t *testing.T) {
		_, client := newTestServer(t)
		client.send(actionGameNew, nil)
		client.send(actionGamePlace, PlacePayload{Row: intPtr(0), Col: intPtr(0)})
		client.send(actionGameEndTurn, nil)

		resp := client.send(actionGamePlace, PlacePayload{Row: intPtr(0), Col: intPtr(0)})

		assert.Contains(t, resp.Error, "cell is already occupied")
		require.NotNil(t, resp.Game)
		assert.Equal(t, entity.PlayerWhite, resp.Game.Turn)
	})

	t.Run("Missing coordinates", func(t *testing.T) {
		_, client := newTestServer(t)
		client.send(actionGameNew, nil)

		resp := client.send(actionGamePlace, map[string]int{"row": 3})

		assert.Equal(t, "row and col are required", resp.Error)
	})

	t.Run("Unknown action", func(t *testing.T) {
		_, client := newTestServer(t)

		resp := client.send("game:teleport", nil)

		assert.Equal(t, "unknown action", resp.Error)
	})

	t.Run("Malformed message keeps the connection open", func(t *testing.T) {
		_, client := newTestServer(t)

		require.NoError(t, client.conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
		resp := client.read("")
		assert.Equal(t, "malformed message", resp.Error)

		resp = client.send(actionGameNew, nil)
		assert.Empty(t, resp.Error)
	})
}

func TestServer_NewGameReplacesPrevious(t *testing.T) {
	manager, client := newTestServer(t)

	first := client.send(actionGameNew, nil)
	second := client.send(actionGameNew, nil)

	require.NotEqual(t, first.Game.ID, second.Game.ID)

	_, err := manager.GetGame(context.Background(), first.Game.ID)
	require.Error(t, err)
}

func TestServer_DisconnectDeletesGame(t *testing.T) {
	manager, client := newTestServer(t)

	// Given: a game bound to the connection
	resp := client.send(actionGameNew, nil)
	gameID := resp.Game.ID

	// When: the client goes away
	require.NoError(t, client.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	require.NoError(t, client.conn.Close())

	// Then: the game is removed
	assert.Eventually(t, func() bool {
		_, err := manager.GetGame(context.Background(), gameID)
		return err != nil
	}, 2*time.Second, 20*time.Millisecond)
}

func intPtr(v int) *int {
	return &v
}
