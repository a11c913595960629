// Package tui is a terminal front end for a local hot-seat game.
package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/quantum-gomoku/internal/apperror"
	"github.com/rocketscienceinc/quantum-gomoku/internal/entity"
	"github.com/rocketscienceinc/quantum-gomoku/internal/gomoku"
)

type App struct {
	logger  *slog.Logger
	screen  tcell.Screen
	session *gomoku.Session

	cursor  entity.Position
	message string
}

func New(logger *slog.Logger, screen tcell.Screen, session *gomoku.Session) *App {
	return &App{
		logger:  logger.With("component", "tui"),
		screen:  screen,
		session: session,
		cursor:  center(),
	}
}

// Run draws the game and handles keys until the player quits or ctx is done.
// The screen must already be initialized.
func (that *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		that.Draw()

		switch ev := that.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			if that.HandleKey(ev) {
				return nil
			}
		}
	}
}

// HandleKey applies one key press. It reports whether the player asked to quit.
func (that *App) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyEnter:
		that.place()
	case tcell.KeyRune:
		return that.handleRune(ev.Rune())
	}

	return false
}

func (that *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 'k':
		that.moveCursor(-1, 0)
	case 'j':
		that.moveCursor(1, 0)
	case 'h':
		that.moveCursor(0, -1)
	case 'l':
		that.moveCursor(0, 1)
	case ' ':
		that.place()
	case 'o':
		that.apply("observe", that.session.Observe)
	case 'e':
		that.apply("end turn", that.session.EndTurn)
	case 'r':
		that.session.Restart()
		that.cursor = center()
		that.message = "New game."
	}

	return false
}

func (that *App) place() {
	that.apply("place", func() error {
		return that.session.PlacePiece(that.cursor.Row, that.cursor.Col)
	})
}

func (that *App) apply(action string, fn func() error) {
	log := that.logger.With("method", "apply", "action", action)

	that.message = ""

	if err := fn(); err != nil {
		log.Debug("action rejected", "error", err)
		that.message = errorText(err)
		return
	}

	if view := that.session.Snapshot(); view.Over && view.ObservationShown {
		log.Info("game finished", "outcome", view.Outcome)
	}
}

func (that *App) moveCursor(dRow, dCol int) {
	row, col := that.cursor.Row+dRow, that.cursor.Col+dCol
	if entity.InBounds(row, col) {
		that.cursor = entity.Position{Row: row, Col: col}
	}
}

func center() entity.Position {
	return entity.Position{Row: entity.BoardSize / 2, Col: entity.BoardSize / 2}
}

func errorText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrPreviewExhausted):
		return "No previews left this turn."
	case errors.Is(err, apperror.ErrGameOver):
		return "The game is over. Press r to play again."
	case errors.Is(err, apperror.ErrWrongPhase):
		return "Not now: " + err.Error()
	default:
		return err.Error()
	}
}
