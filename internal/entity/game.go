package entity

const (
	PhaseAwaitingPlacement = "awaiting_placement"
	PhaseAwaitingTurnEnd   = "awaiting_turn_end"
)

// observationsPerTurn is how many resolving observations a player gets each turn.
const observationsPerTurn = 1

// Game is the state of one session. The rules that move it between states live
// in the gomoku package.
type Game struct {
	ID string `json:"id"`

	Board    Board         `json:"board"`
	Resolved ResolvedBoard `json:"resolved"`

	Outcome       Outcome       `json:"outcome"`
	WinningPieces WinningPieces `json:"winning_pieces"`

	Turn          Player `json:"turn"`
	BlackRotation int    `json:"black_rotation"`
	WhiteRotation int    `json:"white_rotation"`
	MovesThisTurn int    `json:"moves_this_turn"`

	ObservationShown bool `json:"observation_shown"`
	ObservationsLeft int  `json:"observations_left"`
	ShowHint         bool `json:"show_hint"`
	Over             bool `json:"over"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:               id,
		Turn:             PlayerBlack,
		ObservationsLeft: observationsPerTurn,
		ShowHint:         true,
	}
}

// Reset puts the game back to its initial state, keeping the ID.
func (that *Game) Reset() {
	*that = *NewGame(that.ID)
}

func (that *Game) IsOver() bool {
	return that.Over
}

func (that *Game) Phase() string {
	if that.MovesThisTurn > 0 {
		return PhaseAwaitingTurnEnd
	}
	return PhaseAwaitingPlacement
}

func (that *Game) IsAwaitingPlacement() bool {
	return that.Phase() == PhaseAwaitingPlacement
}

func (that *Game) IsAwaitingTurnEnd() bool {
	return that.Phase() == PhaseAwaitingTurnEnd
}

// NextMarker is the marker the current player places next.
func (that *Game) NextMarker() Marker {
	if that.Turn == PlayerBlack {
		if that.BlackRotation == 1 {
			return MarkerBlack70
		}
		return MarkerBlack90
	}

	if that.WhiteRotation == 1 {
		return MarkerBlack30
	}
	return MarkerBlack10
}

// RotateTurn advances the departing player's marker tier and hands the turn over.
func (that *Game) RotateTurn() {
	if that.Turn == PlayerBlack {
		that.BlackRotation = (that.BlackRotation + 1) % 2
	} else {
		that.WhiteRotation = (that.WhiteRotation + 1) % 2
	}

	that.Turn = that.Turn.Opponent()
	that.MovesThisTurn = 0
	that.ObservationsLeft = observationsPerTurn
	that.ObservationShown = false
	that.Resolved = ResolvedBoard{}
	that.Outcome = OutcomeNone
	that.WinningPieces = WinningPieces{}
	that.ShowHint = true
}

// Snapshot returns a read-only copy of the game for front ends.
func (that *Game) Snapshot() GameView {
	view := GameView{
		ID:               that.ID,
		Board:            that.Board,
		Turn:             that.Turn,
		NextMarker:       that.NextMarker(),
		Phase:            that.Phase(),
		ObservationShown: that.ObservationShown,
		ObservationsLeft: that.ObservationsLeft,
		Outcome:          that.Outcome,
		OutcomeText:      that.Outcome.Text(),
		WinningPieces:    that.WinningPieces.clone(),
		Over:             that.Over,
		ShowHint:         that.ShowHint,
	}

	if that.ShowHint {
		view.Hint = "Next piece: " + view.NextMarker.Label()
	}

	if that.ObservationShown {
		resolved := that.Resolved
		view.Resolved = &resolved
	}

	return view
}

// GameView is what a front end renders. It shares no memory with the Game it came from.
type GameView struct {
	ID string `json:"id"`

	Board    Board          `json:"board"`
	Resolved *ResolvedBoard `json:"resolved,omitempty"`

	Turn       Player `json:"turn"`
	NextMarker Marker `json:"next_marker"`
	Phase      string `json:"phase"`

	ObservationShown bool `json:"observation_shown"`
	ObservationsLeft int  `json:"observations_left"`

	Outcome       Outcome       `json:"outcome,omitempty"`
	OutcomeText   string        `json:"outcome_text,omitempty"`
	WinningPieces WinningPieces `json:"winning_pieces"`

	Over     bool   `json:"over"`
	ShowHint bool   `json:"show_hint"`
	Hint     string `json:"hint,omitempty"`
}
