package entity

import "slices"

// Outcome is the classification of a resolved board.
type Outcome string

const (
	OutcomeNone          Outcome = ""
	OutcomeBlackWins     Outcome = "black"
	OutcomeWhiteWins     Outcome = "white"
	OutcomeDrawBothWin   Outcome = "draw_both"
	OutcomeDrawBoardFull Outcome = "draw_full"
)

func (that Outcome) IsFinal() bool {
	return that != OutcomeNone
}

func (that Outcome) IsDraw() bool {
	return that == OutcomeDrawBothWin || that == OutcomeDrawBoardFull
}

// Text is the banner shown to the players.
func (that Outcome) Text() string {
	switch that {
	case OutcomeBlackWins:
		return "Black Wins!"
	case OutcomeWhiteWins:
		return "White Wins!"
	case OutcomeDrawBothWin:
		return "Draw! Both Players Win!"
	case OutcomeDrawBoardFull:
		return "Draw! Board Full!"
	default:
		return ""
	}
}

// WinningPieces holds the first five-in-a-row found for each color.
type WinningPieces struct {
	Black []Position `json:"black,omitempty"`
	White []Position `json:"white,omitempty"`
}

func (that WinningPieces) Contains(pos Position) bool {
	return slices.Contains(that.Black, pos) || slices.Contains(that.White, pos)
}

func (that WinningPieces) clone() WinningPieces {
	return WinningPieces{
		Black: slices.Clone(that.Black),
		White: slices.Clone(that.White),
	}
}

// Totals counts finished games by outcome.
type Totals struct {
	Black         int64 `json:"black"`
	White         int64 `json:"white"`
	DrawBothWin   int64 `json:"draw_both"`
	DrawBoardFull int64 `json:"draw_full"`
}

func (that *Totals) Games() int64 {
	return that.Black + that.White + that.DrawBothWin + that.DrawBoardFull
}
