package entity

type Player string

const (
	PlayerBlack Player = "black"
	PlayerWhite Player = "white"
)

// Opponent returns the player who moves after that one.
func (that Player) Opponent() Player {
	if that == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

func (that Player) String() string {
	if that == PlayerBlack {
		return "Black"
	}
	return "White"
}
