package gomoku

// Rules is the short rule sheet front ends show next to the board.
var Rules = []string{
	"1. Black goes first. Players take turns, 1 piece per turn.",
	"2. Black's pieces: 90% Black / 70% Black (rotates each turn)",
	"3. White's pieces: 90% White / 70% White (rotates each turn)",
	"4. Preview the board to see final pieces once per turn.",
	"5. Win by getting 5 same pieces in a row after preview.",
}
