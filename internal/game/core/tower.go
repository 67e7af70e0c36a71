package core

// Tower is a stack of pieces sitting on one cell.
// Owner is the color of the top piece: 0 or 1. The zero value is an empty cell.
type Tower struct {
	Height int
	Owner  int
}

const (
	// MaxHeight is the tallest a tower may grow. A merge reaching exactly
	// MaxHeight levels the tower: it leaves the board and scores its owner.
	MaxHeight = 5

	// NumPlayers is fixed; Avalam is a two-player game.
	NumPlayers = 2

	// Draw is the Winner sentinel for equal scores.
	Draw = -1
)

func (t Tower) IsEmpty() bool { return t.Height == 0 }

// IsValidPlayer reports whether id names one of the two players.
func IsValidPlayer(id int) bool { return id == 0 || id == 1 }

// Opponent returns the other player's id.
func Opponent(id int) int { return 1 - id }
