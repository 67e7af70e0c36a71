package rules

import (
	"github.com/rs/zerolog"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
)

// WinChecker handles game over detection and winner determination
type WinChecker struct {
	logger zerolog.Logger
	gen    *MoveGenerator
}

// NewWinChecker creates a new win condition checker
func NewWinChecker(logger zerolog.Logger) *WinChecker {
	return &WinChecker{
		logger: logger.With().Str("component", "WinChecker").Logger(),
		gen:    NewMoveGenerator(),
	}
}

// IsTerminal reports whether the game is over: the player to move has no
// legal moves. Board shrinkage guarantees this within a bounded number of
// plays. An invalid activePlayer is a caller bug and reported as terminal
// false with the error.
func (wc *WinChecker) IsTerminal(g *core.Grid, activePlayer int) (bool, error) {
	hasMove, err := wc.gen.HasLegalMove(g, activePlayer)
	if err != nil {
		return false, err
	}
	return !hasMove, nil
}

// Winner compares the two leveling totals and returns the winning player id,
// or core.Draw when they are equal. The result is authoritative only once
// the state is terminal; the caller checks that.
func (wc *WinChecker) Winner(p0, p1 int) int {
	switch {
	case p0 > p1:
		wc.logger.Debug().Int("winner", 0).Int("p0_score", p0).Int("p1_score", p1).Msg("Winner determined")
		return 0
	case p1 > p0:
		wc.logger.Debug().Int("winner", 1).Int("p0_score", p0).Int("p1_score", p1).Msg("Winner determined")
		return 1
	default:
		wc.logger.Debug().Int("p0_score", p0).Int("p1_score", p1).Msg("Scores are equal, game is a draw")
		return core.Draw
	}
}
