package game

import (
	"sync"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/rules"
)

var (
	topoOnce sync.Once
	topo     *core.Topology

	moveGen = rules.NewMoveGenerator()
)

// boardTopology returns the process-wide topology. It is immutable after
// construction, so sharing it between states is safe across goroutines.
func boardTopology() *core.Topology {
	topoOnce.Do(func() {
		topo = core.NewTopology()
	})
	return topo
}

// BoardState is one immutable position of an Avalam game: the tower grid,
// the player to move and both leveling scores.
//
// BoardState is the value a tree-search driver branches on. Play and Copy
// never share mutable storage between states: a parent held by the search is
// unchanged no matter what happens to its children, and siblings cannot
// interfere with one another. A constructed state may be handed freely
// across goroutines.
type BoardState struct {
	grid   *core.Grid
	turn   int
	scores [core.NumPlayers]int
}

// NewBoardState returns the starting position: a single-piece tower on each
// of the 48 cells, colors checkerboarded, player 0 to move, scores zero.
func NewBoardState() *BoardState {
	return &BoardState{grid: core.NewGrid(boardTopology())}
}

// Turn returns the player whose move it is.
func (s *BoardState) Turn() int {
	return s.turn
}

// Tower returns the tower on cell c; ok is false for empty or off-board cells.
func (s *BoardState) Tower(c core.Coordinate) (core.Tower, bool) {
	return s.grid.At(c)
}

// TowerCount returns the number of standing towers.
func (s *BoardState) TowerCount() int {
	return s.grid.TowerCount()
}

// PieceCount returns the total pieces still on the board. Together with the
// leveling scores this is conserved: PieceCount + score0 + score1 == 48.
func (s *BoardState) PieceCount() int {
	return s.grid.PieceCount()
}

// Copy returns a fully independent deep copy.
func (s *BoardState) Copy() *BoardState {
	return &BoardState{
		grid:   s.grid.Clone(),
		turn:   s.turn,
		scores: s.scores,
	}
}

// LegalMoves returns every legal move for playerID, in deterministic order.
// An empty slice is a valid outcome: that player cannot move, and when it is
// the active player the game is over. Fails with core.ErrInvalidPlayer for
// ids outside {0,1}.
func (s *BoardState) LegalMoves(playerID int) ([]core.Move, error) {
	return moveGen.LegalMoves(s.grid, playerID)
}

// Play applies one move for playerID and returns the resulting state along
// with the next player to act (the opponent). The receiver is never modified,
// including on error. Illegal moves fail with an error matching
// core.ErrIllegalMove via errors.Is; invalid ids with core.ErrInvalidPlayer.
func (s *BoardState) Play(m core.Move, playerID int) (*BoardState, int, error) {
	next := s.Copy()
	leveled, credited, err := core.ApplyMove(next.grid, m, playerID)
	if err != nil {
		return nil, 0, err
	}
	if leveled {
		next.scores[credited] += core.MaxHeight
	}
	next.turn = core.Opponent(playerID)
	return next, next.turn, nil
}

// Score returns both players' cumulative leveling credit. Totals never
// decrease over a game.
func (s *BoardState) Score() (p0, p1 int) {
	return s.scores[0], s.scores[1]
}

// Winner returns the player with the higher leveling total, or core.Draw
// when the totals are equal. The answer is authoritative only once
// IsTerminal reports true; callers check that before treating it as final.
func (s *BoardState) Winner() int {
	switch {
	case s.scores[0] > s.scores[1]:
		return 0
	case s.scores[1] > s.scores[0]:
		return 1
	default:
		return core.Draw
	}
}

// IsTerminal reports whether the game is over: the player to move has no
// legal moves. Every play permanently empties at least one cell, so this is
// reached within at most 47 plays from the start.
func (s *BoardState) IsTerminal() bool {
	hasMove, err := moveGen.HasLegalMove(s.grid, s.turn)
	if err != nil {
		// turn is maintained internally and always valid
		panic(err)
	}
	return !hasMove
}
