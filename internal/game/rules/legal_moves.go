package rules

import "github.com/Sh3mm/Avalam-engine-bots/internal/game/core"

// MoveGenerator computes legal moves for players
type MoveGenerator struct{}

// NewMoveGenerator creates a new move generator
func NewMoveGenerator() *MoveGenerator {
	return &MoveGenerator{}
}

// LegalMoves returns every legal move for playerID on the given grid: one
// entry per (owned tower, occupied neighbor) pair whose combined height stays
// within the limit. The enumeration order is deterministic (row-major over
// sources, then the topology's neighbor order), so repeated calls on equal
// grids return identical slices. An empty result is not an error; it signals
// that the player cannot move.
func (mg *MoveGenerator) LegalMoves(g *core.Grid, playerID int) ([]core.Move, error) {
	if !core.IsValidPlayer(playerID) {
		return nil, core.ErrInvalidPlayer
	}

	topo := g.Topology()
	moves := make([]core.Move, 0, 4*topo.NumCells())
	for _, c := range topo.Cells() {
		src, ok := g.At(c)
		if !ok || src.Owner != playerID {
			continue
		}
		for _, n := range topo.Neighbors(c) {
			dst, ok := g.At(n)
			if !ok {
				continue
			}
			if src.Height+dst.Height > core.MaxHeight {
				continue
			}
			moves = append(moves, core.Move{From: c, To: n})
		}
	}
	return moves, nil
}

// HasLegalMove reports whether playerID can move at all. It short-circuits on
// the first legal pair, which keeps terminal checks cheap under search load.
func (mg *MoveGenerator) HasLegalMove(g *core.Grid, playerID int) (bool, error) {
	if !core.IsValidPlayer(playerID) {
		return false, core.ErrInvalidPlayer
	}

	topo := g.Topology()
	for _, c := range topo.Cells() {
		src, ok := g.At(c)
		if !ok || src.Owner != playerID {
			continue
		}
		for _, n := range topo.Neighbors(c) {
			dst, ok := g.At(n)
			if !ok {
				continue
			}
			if src.Height+dst.Height <= core.MaxHeight {
				return true, nil
			}
		}
	}
	return false, nil
}
