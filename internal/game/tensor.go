package game

import "github.com/Sh3mm/Avalam-engine-bots/internal/game/core"

// Numeric projections of a BoardState for external feature-encoding
// consumers. Both are one-way, read-only snapshots: nothing in the engine
// reads them back, and mutating the returned values has no effect on the
// state they came from.

// Tensor encoding layout: one plane of own tower heights, one of opponent
// heights (both scaled to [0,1]), and one marking the playable cells.
const (
	PlaneOwn      = 0
	PlaneOpponent = 1
	PlaneValid    = 2
	NumPlanes     = 3

	// TensorLen is the flattened size of the 3-plane encoding.
	TensorLen = NumPlanes * core.Size * core.Size
)

// EmptyCell is the Snapshot sentinel for cells without a tower, including
// cells outside the board.
const EmptyCell = 0

// Snapshot returns a fixed-shape signed-height view of the grid, indexed
// [y][x]: +h for a player-0 tower of height h, -h for player 1, EmptyCell
// otherwise.
func (s *BoardState) Snapshot() [core.Size][core.Size]int8 {
	var snap [core.Size][core.Size]int8
	for _, c := range boardTopology().Cells() {
		t, ok := s.grid.At(c)
		if !ok {
			continue
		}
		h := int8(t.Height)
		if t.Owner == 1 {
			h = -h
		}
		snap[c.Y][c.X] = h
	}
	return snap
}

// EncodeTensor flattens the position into a 3-plane float32 tensor from the
// given player's perspective, suitable as neural-network input. Fails with
// core.ErrInvalidPlayer for ids outside {0,1}.
func (s *BoardState) EncodeTensor(playerID int) ([]float32, error) {
	if !core.IsValidPlayer(playerID) {
		return nil, core.ErrInvalidPlayer
	}

	t := make([]float32, TensorLen)
	const planeSize = core.Size * core.Size
	for _, c := range boardTopology().Cells() {
		idx := c.ToIndex(core.Size)
		t[PlaneValid*planeSize+idx] = 1
		tower, ok := s.grid.At(c)
		if !ok {
			continue
		}
		h := float32(tower.Height) / core.MaxHeight
		if tower.Owner == playerID {
			t[PlaneOwn*planeSize+idx] = h
		} else {
			t[PlaneOpponent*planeSize+idx] = h
		}
	}
	return t, nil
}
