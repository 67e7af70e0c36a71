package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
)

func TestMoveGenerator_LegalMovesStartingPosition(t *testing.T) {
	g := core.NewGrid(core.NewTopology())
	gen := NewMoveGenerator()

	var total int
	for pid := 0; pid < core.NumPlayers; pid++ {
		moves, err := gen.LegalMoves(g, pid)
		require.NoError(t, err)
		require.NotEmpty(t, moves)
		total += len(moves)

		for _, m := range moves {
			src, ok := g.At(m.From)
			require.True(t, ok)
			assert.Equal(t, pid, src.Owner, "move %s should start from a player-%d tower", m, pid)

			dst, ok := g.At(m.To)
			require.True(t, ok, "move %s should target an occupied cell", m)
			assert.LessOrEqual(t, src.Height+dst.Height, core.MaxHeight)
			assert.True(t, m.From.IsAdjacentTo(m.To))

			err := m.Validate(g, pid)
			assert.NoError(t, err, "generated move %s should validate", m)
		}
	}

	// Every singleton can move onto every occupied neighbor, so the two
	// players' move counts together equal the adjacency pair count both ways.
	var pairs int
	topo := core.NewTopology()
	for _, c := range topo.Cells() {
		pairs += len(topo.Neighbors(c))
	}
	assert.Equal(t, pairs, total)
}

func TestMoveGenerator_LegalMovesDeterministic(t *testing.T) {
	g := core.NewGrid(core.NewTopology())
	gen := NewMoveGenerator()

	first, err := gen.LegalMoves(g, 0)
	require.NoError(t, err)
	second, err := gen.LegalMoves(g, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same grid should enumerate moves in the same order")
}

func TestMoveGenerator_LegalMovesInvalidPlayer(t *testing.T) {
	g := core.NewGrid(core.NewTopology())
	gen := NewMoveGenerator()

	for _, pid := range []int{-1, 2, 100} {
		moves, err := gen.LegalMoves(g, pid)
		assert.ErrorIs(t, err, core.ErrInvalidPlayer)
		assert.Nil(t, moves)
	}
}

func TestMoveGenerator_HasLegalMove(t *testing.T) {
	g := core.NewGrid(core.NewTopology())
	gen := NewMoveGenerator()

	for pid := 0; pid < core.NumPlayers; pid++ {
		has, err := gen.HasLegalMove(g, pid)
		require.NoError(t, err)
		assert.True(t, has)
	}

	_, err := gen.HasLegalMove(g, 9)
	assert.ErrorIs(t, err, core.ErrInvalidPlayer)
}

func TestMoveGenerator_HasLegalMoveMatchesEnumeration(t *testing.T) {
	g := core.NewGrid(core.NewTopology())
	gen := NewMoveGenerator()

	// Drain the board with player-0 moves until player 0 is stuck, checking
	// the fast path against the full enumeration at every step.
	for {
		moves, err := gen.LegalMoves(g, 0)
		require.NoError(t, err)
		has, err := gen.HasLegalMove(g, 0)
		require.NoError(t, err)
		assert.Equal(t, len(moves) > 0, has)

		if len(moves) == 0 {
			break
		}
		_, _, err = core.ApplyMove(g, moves[0], 0)
		require.NoError(t, err)
	}
}
