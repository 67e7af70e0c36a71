package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_StartingPosition(t *testing.T) {
	tp := NewTopology()
	g := NewGrid(tp)

	assert.Equal(t, InitialTowers, g.TowerCount())
	assert.Equal(t, TotalPieces, g.PieceCount())

	var owners [NumPlayers]int
	for _, c := range tp.Cells() {
		tower, ok := g.At(c)
		require.True(t, ok, "cell %s should start occupied", c)
		assert.Equal(t, 1, tower.Height, "cell %s should start with a single piece", c)
		require.True(t, IsValidPlayer(tower.Owner))
		owners[tower.Owner]++
	}

	// Colors split evenly across the checkerboard layout.
	assert.Equal(t, InitialTowers/2, owners[0])
	assert.Equal(t, InitialTowers/2, owners[1])
}

func TestGrid_StartingColorsAlternate(t *testing.T) {
	g := NewGrid(NewTopology())

	tests := []struct {
		c     Coordinate
		owner int
	}{
		{NewCoordinate(2, 0), 0},
		{NewCoordinate(3, 0), 1},
		{NewCoordinate(1, 1), 0},
		{NewCoordinate(2, 1), 1},
		{NewCoordinate(0, 4), 0},
		{NewCoordinate(8, 3), 1},
		{NewCoordinate(6, 8), 0},
	}

	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			tower, ok := g.At(tt.c)
			require.True(t, ok)
			assert.Equal(t, tt.owner, tower.Owner)
		})
	}
}

func TestGrid_AtOffBoard(t *testing.T) {
	g := NewGrid(NewTopology())

	tests := []struct {
		name string
		c    Coordinate
	}{
		{"center", NewCoordinate(4, 4)},
		{"frame corner", NewCoordinate(0, 0)},
		{"outside the frame", NewCoordinate(-3, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tower, ok := g.At(tt.c)
			assert.False(t, ok)
			assert.True(t, tower.IsEmpty())
		})
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := NewGrid(NewTopology())
	cp := g.Clone()

	from, to := NewCoordinate(2, 0), NewCoordinate(3, 0)
	_, _, err := ApplyMove(cp, Move{From: from, To: to}, 0)
	require.NoError(t, err)

	// The original still holds both starting towers.
	tower, ok := g.At(from)
	require.True(t, ok)
	assert.Equal(t, Tower{Height: 1, Owner: 0}, tower)
	tower, ok = g.At(to)
	require.True(t, ok)
	assert.Equal(t, Tower{Height: 1, Owner: 1}, tower)

	// The clone reflects the move.
	_, ok = cp.At(from)
	assert.False(t, ok)
	tower, ok = cp.At(to)
	require.True(t, ok)
	assert.Equal(t, Tower{Height: 2, Owner: 0}, tower)
}
