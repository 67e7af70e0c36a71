package experience

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
)

func TestReward(t *testing.T) {
	tests := []struct {
		name     string
		winner   int
		playerID int
		expected float32
	}{
		{"win", 0, 0, 1},
		{"loss", 0, 1, -1},
		{"draw", core.Draw, 0, 0},
		{"draw other player", core.Draw, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reward(tt.winner, tt.playerID))
		})
	}
}

func TestCollector_RecordAndFinish(t *testing.T) {
	buf := NewBuffer(100)
	c := NewCollector(buf, zerolog.Nop())

	s := game.NewBoardState()
	m1 := core.Move{From: core.NewCoordinate(2, 0), To: core.NewCoordinate(3, 0)}
	require.NoError(t, c.Record("g1", s, m1, 0, 1))

	s, _, err := s.Play(m1, 0)
	require.NoError(t, err)
	m2 := core.Move{From: core.NewCoordinate(1, 1), To: core.NewCoordinate(1, 2)}
	require.NoError(t, c.Record("g1", s, m2, 1, 2))

	assert.Equal(t, 2, c.Pending())
	assert.Zero(t, buf.Len(), "samples stay pending until the game resolves")

	c.FinishGame(1)

	assert.Zero(t, c.Pending())
	samples := buf.Samples()
	require.Len(t, samples, 2)

	assert.Equal(t, "g1", samples[0].GameID)
	assert.Equal(t, m1, samples[0].Move)
	assert.EqualValues(t, -1, samples[0].Reward, "player 0 lost")
	assert.False(t, samples[0].Terminal)
	assert.Len(t, samples[0].Observation, game.TensorLen)

	assert.EqualValues(t, 1, samples[1].Reward, "player 1 won")
	assert.True(t, samples[1].Terminal)
	assert.Equal(t, 2, samples[1].PlayNumber)
}

func TestCollector_RecordInvalidPlayer(t *testing.T) {
	c := NewCollector(NewBuffer(10), zerolog.Nop())

	err := c.Record("g1", game.NewBoardState(), core.Move{}, 5, 1)
	assert.ErrorIs(t, err, core.ErrInvalidPlayer)
	assert.Zero(t, c.Pending())
}

func TestCollector_FinishEmptyGame(t *testing.T) {
	buf := NewBuffer(10)
	c := NewCollector(buf, zerolog.Nop())

	c.FinishGame(0)
	assert.Zero(t, buf.Len())
}

func TestJSONLRoundTrip(t *testing.T) {
	in := []Sample{
		{GameID: "g1", PlayNumber: 1, PlayerID: 0, Observation: []float32{0, 0.2, 1}, Reward: 1},
		{GameID: "g1", PlayNumber: 2, PlayerID: 1, Observation: []float32{0.4}, Reward: -1, Terminal: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, in))

	out, err := ReadJSONL(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
