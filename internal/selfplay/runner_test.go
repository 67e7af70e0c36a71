package selfplay

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sh3mm/Avalam-engine-bots/internal/experience"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/events"
)

func TestRunner_PlayGame(t *testing.T) {
	r := NewRunner(zerolog.Nop(), rand.New(rand.NewSource(1)), nil, 64)

	res, err := r.PlayGame()
	require.NoError(t, err)

	assert.NotEmpty(t, res.GameID)
	assert.Greater(t, res.Plays, 0)
	assert.LessOrEqual(t, res.Plays, core.InitialTowers-1)
	require.NotNil(t, res.Final)
	assert.True(t, res.Final.IsTerminal())

	// Pieces on the board plus leveled credit account for every piece.
	assert.Equal(t, core.TotalPieces, res.Final.PieceCount()+res.Score0+res.Score1)
	assert.Equal(t, res.Final.TowerCount(), res.TowersLeft)

	switch res.Winner {
	case 0:
		assert.Greater(t, res.Score0, res.Score1)
	case 1:
		assert.Greater(t, res.Score1, res.Score0)
	case core.Draw:
		assert.Equal(t, res.Score0, res.Score1)
	default:
		t.Fatalf("unexpected winner %d", res.Winner)
	}
}

func TestRunner_PlayGameIsReproducible(t *testing.T) {
	first, err := NewRunner(zerolog.Nop(), rand.New(rand.NewSource(7)), nil, 64).PlayGame()
	require.NoError(t, err)
	second, err := NewRunner(zerolog.Nop(), rand.New(rand.NewSource(7)), nil, 64).PlayGame()
	require.NoError(t, err)

	assert.Equal(t, first.Winner, second.Winner)
	assert.Equal(t, first.Score0, second.Score0)
	assert.Equal(t, first.Score1, second.Score1)
	assert.Equal(t, first.Plays, second.Plays)
	assert.Equal(t, first.Final.Snapshot(), second.Final.Snapshot())
}

func TestRunner_PlayGameRespectsMaxPlays(t *testing.T) {
	r := NewRunner(zerolog.Nop(), rand.New(rand.NewSource(1)), nil, 3)

	_, err := r.PlayGame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not terminate")
}

func TestRunner_Run(t *testing.T) {
	const n = 3
	r := NewRunner(zerolog.Nop(), rand.New(rand.NewSource(99)), nil, 64)

	results, err := r.Run(n)
	require.NoError(t, err)
	require.Len(t, results, n)

	seen := make(map[string]bool)
	for _, res := range results {
		assert.False(t, seen[res.GameID], "game ids should be unique")
		seen[res.GameID] = true
		assert.True(t, res.Final.IsTerminal())
	}
}

func TestRunner_CollectsExperience(t *testing.T) {
	buf := experience.NewBuffer(10000)
	collector := experience.NewCollector(buf, zerolog.Nop())
	r := NewRunner(zerolog.Nop(), rand.New(rand.NewSource(13)), nil, 64).WithCollector(collector)

	res, err := r.PlayGame()
	require.NoError(t, err)

	samples := buf.Samples()
	require.Len(t, samples, res.Plays, "one sample per accepted play")
	assert.Zero(t, collector.Pending())

	for i, s := range samples {
		assert.Equal(t, res.GameID, s.GameID)
		assert.Equal(t, i+1, s.PlayNumber)
		assert.Equal(t, experience.Reward(res.Winner, s.PlayerID), s.Reward)
		assert.Equal(t, i == len(samples)-1, s.Terminal)
	}
}

func TestRunner_PublishesEvents(t *testing.T) {
	bus := events.NewEventBus()
	var started, ended int
	bus.SubscribeFunc(events.TypeGameStarted, func(events.Event) { started++ })
	bus.SubscribeFunc(events.TypeGameEnded, func(events.Event) { ended++ })

	r := NewRunner(zerolog.Nop(), rand.New(rand.NewSource(5)), bus, 64)
	_, err := r.Run(2)
	require.NoError(t, err)

	assert.Equal(t, 2, started)
	assert.Equal(t, 2, ended)
}
