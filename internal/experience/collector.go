package experience

import (
	"github.com/rs/zerolog"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
)

// Collector turns finished games into training samples. Moves are recorded as
// they happen with a zero reward; FinishGame back-fills the terminal outcome
// for every move of the game and flushes the batch to the buffer.
type Collector struct {
	buffer  *Buffer
	pending []Sample
	logger  zerolog.Logger
}

// NewCollector creates a collector writing into buffer.
func NewCollector(buffer *Buffer, logger zerolog.Logger) *Collector {
	return &Collector{
		buffer: buffer,
		logger: logger.With().Str("component", "experience").Logger(),
	}
}

// Record captures the position state as seen by playerID just before they
// played m. The sample's reward stays zero until FinishGame.
func (c *Collector) Record(gameID string, state *game.BoardState, m core.Move, playerID, playNumber int) error {
	obs, err := state.EncodeTensor(playerID)
	if err != nil {
		return err
	}
	c.pending = append(c.pending, Sample{
		GameID:      gameID,
		PlayNumber:  playNumber,
		PlayerID:    playerID,
		Observation: obs,
		Move:        m,
	})
	return nil
}

// FinishGame assigns each pending sample the terminal reward from its
// player's perspective, marks the last sample terminal and flushes the game
// into the buffer.
func (c *Collector) FinishGame(winner int) {
	if len(c.pending) == 0 {
		return
	}

	for i := range c.pending {
		c.pending[i].Reward = Reward(winner, c.pending[i].PlayerID)
	}
	c.pending[len(c.pending)-1].Terminal = true

	c.buffer.Add(c.pending...)
	c.logger.Debug().
		Str("game_id", c.pending[0].GameID).
		Int("samples", len(c.pending)).
		Int("winner", winner).
		Msg("Game experiences collected")
	c.pending = c.pending[:0]
}

// Pending returns the number of samples awaiting a game outcome.
func (c *Collector) Pending() int {
	return len(c.pending)
}

// Reward maps a game outcome to a scalar from playerID's perspective:
// +1 for a win, -1 for a loss, 0 for a draw.
func Reward(winner, playerID int) float32 {
	switch winner {
	case playerID:
		return 1
	case core.Draw:
		return 0
	default:
		return -1
	}
}
