package selfplay

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/Sh3mm/Avalam-engine-bots/internal/experience"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/events"
)

// Result summarizes one finished game.
type Result struct {
	GameID     string
	Winner     int
	Score0     int
	Score1     int
	Plays      int
	TowersLeft int
	Final      *game.BoardState
}

// Runner plays whole games with a uniform random policy. It exists as a
// baseline driver for demos and as an exerciser for the engine's invariants;
// a real search agent would replace the move selection, not the loop.
type Runner struct {
	logger    zerolog.Logger
	rng       *rand.Rand
	publisher events.Publisher
	maxPlays  int
	collector *experience.Collector
}

// NewRunner creates a runner with a seeded rng so games reproduce. publisher
// may be nil. maxPlays caps a single game as a safety net; the engine ends
// games on its own well before any sensible cap.
func NewRunner(logger zerolog.Logger, rng *rand.Rand, publisher events.Publisher, maxPlays int) *Runner {
	return &Runner{
		logger:    logger.With().Str("component", "selfplay").Logger(),
		rng:       rng,
		publisher: publisher,
		maxPlays:  maxPlays,
	}
}

// WithCollector makes the runner record every played game as training
// samples. Returns the runner for chaining.
func (r *Runner) WithCollector(c *experience.Collector) *Runner {
	r.collector = c
	return r
}

// PlayGame runs one random-policy game to completion and returns its result.
func (r *Runner) PlayGame() (Result, error) {
	e := game.NewEngine(r.logger, r.publisher)

	for plays := 0; !e.IsGameOver(); plays++ {
		if plays >= r.maxPlays {
			return Result{}, fmt.Errorf("game %s did not terminate within %d plays", e.ID(), r.maxPlays)
		}

		state := e.State()
		moves, err := state.LegalMoves(state.Turn())
		if err != nil {
			return Result{}, err
		}
		// The engine flips gameOver as soon as the active player is stuck.
		if len(moves) == 0 {
			return Result{}, fmt.Errorf("game %s: engine still running with no legal moves", e.ID())
		}

		m := moves[r.rng.Intn(len(moves))]
		if r.collector != nil {
			if err := r.collector.Record(e.ID(), state, m, state.Turn(), plays+1); err != nil {
				return Result{}, err
			}
		}
		if err := e.Step(m, state.Turn()); err != nil {
			return Result{}, err
		}
	}

	if r.collector != nil {
		r.collector.FinishGame(e.Winner())
	}

	p0, p1 := e.State().Score()
	return Result{
		GameID:     e.ID(),
		Winner:     e.Winner(),
		Score0:     p0,
		Score1:     p1,
		Plays:      e.PlayCount(),
		TowersLeft: e.State().TowerCount(),
		Final:      e.State(),
	}, nil
}

// Run plays n games and returns their results.
func (r *Runner) Run(n int) ([]Result, error) {
	results := make([]Result, 0, n)
	for i := 0; i < n; i++ {
		res, err := r.PlayGame()
		if err != nil {
			return results, err
		}
		r.logger.Info().
			Int("game_number", i+1).
			Str("game_id", res.GameID).
			Int("winner", res.Winner).
			Int("score_0", res.Score0).
			Int("score_1", res.Score1).
			Int("plays", res.Plays).
			Msg("Self-play game finished")
		results = append(results, res)
	}
	return results, nil
}
