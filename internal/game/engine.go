package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/events"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/rules"
)

// Engine drives one whole game sequentially: it owns the current BoardState,
// enforces turn order, counts plays, latches game over and publishes events.
// Search drivers that branch on positions use BoardState directly; the
// Engine is the wrapper for playing a single game start to finish.
type Engine struct {
	id        string
	state     *BoardState
	winCheck  *rules.WinChecker
	logger    zerolog.Logger
	publisher events.Publisher
	playCount int
	gameOver  bool
	startedAt time.Time
}

// NewEngine creates an engine on the starting position. publisher may be nil
// when no one listens.
func NewEngine(logger zerolog.Logger, publisher events.Publisher) *Engine {
	id := uuid.NewString()
	e := &Engine{
		id:        id,
		state:     NewBoardState(),
		winCheck:  rules.NewWinChecker(logger),
		logger:    logger.With().Str("component", "engine").Str("game_id", id).Logger(),
		publisher: publisher,
		startedAt: time.Now(),
	}

	e.logger.Info().
		Int("towers", e.state.TowerCount()).
		Int("pieces", e.state.PieceCount()).
		Msg("Game started")
	e.publish(events.NewGameStartedEvent(id, e.state.TowerCount(), e.state.PieceCount()))
	return e
}

// ID returns the engine's game id.
func (e *Engine) ID() string { return e.id }

// State returns the current position. Callers treat it as read-only; Copy it
// before branching.
func (e *Engine) State() *BoardState { return e.state }

// PlayCount returns the number of accepted plays so far.
func (e *Engine) PlayCount() int { return e.playCount }

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool { return e.gameOver }

// Winner returns the winning player id, core.Draw for equal scores, and
// core.Draw while the game is still running.
func (e *Engine) Winner() int {
	if !e.gameOver {
		return core.Draw
	}
	p0, p1 := e.state.Score()
	return e.winCheck.Winner(p0, p1)
}

// Step applies one move for playerID and advances the game. Out-of-turn
// submissions fail with core.ErrOutOfTurn, moves after the end with
// core.ErrGameOver; both leave the game unchanged.
func (e *Engine) Step(m core.Move, playerID int) error {
	if e.gameOver {
		return core.ErrGameOver
	}
	if !core.IsValidPlayer(playerID) {
		return core.ErrInvalidPlayer
	}
	if playerID != e.state.Turn() {
		return core.ErrOutOfTurn
	}

	src, _ := e.state.Tower(m.From)
	dst, _ := e.state.Tower(m.To)

	next, _, err := e.state.Play(m, playerID)
	if err != nil {
		e.logger.Warn().Err(err).Int("player_id", playerID).Stringer("move", m).Msg("Move rejected")
		e.publish(events.NewMoveRejectedEvent(e.id, playerID, m, err.Error()))
		return err
	}

	// Both towers existed or Play would have failed.
	mergedHeight := src.Height + dst.Height
	leveled := mergedHeight == core.MaxHeight

	e.state = next
	e.playCount++

	e.logger.Debug().
		Int("player_id", playerID).
		Stringer("move", m).
		Int("merged_height", mergedHeight).
		Bool("leveled", leveled).
		Int("play_number", e.playCount).
		Msg("Move played")
	e.publish(events.NewMovePlayedEvent(e.id, playerID, m, mergedHeight, leveled, e.playCount))
	if leveled {
		e.publish(events.NewTowerLeveledEvent(e.id, src.Owner, m.To, core.MaxHeight))
	}

	if e.state.IsTerminal() {
		e.finish()
	}
	return nil
}

func (e *Engine) finish() {
	e.gameOver = true
	p0, p1 := e.state.Score()
	winner := e.winCheck.Winner(p0, p1)
	duration := time.Since(e.startedAt)

	e.logger.Info().
		Int("winner", winner).
		Int("score_0", p0).
		Int("score_1", p1).
		Int("plays", e.playCount).
		Dur("duration", duration).
		Msg("Game over")
	e.publish(events.NewGameEndedEvent(e.id, winner, p0, p1, e.playCount, duration))
}

func (e *Engine) publish(ev events.Event) {
	if e.publisher != nil {
		e.publisher.Publish(ev)
	}
}
