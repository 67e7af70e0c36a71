package events

import (
	"time"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted  = "game.started"
	TypeGameEnded    = "game.ended"
	TypeMovePlayed   = "move.played"
	TypeMoveRejected = "move.rejected"
	TypeTowerLeveled = "tower.leveled"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Towers int `json:"towers"`
	Pieces int `json:"pieces"`
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, towers, pieces int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{EventType: TypeGameStarted, Time: time.Now(), Game: gameID},
		Towers:    towers,
		Pieces:    pieces,
	}
}

// MovePlayedEvent is published after each accepted move
type MovePlayedEvent struct {
	BaseEvent
	PlayerID     int       `json:"player_id"`
	Move         core.Move `json:"move"`
	MergedHeight int       `json:"merged_height"`
	Leveled      bool      `json:"leveled"`
	PlayNumber   int       `json:"play_number"`
}

// NewMovePlayedEvent creates a new MovePlayedEvent
func NewMovePlayedEvent(gameID string, playerID int, m core.Move, mergedHeight int, leveled bool, playNumber int) *MovePlayedEvent {
	return &MovePlayedEvent{
		BaseEvent:    BaseEvent{EventType: TypeMovePlayed, Time: time.Now(), Game: gameID},
		PlayerID:     playerID,
		Move:         m,
		MergedHeight: mergedHeight,
		Leveled:      leveled,
		PlayNumber:   playNumber,
	}
}

// MoveRejectedEvent is published when a submitted move fails validation
type MoveRejectedEvent struct {
	BaseEvent
	PlayerID int       `json:"player_id"`
	Move     core.Move `json:"move"`
	Reason   string    `json:"reason"`
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, playerID int, m core.Move, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: BaseEvent{EventType: TypeMoveRejected, Time: time.Now(), Game: gameID},
		PlayerID:  playerID,
		Move:      m,
		Reason:    reason,
	}
}

// TowerLeveledEvent is published when a merge reaches the height limit and
// the tower leaves the board
type TowerLeveledEvent struct {
	BaseEvent
	PlayerID int             `json:"player_id"`
	Cell     core.Coordinate `json:"cell"`
	Points   int             `json:"points"`
}

// NewTowerLeveledEvent creates a new TowerLeveledEvent
func NewTowerLeveledEvent(gameID string, playerID int, cell core.Coordinate, points int) *TowerLeveledEvent {
	return &TowerLeveledEvent{
		BaseEvent: BaseEvent{EventType: TypeTowerLeveled, Time: time.Now(), Game: gameID},
		PlayerID:  playerID,
		Cell:      cell,
		Points:    points,
	}
}

// GameEndedEvent is published when the active player has no legal moves
type GameEndedEvent struct {
	BaseEvent
	Winner   int           `json:"winner"`
	Score0   int           `json:"score_0"`
	Score1   int           `json:"score_1"`
	Plays    int           `json:"plays"`
	Duration time.Duration `json:"duration"`
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner, score0, score1, plays int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{EventType: TypeGameEnded, Time: time.Now(), Game: gameID},
		Winner:    winner,
		Score0:    score0,
		Score1:    score1,
		Plays:     plays,
		Duration:  duration,
	}
}
