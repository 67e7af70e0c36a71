package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log the full event as JSON
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (empty means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("towers", e.Towers).
			Int("pieces", e.Pieces)

	case *events.MovePlayedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Stringer("move", e.Move).
			Int("merged_height", e.MergedHeight).
			Bool("leveled", e.Leveled).
			Int("play_number", e.PlayNumber)

	case *events.MoveRejectedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Stringer("move", e.Move).
			Str("reason", e.Reason)

	case *events.TowerLeveledEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Stringer("cell", e.Cell).
			Int("points", e.Points)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Int("score_0", e.Score0).
			Int("score_1", e.Score1).
			Int("plays", e.Plays).
			Dur("duration", e.Duration)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
