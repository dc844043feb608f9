package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/HexConquest/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
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

// SetEventFilter sets which event types to log (nil means log all)
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
	// If no filter is set, interested in all events
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
		Time("timestamp", event.Timestamp()).
		Logger()

	// Create the base event log
	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers).
			Int("radius", e.Radius).
			Int("tiles", e.Tiles)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("previous_player", e.PreviousPlayer).
			Int("next_player", e.NextPlayer)

	case *events.UnitMovedEvent:
		withMeta(logEvent, e.Metadata).
			Stringer("unit_type", e.UnitType).
			Stringer("from", e.From).
			Stringer("to", e.To).
			Int("cost", e.Cost)

	case *events.UnitProducedEvent:
		withMeta(logEvent, e.Metadata).
			Stringer("unit_type", e.UnitType).
			Stringer("at", e.At).
			Int("cost", e.Cost)

	case *events.UnitDestroyedEvent:
		withMeta(logEvent, e.Metadata).
			Stringer("unit_type", e.UnitType).
			Stringer("at", e.At)

	case *events.CombatResolvedEvent:
		withMeta(logEvent, e.Metadata).
			Int("attacker_id", e.AttackerID).
			Int("defender_id", e.DefenderID).
			Stringer("from", e.From).
			Stringer("to", e.To).
			Float64("damage_to_defender", e.DamageToDefender).
			Float64("damage_to_attacker", e.DamageToAttacker).
			Bool("attacker_destroyed", e.AttackerDestroyed).
			Bool("defender_destroyed", e.DefenderDestroyed)

	case *events.BuildingAttackedEvent:
		withMeta(logEvent, e.Metadata).
			Int("owner_id", e.OwnerID).
			Stringer("building_type", e.BuildingType).
			Stringer("at", e.At).
			Float64("damage", e.Damage).
			Int("health_left", e.HealthLeft).
			Bool("destroyed", e.Destroyed)

	case *events.BuildingConstructedEvent:
		withMeta(logEvent, e.Metadata).
			Stringer("building_type", e.BuildingType).
			Stringer("at", e.At).
			Int("cost", e.Cost).
			Int("income", e.Income)

	case *events.BuildingDestroyedEvent:
		withMeta(logEvent, e.Metadata).
			Stringer("building_type", e.BuildingType).
			Stringer("at", e.At)

	case *events.PlayerEliminatedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("eliminated_by", e.EliminatedBy).
			Int("remaining", e.Remaining)

	case *events.IncomeCreditedEvent:
		withMeta(logEvent, e.Metadata).
			Int("amount", e.Amount).
			Int("gold", e.Gold)

	case *events.CommandRejectedEvent:
		withMeta(logEvent, e.Metadata).
			Str("command", e.Command).
			Str("reason", e.Reason)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	// Send the log
	logEvent.Msg("Game event")
}

func withMeta(e *zerolog.Event, m events.EventMetadata) *zerolog.Event {
	return e.Int("player_id", m.PlayerID).Int("turn", m.Turn)
}
