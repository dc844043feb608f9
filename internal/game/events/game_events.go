package events

import (
	"time"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted         = "game.started"
	TypeGameEnded           = "game.ended"
	TypeTurnEnded           = "turn.ended"
	TypeUnitMoved           = "unit.moved"
	TypeUnitProduced        = "unit.produced"
	TypeUnitDestroyed       = "unit.destroyed"
	TypeCombatResolved      = "combat.resolved"
	TypeBuildingAttacked    = "building.attacked"
	TypeBuildingConstructed = "building.constructed"
	TypeBuildingDestroyed   = "building.destroyed"
	TypePlayerEliminated    = "player.eliminated"
	TypeIncomeCredited      = "income.credited"
	TypeCommandRejected     = "command.rejected"
	TypeStateTransition     = "state.transition"
)

// GameStartedEvent is published once setup has placed every capital
type GameStartedEvent struct {
	BaseEvent
	NumPlayers int
	Radius     int
	Tiles      int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, numPlayers, radius, tiles int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		NumPlayers: numPlayers,
		Radius:     radius,
		Tiles:      tiles,
	}
}

// GameEndedEvent is published when the host declares the match over.
// Winner is -1 when no single player remains.
type GameEndedEvent struct {
	BaseEvent
	Winner    int
	Duration  time.Duration
	FinalTurn int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner int, duration time.Duration, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winner:    winner,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// TurnEndedEvent is published after the rotation has advanced
type TurnEndedEvent struct {
	BaseEvent
	Metadata       EventMetadata
	PreviousPlayer int
	NextPlayer     int
	TurnNumber     int
}

// NewTurnEndedEvent creates a new TurnEndedEvent. TurnNumber is the new turn counter.
func NewTurnEndedEvent(gameID string, previous, next, turn int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:      newBase(TypeTurnEnded, gameID),
		Metadata:       EventMetadata{PlayerID: previous, Turn: turn},
		PreviousPlayer: previous,
		NextPlayer:     next,
		TurnNumber:     turn,
	}
}

// UnitMovedEvent is published when a unit relocates
type UnitMovedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   core.UnitID
	UnitType core.UnitType
	From     core.Coordinate
	To       core.Coordinate
	Cost     int
}

// NewUnitMovedEvent creates a new UnitMovedEvent
func NewUnitMovedEvent(gameID string, playerID, turn int, u *core.Unit, from core.Coordinate, cost int) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent: newBase(TypeUnitMoved, gameID),
		Metadata:  EventMetadata{PlayerID: playerID, Turn: turn},
		UnitID:    u.ID,
		UnitType:  u.Type,
		From:      from,
		To:        u.Pos,
		Cost:      cost,
	}
}

// UnitProducedEvent is published when gold buys a new unit
type UnitProducedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   core.UnitID
	UnitType core.UnitType
	At       core.Coordinate
	Cost     int
}

// NewUnitProducedEvent creates a new UnitProducedEvent
func NewUnitProducedEvent(gameID string, turn int, u *core.Unit) *UnitProducedEvent {
	return &UnitProducedEvent{
		BaseEvent: newBase(TypeUnitProduced, gameID),
		Metadata:  EventMetadata{PlayerID: u.Owner, Turn: turn},
		UnitID:    u.ID,
		UnitType:  u.Type,
		At:        u.Pos,
		Cost:      u.Stats().Cost,
	}
}

// UnitDestroyedEvent is published when a unit's health reaches zero
type UnitDestroyedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   core.UnitID
	UnitType core.UnitType
	At       core.Coordinate
}

// NewUnitDestroyedEvent creates a new UnitDestroyedEvent; Metadata.PlayerID is the owner
func NewUnitDestroyedEvent(gameID string, turn int, u *core.Unit) *UnitDestroyedEvent {
	return &UnitDestroyedEvent{
		BaseEvent: newBase(TypeUnitDestroyed, gameID),
		Metadata:  EventMetadata{PlayerID: u.Owner, Turn: turn},
		UnitID:    u.ID,
		UnitType:  u.Type,
		At:        u.Pos,
	}
}

// CombatResolvedEvent is published after two units exchange damage
type CombatResolvedEvent struct {
	BaseEvent
	Metadata          EventMetadata
	AttackerID        int
	DefenderID        int
	From              core.Coordinate
	To                core.Coordinate
	AttackPower       float64
	DefensePower      float64
	DamageToDefender  float64
	DamageToAttacker  float64
	AttackerDestroyed bool
	DefenderDestroyed bool
}

// NewCombatResolvedEvent stamps the participants; the acting player, powers
// and damage are filled by the caller
func NewCombatResolvedEvent(gameID string, turn, attacker, defender int, from, to core.Coordinate) *CombatResolvedEvent {
	return &CombatResolvedEvent{
		BaseEvent:  newBase(TypeCombatResolved, gameID),
		Metadata:   EventMetadata{PlayerID: core.NeutralID, Turn: turn},
		AttackerID: attacker,
		DefenderID: defender,
		From:       from,
		To:         to,
	}
}

// BuildingAttackedEvent is published when a unit strikes a building
type BuildingAttackedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	OwnerID      int
	BuildingType core.BuildingType
	At           core.Coordinate
	Damage       float64
	HealthLeft   int
	Destroyed    bool
}

// NewBuildingAttackedEvent creates a new BuildingAttackedEvent
func NewBuildingAttackedEvent(gameID string, turn, attacker int, b *core.Building, damage float64) *BuildingAttackedEvent {
	return &BuildingAttackedEvent{
		BaseEvent:    newBase(TypeBuildingAttacked, gameID),
		Metadata:     EventMetadata{PlayerID: attacker, Turn: turn},
		OwnerID:      b.Owner,
		BuildingType: b.Type,
		At:           b.Pos,
		Damage:       damage,
		HealthLeft:   max(b.Health, 0),
		Destroyed:    b.IsDestroyed(),
	}
}

// BuildingConstructedEvent is published when gold buys a building
type BuildingConstructedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	BuildingType core.BuildingType
	At           core.Coordinate
	Cost         int
	Income       int
}

// NewBuildingConstructedEvent creates a new BuildingConstructedEvent
func NewBuildingConstructedEvent(gameID string, turn int, b *core.Building) *BuildingConstructedEvent {
	stats := b.Stats()
	return &BuildingConstructedEvent{
		BaseEvent:    newBase(TypeBuildingConstructed, gameID),
		Metadata:     EventMetadata{PlayerID: b.Owner, Turn: turn},
		BuildingType: b.Type,
		At:           b.Pos,
		Cost:         stats.Cost,
		Income:       stats.Income,
	}
}

// BuildingDestroyedEvent is published when a building's health reaches zero
type BuildingDestroyedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	BuildingType core.BuildingType
	At           core.Coordinate
}

// NewBuildingDestroyedEvent creates a new BuildingDestroyedEvent; Metadata.PlayerID is the owner
func NewBuildingDestroyedEvent(gameID string, turn int, b *core.Building) *BuildingDestroyedEvent {
	return &BuildingDestroyedEvent{
		BaseEvent:    newBase(TypeBuildingDestroyed, gameID),
		Metadata:     EventMetadata{PlayerID: b.Owner, Turn: turn},
		BuildingType: b.Type,
		At:           b.Pos,
	}
}

// PlayerEliminatedEvent is published when a player loses their capital
type PlayerEliminatedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	PlayerID     int
	EliminatedBy int
	Remaining    int
}

// NewPlayerEliminatedEvent creates a new PlayerEliminatedEvent
func NewPlayerEliminatedEvent(gameID string, playerID, eliminatedBy, remaining, turn int) *PlayerEliminatedEvent {
	return &PlayerEliminatedEvent{
		BaseEvent:    newBase(TypePlayerEliminated, gameID),
		Metadata:     EventMetadata{PlayerID: playerID, Turn: turn},
		PlayerID:     playerID,
		EliminatedBy: eliminatedBy,
		Remaining:    remaining,
	}
}

// IncomeCreditedEvent is published for each alive player when a turn ends
type IncomeCreditedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Amount   int
	Gold     int
}

// NewIncomeCreditedEvent creates a new IncomeCreditedEvent
func NewIncomeCreditedEvent(gameID string, playerID, amount, gold, turn int) *IncomeCreditedEvent {
	return &IncomeCreditedEvent{
		BaseEvent: newBase(TypeIncomeCredited, gameID),
		Metadata:  EventMetadata{PlayerID: playerID, Turn: turn},
		Amount:    amount,
		Gold:      gold,
	}
}

// CommandRejectedEvent is published when validation refuses a command
type CommandRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Command  string
	Reason   string
}

// NewCommandRejectedEvent creates a new CommandRejectedEvent
func NewCommandRejectedEvent(gameID string, playerID, turn int, command string, reason error) *CommandRejectedEvent {
	return &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, gameID),
		Metadata:  EventMetadata{PlayerID: playerID, Turn: turn},
		Command:   command,
		Reason:    reason.Error(),
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
