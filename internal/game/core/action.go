package core

import "fmt"

// ActionType represents the type of action
type ActionType int

const (
	ActionSelect ActionType = iota
	ActionMove
	ActionAttack
	ActionBuild
	ActionProduce
	ActionEndTurn
)

func (t ActionType) String() string {
	switch t {
	case ActionSelect:
		return "select"
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	case ActionBuild:
		return "build"
	case ActionProduce:
		return "produce"
	case ActionEndTurn:
		return "end_turn"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action represents a player command.
// Validate performs the static checks that need only the grid; the engine
// checks ownership, funds, reachability and range against live state.
type Action interface {
	GetPlayerID() int
	GetType() ActionType
	Describe() string
	Validate(g *Grid) error
}

func checkCoord(g *Grid, c Coordinate) error {
	if !g.Contains(c) {
		return ErrInvalidCoordinates
	}
	return nil
}

// SelectAction picks a tile for the human interface
type SelectAction struct {
	PlayerID int
	At       Coordinate
}

func (a *SelectAction) GetPlayerID() int       { return a.PlayerID }
func (a *SelectAction) GetType() ActionType    { return ActionSelect }
func (a *SelectAction) Describe() string       { return fmt.Sprintf("select %s", a.At) }
func (a *SelectAction) Validate(g *Grid) error { return checkCoord(g, a.At) }

// MoveAction moves the unit at From to To
type MoveAction struct {
	PlayerID int
	From     Coordinate
	To       Coordinate
}

func (a *MoveAction) GetPlayerID() int    { return a.PlayerID }
func (a *MoveAction) GetType() ActionType { return ActionMove }
func (a *MoveAction) Describe() string {
	return fmt.Sprintf("move from %s to %s", a.From, a.To)
}

func (a *MoveAction) Validate(g *Grid) error {
	if err := checkCoord(g, a.From); err != nil {
		return err
	}
	if err := checkCoord(g, a.To); err != nil {
		return err
	}
	if a.From == a.To {
		return ErrInvalidTarget
	}
	return nil
}

// AttackAction makes the unit at From attack whatever stands on To
type AttackAction struct {
	PlayerID int
	From     Coordinate
	To       Coordinate
}

func (a *AttackAction) GetPlayerID() int    { return a.PlayerID }
func (a *AttackAction) GetType() ActionType { return ActionAttack }
func (a *AttackAction) Describe() string {
	return fmt.Sprintf("attack from %s to %s", a.From, a.To)
}

func (a *AttackAction) Validate(g *Grid) error {
	if err := checkCoord(g, a.From); err != nil {
		return err
	}
	if err := checkCoord(g, a.To); err != nil {
		return err
	}
	if a.From == a.To {
		return ErrInvalidTarget
	}
	return nil
}

// BuildAction constructs a building on an owned tile
type BuildAction struct {
	PlayerID int
	Type     BuildingType
	At       Coordinate
}

func (a *BuildAction) GetPlayerID() int    { return a.PlayerID }
func (a *BuildAction) GetType() ActionType { return ActionBuild }
func (a *BuildAction) Describe() string {
	return fmt.Sprintf("build %s at %s", a.Type, a.At)
}

func (a *BuildAction) Validate(g *Grid) error {
	if !a.Type.IsValid() || !a.Type.Stats().Constructible {
		return ErrInvalidTarget
	}
	return checkCoord(g, a.At)
}

// ProduceAction buys a unit next to a Barracks or Capital
type ProduceAction struct {
	PlayerID int
	Type     UnitType
}

func (a *ProduceAction) GetPlayerID() int    { return a.PlayerID }
func (a *ProduceAction) GetType() ActionType { return ActionProduce }
func (a *ProduceAction) Describe() string    { return fmt.Sprintf("produce %s", a.Type) }

func (a *ProduceAction) Validate(g *Grid) error {
	if !a.Type.IsValid() {
		return ErrInvalidTarget
	}
	return nil
}

// EndTurnAction passes the turn to the next alive player
type EndTurnAction struct {
	PlayerID int
}

func (a *EndTurnAction) GetPlayerID() int       { return a.PlayerID }
func (a *EndTurnAction) GetType() ActionType    { return ActionEndTurn }
func (a *EndTurnAction) Describe() string       { return "end turn" }
func (a *EndTurnAction) Validate(g *Grid) error { return nil }
