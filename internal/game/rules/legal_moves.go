package rules

import (
	"github.com/mitchelldurbincs/HexConquest/internal/game/combat"
	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

// LegalMoveCalculator computes legal moves for units
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// MoveTargets returns the tiles the unit may finish a move on this turn:
// reachable within its remaining movement, free of units and of buildings
// owned by anyone else.
func (lmc *LegalMoveCalculator) MoveTargets(v command.View, u core.Unit) core.ReachableSet {
	out := make(core.ReachableSet)
	if u.MovesLeft <= 0 {
		return out
	}
	for c, cost := range v.ReachableTiles(u.Pos, u.MovesLeft) {
		if lmc.canEnter(v, u.Owner, c) == nil {
			out[c] = cost
		}
	}
	return out
}

// CheckMove validates a move and returns its cost
func (lmc *LegalMoveCalculator) CheckMove(v command.View, u core.Unit, to core.Coordinate) (int, error) {
	if u.MovesLeft <= 0 {
		return 0, core.ErrUnreachableTarget
	}
	cost, ok := v.ReachableTiles(u.Pos, u.MovesLeft)[to]
	if !ok {
		return 0, core.ErrUnreachableTarget
	}
	if err := lmc.canEnter(v, u.Owner, to); err != nil {
		return 0, err
	}
	return cost, nil
}

func (lmc *LegalMoveCalculator) canEnter(v command.View, owner int, c core.Coordinate) error {
	if _, occupied := v.UnitAt(c); occupied {
		return core.ErrInvalidTarget
	}
	if b, ok := v.BuildingAt(c); ok && b.Owner != owner {
		return core.ErrInvalidTarget
	}
	return nil
}

// AttackTargets lists, in grid order, every coordinate holding an enemy unit
// or enemy building the unit could strike right now
func (lmc *LegalMoveCalculator) AttackTargets(v command.View, u core.Unit) []core.Coordinate {
	if u.HasAttacked {
		return nil
	}
	var out []core.Coordinate
	for _, c := range v.Coordinates() {
		if owner, ok := TargetOwner(v, c); ok && combat.CanAttack(&u, owner, u.Pos.DistanceTo(c)) {
			out = append(out, c)
		}
	}
	return out
}

// TargetOwner returns the owner of whatever an attack on c would hit:
// the unit if one stands there, otherwise the building
func TargetOwner(v command.View, c core.Coordinate) (int, bool) {
	if other, ok := v.UnitAt(c); ok {
		return other.Owner, true
	}
	if b, ok := v.BuildingAt(c); ok {
		return b.Owner, true
	}
	return core.NeutralID, false
}
