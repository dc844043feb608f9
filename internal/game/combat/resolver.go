package combat

import (
	"fmt"
	"math"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

// damageEpsilon absorbs float noise so that e.g. 2.0000000001 is applied as 2
const damageEpsilon = 1e-9

// Result describes one unit-versus-unit exchange. Damage is unrounded.
type Result struct {
	AttackPower       float64
	DefensePower      float64
	DamageToDefender  float64
	DamageToAttacker  float64
	AttackerDestroyed bool
	DefenderDestroyed bool
}

// BuildingResult describes a unit striking a building
type BuildingResult struct {
	Damage    float64
	Destroyed bool
	// Eliminated is the owner removed from play when a Capital fell, or core.NeutralID
	Eliminated int
}

// Resolver applies combat to the entities held in a State arena
type Resolver struct {
	state *core.State
}

// NewResolver creates a resolver over the given arena
func NewResolver(state *core.State) *Resolver {
	return &Resolver{state: state}
}

// CanAttack reports whether attacker may strike something owned by
// defenderOwner at the given hex distance
func CanAttack(attacker *core.Unit, defenderOwner, distance int) bool {
	if attacker == nil || attacker.HasAttacked {
		return false
	}
	return distance <= attacker.Stats().Range && attacker.Owner != defenderOwner
}

// Powers computes the health-scaled powers and the damage each side deals.
// defenseBonus is the total bonus of the defender's tile.
func Powers(attacker, defender *core.Unit, defenseBonus int) Result {
	atk := float64(attacker.Stats().Attack) * attacker.HealthRatio()
	def := float64(defender.Stats().Defense+defenseBonus) * defender.HealthRatio()
	return Result{
		AttackPower:      atk,
		DefensePower:     def,
		DamageToDefender: math.Max(0, atk-def/2),
		DamageToAttacker: math.Max(0, def-atk/2),
	}
}

// Applied converts float damage to the health points actually removed
func Applied(damage float64) int {
	if damage <= 0 {
		return 0
	}
	return int(math.Ceil(damage - damageEpsilon))
}

// Resolve exchanges damage between two units simultaneously and removes
// whichever reached zero health. The caller must have checked CanAttack;
// violating that is a programming error and panics.
func (r *Resolver) Resolve(attackerID, defenderID core.UnitID) Result {
	attacker := r.state.Unit(attackerID)
	defender := r.state.Unit(defenderID)
	if attacker == nil || defender == nil {
		panic(fmt.Sprintf("combat: resolve with missing unit %d vs %d", attackerID, defenderID))
	}
	if !CanAttack(attacker, defender.Owner, attacker.Pos.DistanceTo(defender.Pos)) {
		panic(fmt.Sprintf("combat: unit %d cannot attack unit %d", attackerID, defenderID))
	}

	res := Powers(attacker, defender, r.state.DefenseBonusAt(defender.Pos))
	attacker.HasAttacked = true
	defender.Health -= Applied(res.DamageToDefender)
	attacker.Health -= Applied(res.DamageToAttacker)

	res.DefenderDestroyed = defender.IsDestroyed()
	res.AttackerDestroyed = attacker.IsDestroyed()
	if res.DefenderDestroyed {
		r.state.RemoveUnit(defenderID)
	}
	if res.AttackerDestroyed {
		r.state.RemoveUnit(attackerID)
	}
	return res
}

// AttackBuilding damages a building. A building at zero health is removed,
// and a fallen Capital eliminates its owner.
func (r *Resolver) AttackBuilding(attackerID core.UnitID, buildingID core.BuildingID) BuildingResult {
	attacker := r.state.Unit(attackerID)
	b := r.state.Building(buildingID)
	if attacker == nil || b == nil {
		panic(fmt.Sprintf("combat: attack with missing unit %d or building %d", attackerID, buildingID))
	}
	if !CanAttack(attacker, b.Owner, attacker.Pos.DistanceTo(b.Pos)) {
		panic(fmt.Sprintf("combat: unit %d cannot attack building %d", attackerID, buildingID))
	}

	res := BuildingResult{
		Damage:     float64(attacker.Stats().Attack) * attacker.HealthRatio(),
		Eliminated: core.NeutralID,
	}
	attacker.HasAttacked = true
	b.Health -= Applied(res.Damage)
	if !b.IsDestroyed() {
		return res
	}

	res.Destroyed = true
	owner := b.Owner
	r.state.RemoveBuilding(buildingID)
	if b.Type == core.BuildingCapital {
		// An unknown owner is impossible here since the building came from the arena
		_ = r.state.EliminatePlayer(owner)
		res.Eliminated = owner
	}
	return res
}
