package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

func newState(t *testing.T, terrain core.TerrainFunc) *core.State {
	t.Helper()
	players := []core.Player{
		{ID: 0, Income: 100, Alive: true},
		{ID: 1, Income: 100, Alive: true},
		{ID: 2, Income: 100, Alive: true},
	}
	return core.NewState(core.NewGrid(4, terrain), players)
}

func spawn(t *testing.T, s *core.State, owner int, ut core.UnitType, at core.Coordinate) *core.Unit {
	t.Helper()
	u, err := s.SpawnUnit(owner, ut, at)
	require.NoError(t, err)
	return u
}

func TestCanAttack(t *testing.T) {
	inf := &core.Unit{Type: core.UnitInfantry, Owner: 0, Health: 100}
	art := &core.Unit{Type: core.UnitArtillery, Owner: 0, Health: 100}
	spent := &core.Unit{Type: core.UnitTank, Owner: 0, Health: 100, HasAttacked: true}

	tests := []struct {
		name     string
		unit     *core.Unit
		owner    int
		distance int
		want     bool
	}{
		{"AdjacentEnemy", inf, 1, 1, true},
		{"TooFar", inf, 1, 2, false},
		{"OwnUnit", inf, 0, 1, false},
		{"ArtilleryAtRange", art, 2, 3, true},
		{"ArtilleryBeyondRange", art, 2, 4, false},
		{"AlreadyAttacked", spent, 1, 1, false},
		{"NilUnit", nil, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAttack(tt.unit, tt.owner, tt.distance))
		})
	}
}

func TestApplied(t *testing.T) {
	assert.Equal(t, 0, Applied(0))
	assert.Equal(t, 0, Applied(-3))
	assert.Equal(t, 1, Applied(0.01))
	assert.Equal(t, 3, Applied(2.5))
	assert.Equal(t, 2, Applied(2.0000000001))
	assert.Equal(t, 10, Applied(10))
}

func TestResolve_InfantryOnForest(t *testing.T) {
	forest := core.Coordinate{Q: 1, R: 0}
	s := newState(t, func(c core.Coordinate) core.Terrain {
		if c == forest {
			return core.TerrainForest
		}
		return core.TerrainPlain
	})
	attacker := spawn(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: 0})
	defender := spawn(t, s, 1, core.UnitInfantry, forest)

	res := NewResolver(s).Resolve(attacker.ID, defender.ID)

	assert.InDelta(t, 5.0, res.AttackPower, 1e-9)
	assert.InDelta(t, 5.0, res.DefensePower, 1e-9)
	assert.InDelta(t, 2.5, res.DamageToDefender, 1e-9)
	assert.InDelta(t, 2.5, res.DamageToAttacker, 1e-9)
	assert.False(t, res.AttackerDestroyed)
	assert.False(t, res.DefenderDestroyed)
	assert.Equal(t, 97, attacker.Health)
	assert.Equal(t, 97, defender.Health)
	assert.True(t, attacker.HasAttacked)
	assert.False(t, defender.HasAttacked)
	require.NoError(t, s.CheckInvariants())
}

func TestResolve_BuildingBonusCountsForDefender(t *testing.T) {
	s := newState(t, nil)
	_, err := s.PlaceBuilding(1, core.BuildingFactory, core.Coordinate{Q: 1, R: 0})
	require.NoError(t, err)
	attacker := spawn(t, s, 0, core.UnitTank, core.Coordinate{Q: 0, R: 0})
	defender := spawn(t, s, 1, core.UnitInfantry, core.Coordinate{Q: 1, R: 0})

	res := NewResolver(s).Resolve(attacker.ID, defender.ID)

	// (3 + 2) defense, 10 attack
	assert.InDelta(t, 5.0, res.DefensePower, 1e-9)
	assert.InDelta(t, 7.5, res.DamageToDefender, 1e-9)
	assert.Zero(t, res.DamageToAttacker)
	assert.Equal(t, 92, defender.Health)
	assert.Equal(t, 100, attacker.Health)
}

func TestResolve_MutualDestruction(t *testing.T) {
	s := newState(t, nil)
	attacker := spawn(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: 0})
	defender := spawn(t, s, 1, core.UnitInfantry, core.Coordinate{Q: 0, R: 1})
	attacker.Health = 1
	defender.Health = 1

	res := NewResolver(s).Resolve(attacker.ID, defender.ID)

	assert.True(t, res.AttackerDestroyed)
	assert.True(t, res.DefenderDestroyed)
	assert.Empty(t, s.Units)
	assert.Empty(t, s.Players[0].Units)
	assert.Empty(t, s.Players[1].Units)
	assert.Nil(t, s.UnitAt(core.Coordinate{Q: 0, R: 0}))
	assert.Nil(t, s.UnitAt(core.Coordinate{Q: 0, R: 1}))
	require.NoError(t, s.CheckInvariants())
}

func TestResolve_ArtilleryAtRange(t *testing.T) {
	s := newState(t, nil)
	art := spawn(t, s, 0, core.UnitArtillery, core.Coordinate{Q: -1, R: 0})
	target := spawn(t, s, 2, core.UnitInfantry, core.Coordinate{Q: 2, R: 0})
	target.Health = 4

	res := NewResolver(s).Resolve(art.ID, target.ID)

	assert.True(t, res.DefenderDestroyed)
	assert.False(t, res.AttackerDestroyed)
	assert.Nil(t, s.Unit(target.ID))
	assert.Equal(t, 100, art.Health, "counter damage is zero when defense is weak")
}

func TestResolve_PanicsWithoutCanAttack(t *testing.T) {
	s := newState(t, nil)
	a := spawn(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: 0})
	far := spawn(t, s, 1, core.UnitInfantry, core.Coordinate{Q: 3, R: 0})
	friend := spawn(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 1, R: 0})
	r := NewResolver(s)

	assert.Panics(t, func() { r.Resolve(a.ID, far.ID) })
	assert.Panics(t, func() { r.Resolve(a.ID, friend.ID) })
	assert.Panics(t, func() { r.Resolve(a.ID, core.UnitID(99)) })

	a.HasAttacked = true
	near := spawn(t, s, 1, core.UnitInfantry, core.Coordinate{Q: -1, R: 0})
	assert.Panics(t, func() { r.Resolve(a.ID, near.ID) })
}

func TestAttackBuilding(t *testing.T) {
	s := newState(t, nil)
	mine, err := s.PlaceBuilding(1, core.BuildingMine, core.Coordinate{Q: 1, R: 0})
	require.NoError(t, err)
	tank := spawn(t, s, 0, core.UnitTank, core.Coordinate{Q: 0, R: 0})
	tank.Health = 55

	res := NewResolver(s).AttackBuilding(tank.ID, mine.ID)

	assert.InDelta(t, 5.5, res.Damage, 1e-9)
	assert.False(t, res.Destroyed)
	assert.Equal(t, core.NeutralID, res.Eliminated)
	assert.Equal(t, 94, mine.Health)
	assert.True(t, tank.HasAttacked)
	assert.Equal(t, 175, s.Players[1].Income)
}

func TestAttackBuilding_DestroysAndDropsIncome(t *testing.T) {
	s := newState(t, nil)
	mine, err := s.PlaceBuilding(1, core.BuildingMine, core.Coordinate{Q: 1, R: 0})
	require.NoError(t, err)
	mine.Health = 5
	inf := spawn(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: 0})

	res := NewResolver(s).AttackBuilding(inf.ID, mine.ID)

	assert.True(t, res.Destroyed)
	assert.Equal(t, core.NeutralID, res.Eliminated)
	assert.Nil(t, s.Building(mine.ID))
	assert.Equal(t, 100, s.Players[1].Income)
	assert.True(t, s.Players[1].IsAlive())
	require.NoError(t, s.CheckInvariants())
}

func TestAttackBuilding_CapitalEliminatesOwner(t *testing.T) {
	s := newState(t, nil)
	capital, err := s.PlaceBuilding(1, core.BuildingCapital, core.Coordinate{Q: 2, R: 0})
	require.NoError(t, err)
	capital.Health = 10
	spawn(t, s, 1, core.UnitInfantry, core.Coordinate{Q: 2, R: 0})
	spawn(t, s, 1, core.UnitTank, core.Coordinate{Q: -3, R: 0})
	tank := spawn(t, s, 0, core.UnitTank, core.Coordinate{Q: 1, R: 0})

	res := NewResolver(s).AttackBuilding(tank.ID, capital.ID)

	assert.True(t, res.Destroyed)
	assert.Equal(t, 1, res.Eliminated)
	assert.False(t, s.Players[1].IsAlive())
	assert.Empty(t, s.Players[1].Units)
	assert.Empty(t, s.Players[1].Buildings)
	assert.Equal(t, 2, s.AliveCount())
	assert.Len(t, s.Units, 1)
	assert.True(t, s.Grid.GetTile(core.Coordinate{Q: 2, R: 0}).IsNeutral())
	require.NoError(t, s.CheckInvariants())
}

func TestAttackBuilding_PanicsOnOwnBuilding(t *testing.T) {
	s := newState(t, nil)
	b, err := s.PlaceBuilding(0, core.BuildingBarracks, core.Coordinate{Q: 1, R: 0})
	require.NoError(t, err)
	u := spawn(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: 0})

	assert.Panics(t, func() { NewResolver(s).AttackBuilding(u.ID, b.ID) })
}
