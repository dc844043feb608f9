package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/testutil"
)

func TestMoveTargets(t *testing.T) {
	s := testutil.CreateTestStateWithTerrain(3, 2, map[core.Coordinate]core.Terrain{
		{Q: 0, R: 1}: core.TerrainWater,
	})
	u := testutil.MustSpawnUnit(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: 0})
	testutil.MustSpawnUnit(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 1, R: 0})
	testutil.MustSpawnUnit(t, s, 1, core.UnitInfantry, core.Coordinate{Q: -1, R: 0})
	testutil.MustPlaceBuilding(t, s, 1, core.BuildingMine, core.Coordinate{Q: 0, R: -1})
	testutil.MustPlaceBuilding(t, s, 0, core.BuildingBarracks, core.Coordinate{Q: 1, R: -1})
	v := command.NewStateView(s, command.FixedClock{Player: 0, TurnCount: 1})
	lmc := NewLegalMoveCalculator()

	targets := lmc.MoveTargets(v, *u)

	assert.False(t, targets.Contains(core.Coordinate{Q: 0, R: 1}), "water")
	assert.False(t, targets.Contains(core.Coordinate{Q: 1, R: 0}), "own unit")
	assert.False(t, targets.Contains(core.Coordinate{Q: -1, R: 0}), "enemy unit")
	assert.False(t, targets.Contains(core.Coordinate{Q: 0, R: -1}), "enemy building")
	assert.True(t, targets.Contains(core.Coordinate{Q: 1, R: -1}), "own building")
	assert.Equal(t, 2, targets[core.Coordinate{Q: 2, R: -1}], "path through an occupied tile still counts")

	u.MovesLeft = 0
	assert.Empty(t, lmc.MoveTargets(v, *u))
}

func TestCheckMove(t *testing.T) {
	s := testutil.CreateTestState(3, 2)
	u := testutil.MustSpawnUnit(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: 0})
	testutil.MustSpawnUnit(t, s, 1, core.UnitInfantry, core.Coordinate{Q: 1, R: 0})
	v := command.NewStateView(s, command.FixedClock{})
	lmc := NewLegalMoveCalculator()

	cost, err := lmc.CheckMove(v, *u, core.Coordinate{Q: 0, R: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, cost)

	_, err = lmc.CheckMove(v, *u, core.Coordinate{Q: 0, R: 3})
	assert.ErrorIs(t, err, core.ErrUnreachableTarget)
	_, err = lmc.CheckMove(v, *u, core.Coordinate{Q: 1, R: 0})
	assert.ErrorIs(t, err, core.ErrInvalidTarget)

	u.MovesLeft = 0
	_, err = lmc.CheckMove(v, *u, core.Coordinate{Q: 0, R: 1})
	assert.ErrorIs(t, err, core.ErrUnreachableTarget)
}

func TestAttackTargets(t *testing.T) {
	s := testutil.CreateTestState(4, 3)
	art := testutil.MustSpawnUnit(t, s, 0, core.UnitArtillery, core.Coordinate{Q: 0, R: 0})
	testutil.MustSpawnUnit(t, s, 1, core.UnitInfantry, core.Coordinate{Q: 3, R: 0})
	testutil.MustSpawnUnit(t, s, 2, core.UnitTank, core.Coordinate{Q: 4, R: 0})
	testutil.MustSpawnUnit(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 1, R: 0})
	testutil.MustPlaceBuilding(t, s, 2, core.BuildingFactory, core.Coordinate{Q: -2, R: 0})
	// Own unit standing on an enemy building shields it
	testutil.MustPlaceBuilding(t, s, 1, core.BuildingMine, core.Coordinate{Q: 0, R: -1})
	testutil.MustSpawnUnit(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 0, R: -1})
	v := command.NewStateView(s, command.FixedClock{})
	lmc := NewLegalMoveCalculator()

	targets := lmc.AttackTargets(v, *art)
	assert.Equal(t, []core.Coordinate{{Q: -2, R: 0}, {Q: 3, R: 0}}, targets)

	art.HasAttacked = true
	assert.Empty(t, lmc.AttackTargets(v, *art))
}

func TestTargetOwner(t *testing.T) {
	s := testutil.CreateTestState(2, 2)
	testutil.MustPlaceBuilding(t, s, 1, core.BuildingMine, core.Coordinate{Q: 1, R: 0})
	v := command.NewStateView(s, command.FixedClock{})

	owner, ok := TargetOwner(v, core.Coordinate{Q: 1, R: 0})
	assert.True(t, ok)
	assert.Equal(t, 1, owner)

	testutil.MustSpawnUnit(t, s, 0, core.UnitInfantry, core.Coordinate{Q: 1, R: 0})
	owner, _ = TargetOwner(v, core.Coordinate{Q: 1, R: 0})
	assert.Equal(t, 0, owner, "unit takes precedence over building")

	_, ok = TargetOwner(v, core.Coordinate{Q: 0, R: 0})
	assert.False(t, ok)
}
