package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/testutil"
)

func TestNearestEnemy(t *testing.T) {
	s := testutil.CreateTestState(4, 3)
	v := command.NewStateView(s, command.FixedClock{Player: 0, TurnCount: 1})
	origin := core.NewCoordinate(0, 0)

	_, ok := nearestEnemy(v, 0, origin)
	assert.False(t, ok, "no enemies on an empty map")

	testutil.MustSpawnUnit(t, s, 0, core.UnitInfantry, core.NewCoordinate(1, 0))
	testutil.MustSpawnUnit(t, s, 1, core.UnitTank, core.NewCoordinate(0, 3))
	testutil.MustPlaceBuilding(t, s, 2, core.BuildingMine, core.NewCoordinate(2, -2))
	testutil.MustSpawnUnit(t, s, 2, core.UnitInfantry, core.NewCoordinate(-2, 0))

	// (-2,0) and (2,-2) are both two away; (-2,0) comes first in grid order
	got, ok := nearestEnemy(v, 0, origin)
	assert.True(t, ok)
	assert.Equal(t, core.NewCoordinate(-2, 0), got)

	// From player 1's point of view its own tank is not a target
	got, ok = nearestEnemy(v, 1, core.NewCoordinate(0, 3))
	assert.True(t, ok)
	assert.Equal(t, core.NewCoordinate(1, 0), got)
}

func TestFirstBuildSite(t *testing.T) {
	s := testutil.CreateTestStateWithTerrain(3, 2, map[core.Coordinate]core.Terrain{
		core.NewCoordinate(-1, 0): core.TerrainWater,
	})
	v := command.NewStateView(s, command.FixedClock{Player: 0, TurnCount: 1})

	_, ok := firstBuildSite(v, 0)
	assert.False(t, ok, "player owns nothing yet")

	s.Grid.GetTile(core.NewCoordinate(-1, 0)).Owner = 0
	s.Grid.GetTile(core.NewCoordinate(0, 0)).Owner = 0
	s.Grid.GetTile(core.NewCoordinate(1, -1)).Owner = 0
	testutil.MustPlaceBuilding(t, s, 0, core.BuildingMine, core.NewCoordinate(0, 0))

	// Water and built tiles are skipped
	got, ok := firstBuildSite(v, 0)
	assert.True(t, ok)
	assert.Equal(t, core.NewCoordinate(1, -1), got)
}

func TestCanAfford(t *testing.T) {
	s := testutil.CreateTestState(3, 1)
	v := command.NewStateView(s, command.FixedClock{})

	assert.True(t, canAfford(v, 0, testutil.DefaultGold))
	assert.False(t, canAfford(v, 0, testutil.DefaultGold+1))
	assert.False(t, canAfford(v, 7, 0), "unknown player")
}
