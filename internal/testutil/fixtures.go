package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/game/mapgen"
)

// Default economy used by hand-built fixtures
const (
	DefaultGold   = 500
	DefaultIncome = 100
)

// CreateTestPlayers creates alive human players with the default economy
func CreateTestPlayers(count int) []core.Player {
	players := make([]core.Player, count)
	for i := range players {
		players[i] = core.Player{
			ID:     i,
			Gold:   DefaultGold,
			Income: DefaultIncome,
			Alive:  true,
		}
	}
	return players
}

// CreateTestState creates an all-plain grid of the given radius with count players
func CreateTestState(radius, count int) *core.State {
	return core.NewState(core.NewGrid(radius, nil), CreateTestPlayers(count))
}

// CreateTestStateWithTerrain creates a plain grid with specific tiles overridden
func CreateTestStateWithTerrain(radius, count int, terrain map[core.Coordinate]core.Terrain) *core.State {
	grid := core.NewGrid(radius, func(c core.Coordinate) core.Terrain {
		if t, ok := terrain[c]; ok {
			return t
		}
		return core.TerrainPlain
	})
	return core.NewState(grid, CreateTestPlayers(count))
}

// CreateSimpleTestSetup creates a radius-3 grid with two players.
// Player 0 has a capital and an infantry on (-2,0), player 1 the same on (2,0).
func CreateSimpleTestSetup(t *testing.T) *core.State {
	t.Helper()
	s := CreateTestState(3, 2)
	for id, at := range []core.Coordinate{{Q: -2, R: 0}, {Q: 2, R: 0}} {
		MustPlaceBuilding(t, s, id, core.BuildingCapital, at)
		MustSpawnUnit(t, s, id, core.UnitInfantry, at)
	}
	return s
}

// MustSpawnUnit spawns a unit or fails the test
func MustSpawnUnit(t *testing.T, s *core.State, owner int, ut core.UnitType, at core.Coordinate) *core.Unit {
	t.Helper()
	u, err := s.SpawnUnit(owner, ut, at)
	require.NoError(t, err)
	return u
}

// MustPlaceBuilding places a building or fails the test
func MustPlaceBuilding(t *testing.T, s *core.State, owner int, bt core.BuildingType, at core.Coordinate) *core.Building {
	t.Helper()
	b, err := s.PlaceBuilding(owner, bt, at)
	require.NoError(t, err)
	return b
}

// PlainMapConfig returns a generator config whose thresholds produce nothing
// but Plain tiles, so engine tests get predictable paths
func PlainMapConfig(radius, players int) *mapgen.MapConfig {
	cfg := mapgen.DefaultMapConfig(radius, players)
	cfg.Seed = 1
	cfg.WaterLevel = -1
	cfg.ForestLevel = 2
	cfg.MountainLevel = 2
	return &cfg
}
