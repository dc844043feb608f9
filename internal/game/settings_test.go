package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexConquest/internal/config"
	"github.com/mitchelldurbincs/HexConquest/internal/testutil"
)

func TestConfigFromSettings(t *testing.T) {
	var c config.Config
	c.Game.Grid.Radius = 6
	c.Game.Players.Count = 3
	c.Game.Players.Human = -1
	c.Game.Economy.StartingGold = 700
	c.Game.Economy.BaseIncome = 80
	c.Game.Terrain.Seed = 99
	c.Game.Terrain.WaterLevel = 0.2
	c.Game.Terrain.ForestLevel = 0.65
	c.Game.Terrain.MountainLevel = 0.8
	c.Game.Terrain.Frequency = 0.1
	c.Game.Terrain.Octaves = 2
	c.Game.Bot.MaxChainedTurns = 5
	c.UI.HexSize = 24

	cfg := ConfigFromSettings(&c, testutil.NewTestRNG(3), testutil.NopLogger())

	assert.Equal(t, 6, cfg.Radius)
	assert.Equal(t, 3, cfg.Players)
	assert.Equal(t, -1, cfg.HumanPlayer)
	assert.Equal(t, 700, cfg.StartingGold)
	assert.Equal(t, 80, cfg.BaseIncome)
	assert.Equal(t, 24.0, cfg.HexSize)
	assert.Equal(t, 5, cfg.MaxChainedTurns)
	require.NotNil(t, cfg.Map)
	assert.Equal(t, int64(99), cfg.Map.Seed)
	assert.Equal(t, 0.2, cfg.Map.WaterLevel)
	assert.Equal(t, 2, cfg.Map.Octaves)
	assert.Equal(t, 0.5, cfg.Map.Persistence, "not configurable, keeps the generator default")

	e, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, e.IsBot(0))
	assert.Equal(t, 3, e.PlayerCount())
}
