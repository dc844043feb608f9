package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/config"
	"github.com/mitchelldurbincs/HexConquest/internal/game/mapgen"
)

// ConfigFromSettings maps loaded settings onto an engine config. A nil rng
// lets the engine seed its own.
func ConfigFromSettings(c *config.Config, rng *rand.Rand, logger zerolog.Logger) GameConfig {
	g := c.Game
	m := mapgen.DefaultMapConfig(g.Grid.Radius, g.Players.Count)
	m.Seed = g.Terrain.Seed
	m.WaterLevel = g.Terrain.WaterLevel
	m.ForestLevel = g.Terrain.ForestLevel
	m.MountainLevel = g.Terrain.MountainLevel
	m.Frequency = g.Terrain.Frequency
	m.Octaves = g.Terrain.Octaves

	return GameConfig{
		Radius:          g.Grid.Radius,
		Players:         g.Players.Count,
		HumanPlayer:     g.Players.Human,
		StartingGold:    g.Economy.StartingGold,
		BaseIncome:      g.Economy.BaseIncome,
		Map:             &m,
		HexSize:         c.UI.HexSize,
		MaxChainedTurns: g.Bot.MaxChainedTurns,
		Rng:             rng,
		Logger:          logger,
	}
}
