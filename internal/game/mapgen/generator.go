package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

// MaxPlayers is the number of hex corners available for capitals
const MaxPlayers = 6

// MinRadius keeps the capital ring at least one step from the origin
const MinRadius = 3

var (
	ErrTooManyPlayers = errors.New("player count exceeds available capital sites")
	ErrRadiusTooSmall = errors.New("grid radius too small for capital placement")
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Radius      int
	PlayerCount int
	// Seed drives the noise fields; zero draws one from the generator's rng
	Seed          int64
	Frequency     float64
	Octaves       int
	Persistence   float64
	WaterLevel    float64
	ForestLevel   float64
	MountainLevel float64
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(radius, players int) MapConfig {
	return MapConfig{
		Radius:        radius,
		PlayerCount:   players,
		Frequency:     0.15,
		Octaves:       3,
		Persistence:   0.5,
		WaterLevel:    0.3,
		ForestLevel:   0.6,
		MountainLevel: 0.75,
	}
}

// CapitalPlacement tracks where a capital goes
type CapitalPlacement struct {
	PlayerID int
	Pos      core.Coordinate
}

// Map is a generated grid plus the capital sites that were kept clear
type Map struct {
	Grid     *core.Grid
	Capitals []CapitalPlacement
	Seed     int64
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// capitalDirections pairs opposite corners so consecutive players face each other
var capitalDirections = [MaxPlayers]core.Direction{
	core.NorthWest, core.SouthEast,
	core.NorthEast, core.SouthWest,
	core.West, core.East,
}

// CapitalPositions returns the capital for each player on the corners of the
// ring two steps inside the rim
func CapitalPositions(radius, players int) ([]core.Coordinate, error) {
	if players > MaxPlayers {
		return nil, fmt.Errorf("%d players: %w", players, ErrTooManyPlayers)
	}
	if radius < MinRadius {
		return nil, fmt.Errorf("radius %d: %w", radius, ErrRadiusTooSmall)
	}
	ring := radius - 2
	out := make([]core.Coordinate, players)
	for i := range out {
		out[i] = core.DirectionVectors[capitalDirections[i]].Scale(ring)
	}
	return out, nil
}

// GenerateMap builds the grid with noise terrain and clears every capital site
func (g *Generator) GenerateMap() (*Map, error) {
	sites, err := CapitalPositions(g.config.Radius, g.config.PlayerCount)
	if err != nil {
		return nil, err
	}

	seed := g.config.Seed
	if seed == 0 {
		seed = g.rng.Int63()
	}
	elevation := opensimplex.NewNormalized(seed)
	moisture := opensimplex.NewNormalized(seed + 1)

	reserved := make(map[core.Coordinate]bool, len(sites)*7)
	capitals := make([]CapitalPlacement, len(sites))
	for i, c := range sites {
		capitals[i] = CapitalPlacement{PlayerID: i, Pos: c}
		reserved[c] = true
		for _, n := range c.Neighbors() {
			reserved[n] = true
		}
	}

	layout := core.NewLayout(1)
	grid := core.NewGrid(g.config.Radius, func(c core.Coordinate) core.Terrain {
		if reserved[c] {
			return core.TerrainPlain
		}
		x, y := layout.HexToWorld(c)
		elev := octaveNoise(elevation, x, y, g.config.Octaves, g.config.Frequency, g.config.Persistence)
		wet := octaveNoise(moisture, x, y, g.config.Octaves, g.config.Frequency, g.config.Persistence)
		return g.terrainFor(elev, wet)
	})

	return &Map{Grid: grid, Capitals: capitals, Seed: seed}, nil
}

func (g *Generator) terrainFor(elev, wet float64) core.Terrain {
	switch {
	case elev < g.config.WaterLevel:
		return core.TerrainWater
	case elev > g.config.MountainLevel:
		return core.TerrainMountain
	case wet > g.config.ForestLevel:
		return core.TerrainForest
	default:
		return core.TerrainPlain
	}
}

// octaveNoise layers several frequencies of noise and normalizes to [0,1]
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
