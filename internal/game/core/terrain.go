package core

// Terrain is the immutable ground type of a tile
type Terrain uint8

const (
	TerrainPlain Terrain = iota
	TerrainForest
	TerrainMountain
	TerrainWater
)

// ImpassableCost marks terrain that can never be entered
const ImpassableCost = -1

type terrainStats struct {
	name         string
	moveCost     int
	defenseBonus int
	symbol       string
}

var terrainTable = [...]terrainStats{
	TerrainPlain:    {name: "Plain", moveCost: 1, defenseBonus: 0, symbol: "·"},
	TerrainForest:   {name: "Forest", moveCost: 2, defenseBonus: 2, symbol: "♣"},
	TerrainMountain: {name: "Mountain", moveCost: 3, defenseBonus: 3, symbol: "▲"},
	TerrainWater:    {name: "Water", moveCost: ImpassableCost, defenseBonus: 0, symbol: "≈"},
}

// AllTerrains lists every terrain in declaration order
var AllTerrains = []Terrain{TerrainPlain, TerrainForest, TerrainMountain, TerrainWater}

func (t Terrain) valid() bool { return int(t) < len(terrainTable) }

// MoveCost is the movement deducted when entering a tile of this terrain.
// Returns ImpassableCost for water.
func (t Terrain) MoveCost() int {
	if !t.valid() {
		return ImpassableCost
	}
	return terrainTable[t].moveCost
}

// IsPassable reports whether units may ever enter this terrain
func (t Terrain) IsPassable() bool {
	return t.MoveCost() != ImpassableCost
}

// DefenseBonus is the terrain's additive defense modifier
func (t Terrain) DefenseBonus() int {
	if !t.valid() {
		return 0
	}
	return terrainTable[t].defenseBonus
}

// Symbol is the single-rune glyph used by the ASCII board
func (t Terrain) Symbol() string {
	if !t.valid() {
		return "?"
	}
	return terrainTable[t].symbol
}

func (t Terrain) String() string {
	if !t.valid() {
		return "Unknown"
	}
	return terrainTable[t].name
}
