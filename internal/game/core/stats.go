package core

import "fmt"

// UnitType is the closed set of unit kinds
type UnitType int

const (
	UnitInfantry UnitType = iota
	UnitTank
	UnitArtillery
	UnitAircraft
)

// UnitStats are the fixed per-type values for a unit
type UnitStats struct {
	Name     string
	Cost     int
	Attack   int
	Defense  int
	Movement int
	Range    int
}

var unitStatsTable = [...]UnitStats{
	UnitInfantry:  {Name: "Infantry", Cost: 100, Attack: 5, Defense: 3, Movement: 2, Range: 1},
	UnitTank:      {Name: "Tank", Cost: 300, Attack: 10, Defense: 6, Movement: 2, Range: 1},
	UnitArtillery: {Name: "Artillery", Cost: 250, Attack: 8, Defense: 2, Movement: 1, Range: 3},
	UnitAircraft:  {Name: "Aircraft", Cost: 500, Attack: 7, Defense: 3, Movement: 4, Range: 2},
}

// AllUnitTypes lists every unit type in declaration order
var AllUnitTypes = []UnitType{UnitInfantry, UnitTank, UnitArtillery, UnitAircraft}

// IsValid reports whether t is one of the declared unit types
func (t UnitType) IsValid() bool {
	return t >= 0 && int(t) < len(unitStatsTable)
}

// Stats returns the static stats for the unit type. Panics on an unknown type.
func (t UnitType) Stats() UnitStats {
	if !t.IsValid() {
		panic(fmt.Sprintf("unknown unit type %d", int(t)))
	}
	return unitStatsTable[t]
}

func (t UnitType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("UnitType(%d)", int(t))
	}
	return unitStatsTable[t].Name
}

// BuildingType is the closed set of building kinds
type BuildingType int

const (
	BuildingCapital BuildingType = iota
	BuildingBarracks
	BuildingResearchLab
	BuildingFactory
	BuildingMine
)

// BuildingStats are the fixed per-type values for a building
type BuildingStats struct {
	Name          string
	Cost          int
	Income        int
	DefenseBonus  int
	Constructible bool
}

var buildingStatsTable = [...]BuildingStats{
	BuildingCapital:     {Name: "Capital", Cost: 0, Income: 0, DefenseBonus: 5, Constructible: false},
	BuildingBarracks:    {Name: "Barracks", Cost: 200, Income: 0, DefenseBonus: 2, Constructible: true},
	BuildingResearchLab: {Name: "ResearchLab", Cost: 300, Income: 25, DefenseBonus: 1, Constructible: true},
	BuildingFactory:     {Name: "Factory", Cost: 400, Income: 50, DefenseBonus: 2, Constructible: true},
	BuildingMine:        {Name: "Mine", Cost: 150, Income: 75, DefenseBonus: 1, Constructible: true},
}

// AllBuildingTypes lists every building type in declaration order
var AllBuildingTypes = []BuildingType{
	BuildingCapital, BuildingBarracks, BuildingResearchLab, BuildingFactory, BuildingMine,
}

// ConstructibleBuildingTypes lists the types a player may pay to build.
// Capitals only exist from game setup.
var ConstructibleBuildingTypes = []BuildingType{
	BuildingBarracks, BuildingResearchLab, BuildingFactory, BuildingMine,
}

// IsValid reports whether t is one of the declared building types
func (t BuildingType) IsValid() bool {
	return t >= 0 && int(t) < len(buildingStatsTable)
}

// Stats returns the static stats for the building type. Panics on an unknown type.
func (t BuildingType) Stats() BuildingStats {
	if !t.IsValid() {
		panic(fmt.Sprintf("unknown building type %d", int(t)))
	}
	return buildingStatsTable[t]
}

// CanSpawnUnits reports whether new units may appear next to this building
func (t BuildingType) CanSpawnUnits() bool {
	return t == BuildingCapital || t == BuildingBarracks
}

func (t BuildingType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("BuildingType(%d)", int(t))
	}
	return buildingStatsTable[t].Name
}
