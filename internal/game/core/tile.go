package core

// IDs are arena indices. Zero means "none".
type (
	UnitID     int
	BuildingID int
)

const (
	// NeutralID is the owner of a tile nobody has claimed
	NeutralID = -1
	// NoEntity marks an empty unit or building slot
	NoEntity = 0
)

// Tile represents a single hex on the map.
// Terrain is fixed at construction; Owner, Unit and Building change during play.
type Tile struct {
	Coord    Coordinate
	Terrain  Terrain
	Owner    int
	Unit     UnitID
	Building BuildingID
}

func (t *Tile) IsNeutral() bool     { return t.Owner == NeutralID }
func (t *Tile) IsPassable() bool    { return t.Terrain.IsPassable() }
func (t *Tile) HasUnit() bool       { return t.Unit != NoEntity }
func (t *Tile) HasBuilding() bool   { return t.Building != NoEntity }
func (t *Tile) IsEmpty() bool       { return !t.HasUnit() && !t.HasBuilding() }
func (t *Tile) OwnedBy(id int) bool { return t.Owner == id }
