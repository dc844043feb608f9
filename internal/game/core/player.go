package core

import "slices"

// Player holds a faction's economy and rosters.
// Rosters hold ids in creation order; the arena in State owns the records.
type Player struct {
	ID        int
	IsBot     bool
	Gold      int
	Income    int
	Units     []UnitID
	Buildings []BuildingID
	Alive     bool
}

func (p *Player) GetID() int    { return p.ID }
func (p *Player) IsAlive() bool { return p.Alive }

// CanAfford reports whether the player has at least cost gold
func (p *Player) CanAfford(cost int) bool { return p.Gold >= cost }

func (p *Player) addUnit(id UnitID) { p.Units = append(p.Units, id) }

func (p *Player) removeUnit(id UnitID) {
	if i := slices.Index(p.Units, id); i >= 0 {
		p.Units = slices.Delete(p.Units, i, i+1)
	}
}

func (p *Player) addBuilding(id BuildingID) { p.Buildings = append(p.Buildings, id) }

func (p *Player) removeBuilding(id BuildingID) {
	if i := slices.Index(p.Buildings, id); i >= 0 {
		p.Buildings = slices.Delete(p.Buildings, i, i+1)
	}
}

// Clone returns a copy whose rosters do not alias the original
func (p Player) Clone() Player {
	p.Units = slices.Clone(p.Units)
	p.Buildings = slices.Clone(p.Buildings)
	return p
}
