package core

import (
	"fmt"
	"slices"
)

// State is the arena for everything mutable in a match.
// Tiles and player rosters refer to units and buildings by id; the
// Units and Buildings maps are the only owners of the records.
type State struct {
	Grid      *Grid
	Players   []Player
	Units     map[UnitID]*Unit
	Buildings map[BuildingID]*Building

	nextUnit     UnitID
	nextBuilding BuildingID
}

// NewState wraps a grid and a player list in an empty arena
func NewState(grid *Grid, players []Player) *State {
	return &State{
		Grid:         grid,
		Players:      players,
		Units:        make(map[UnitID]*Unit),
		Buildings:    make(map[BuildingID]*Building),
		nextUnit:     1,
		nextBuilding: 1,
	}
}

// Player returns the player with the given id
func (s *State) Player(id int) (*Player, error) {
	if id < 0 || id >= len(s.Players) {
		return nil, ErrInvalidPlayer
	}
	return &s.Players[id], nil
}

// Unit returns the unit with the given id or nil
func (s *State) Unit(id UnitID) *Unit { return s.Units[id] }

// Building returns the building with the given id or nil
func (s *State) Building(id BuildingID) *Building { return s.Buildings[id] }

// UnitAt returns the unit standing on c or nil
func (s *State) UnitAt(c Coordinate) *Unit {
	t := s.Grid.GetTile(c)
	if t == nil || !t.HasUnit() {
		return nil
	}
	return s.Units[t.Unit]
}

// BuildingAt returns the building on c or nil
func (s *State) BuildingAt(c Coordinate) *Building {
	t := s.Grid.GetTile(c)
	if t == nil || !t.HasBuilding() {
		return nil
	}
	return s.Buildings[t.Building]
}

// DefenseBonusAt is terrain bonus plus the bonus of any building on the tile
func (s *State) DefenseBonusAt(c Coordinate) int {
	t := s.Grid.GetTile(c)
	if t == nil {
		return 0
	}
	bonus := t.Terrain.DefenseBonus()
	if b := s.BuildingAt(c); b != nil {
		bonus += b.Stats().DefenseBonus
	}
	return bonus
}

// UnitsOf returns the player's units in roster order
func (s *State) UnitsOf(playerID int) []*Unit {
	p, err := s.Player(playerID)
	if err != nil {
		return nil
	}
	out := make([]*Unit, 0, len(p.Units))
	for _, id := range p.Units {
		if u := s.Units[id]; u != nil {
			out = append(out, u)
		}
	}
	return out
}

// BuildingsOf returns the player's buildings in roster order
func (s *State) BuildingsOf(playerID int) []*Building {
	p, err := s.Player(playerID)
	if err != nil {
		return nil
	}
	out := make([]*Building, 0, len(p.Buildings))
	for _, id := range p.Buildings {
		if b := s.Buildings[id]; b != nil {
			out = append(out, b)
		}
	}
	return out
}

// CapitalOf returns the player's capital or nil once it has fallen
func (s *State) CapitalOf(playerID int) *Building {
	for _, b := range s.BuildingsOf(playerID) {
		if b.Type == BuildingCapital {
			return b
		}
	}
	return nil
}

// SpawnUnit places a fresh unit with full movement on pos and claims the tile.
// No gold is charged here.
func (s *State) SpawnUnit(owner int, ut UnitType, pos Coordinate) (*Unit, error) {
	p, err := s.Player(owner)
	if err != nil {
		return nil, err
	}
	if !ut.IsValid() {
		return nil, ErrInvalidTarget
	}
	t := s.Grid.GetTile(pos)
	if t == nil {
		return nil, ErrInvalidCoordinates
	}
	if !t.IsPassable() || t.HasUnit() {
		return nil, ErrInvalidTarget
	}

	u := &Unit{
		ID:        s.nextUnit,
		Type:      ut,
		Owner:     owner,
		Pos:       pos,
		Health:    MaxHealth,
		MovesLeft: ut.Stats().Movement,
	}
	s.nextUnit++
	s.Units[u.ID] = u
	t.Unit = u.ID
	t.Owner = owner
	p.addUnit(u.ID)
	return u, nil
}

// PlaceBuilding puts a new building on pos and raises the owner's income.
// No gold is charged here.
func (s *State) PlaceBuilding(owner int, bt BuildingType, pos Coordinate) (*Building, error) {
	p, err := s.Player(owner)
	if err != nil {
		return nil, err
	}
	if !bt.IsValid() {
		return nil, ErrInvalidTarget
	}
	t := s.Grid.GetTile(pos)
	if t == nil {
		return nil, ErrInvalidCoordinates
	}
	if !t.IsPassable() || t.HasBuilding() {
		return nil, ErrInvalidTarget
	}

	b := &Building{
		ID:     s.nextBuilding,
		Type:   bt,
		Owner:  owner,
		Pos:    pos,
		Health: MaxHealth,
		Level:  1,
	}
	s.nextBuilding++
	s.Buildings[b.ID] = b
	t.Building = b.ID
	t.Owner = owner
	p.addBuilding(b.ID)
	p.Income += bt.Stats().Income
	return b, nil
}

// RelocateUnit moves a unit to an empty tile and claims it. Legality is the caller's concern.
func (s *State) RelocateUnit(id UnitID, to Coordinate) error {
	u := s.Units[id]
	if u == nil {
		return ErrInvalidSelection
	}
	dst := s.Grid.GetTile(to)
	if dst == nil {
		return ErrInvalidCoordinates
	}
	if dst.HasUnit() {
		return ErrInvalidTarget
	}
	if src := s.Grid.GetTile(u.Pos); src != nil && src.Unit == id {
		src.Unit = NoEntity
	}
	dst.Unit = id
	dst.Owner = u.Owner
	u.Pos = to
	return nil
}

// RemoveUnit deletes a unit from its tile, its owner's roster and the arena
func (s *State) RemoveUnit(id UnitID) {
	u := s.Units[id]
	if u == nil {
		return
	}
	if t := s.Grid.GetTile(u.Pos); t != nil && t.Unit == id {
		t.Unit = NoEntity
	}
	if p, err := s.Player(u.Owner); err == nil {
		p.removeUnit(id)
	}
	delete(s.Units, id)
}

// RemoveBuilding deletes a building from its tile, its owner's roster and the
// arena, and takes its income away from the owner
func (s *State) RemoveBuilding(id BuildingID) {
	b := s.Buildings[id]
	if b == nil {
		return
	}
	if t := s.Grid.GetTile(b.Pos); t != nil && t.Building == id {
		t.Building = NoEntity
	}
	if p, err := s.Player(b.Owner); err == nil {
		p.removeBuilding(id)
		p.Income -= b.Stats().Income
	}
	delete(s.Buildings, id)
}

// EliminatePlayer clears every unit, building and tile the player holds
// and marks them not alive
func (s *State) EliminatePlayer(id int) error {
	p, err := s.Player(id)
	if err != nil {
		return err
	}
	for _, uid := range append([]UnitID(nil), p.Units...) {
		s.RemoveUnit(uid)
	}
	for _, bid := range append([]BuildingID(nil), p.Buildings...) {
		s.RemoveBuilding(bid)
	}
	for i := range s.Grid.T {
		if s.Grid.T[i].Owner == id {
			s.Grid.T[i].Owner = NeutralID
		}
	}
	p.Units = p.Units[:0]
	p.Buildings = p.Buildings[:0]
	p.Alive = false
	return nil
}

// AliveCount is the number of players still in the rotation
func (s *State) AliveCount() int {
	n := 0
	for i := range s.Players {
		if s.Players[i].Alive {
			n++
		}
	}
	return n
}

// Clone deep-copies the arena
func (s *State) Clone() *State {
	c := &State{
		Grid:         s.Grid.Clone(),
		Players:      make([]Player, len(s.Players)),
		Units:        make(map[UnitID]*Unit, len(s.Units)),
		Buildings:    make(map[BuildingID]*Building, len(s.Buildings)),
		nextUnit:     s.nextUnit,
		nextBuilding: s.nextBuilding,
	}
	for i := range s.Players {
		c.Players[i] = s.Players[i].Clone()
	}
	for id, u := range s.Units {
		uc := *u
		c.Units[id] = &uc
	}
	for id, b := range s.Buildings {
		bc := *b
		c.Buildings[id] = &bc
	}
	return c
}

// CheckInvariants verifies that tiles, rosters and the arena agree.
// It is meant for tests and debug builds.
func (s *State) CheckInvariants() error {
	seenUnits := make(map[UnitID]bool, len(s.Units))
	seenBuildings := make(map[BuildingID]bool, len(s.Buildings))
	for i := range s.Grid.T {
		t := &s.Grid.T[i]
		if t.Coord.Length() > s.Grid.Radius {
			return fmt.Errorf("tile %s outside radius %d", t.Coord, s.Grid.Radius)
		}
		if t.HasUnit() {
			u := s.Units[t.Unit]
			if u == nil || u.Pos != t.Coord {
				return fmt.Errorf("tile %s references stale unit %d", t.Coord, t.Unit)
			}
			seenUnits[t.Unit] = true
		}
		if t.HasBuilding() {
			b := s.Buildings[t.Building]
			if b == nil || b.Pos != t.Coord {
				return fmt.Errorf("tile %s references stale building %d", t.Coord, t.Building)
			}
			seenBuildings[t.Building] = true
		}
	}
	rosterUnits := make(map[UnitID]int)
	rosterBuildings := make(map[BuildingID]int)
	for i := range s.Players {
		for _, id := range s.Players[i].Units {
			rosterUnits[id]++
		}
		for _, id := range s.Players[i].Buildings {
			rosterBuildings[id]++
		}
	}
	for id, u := range s.Units {
		if !seenUnits[id] {
			return fmt.Errorf("unit %d is not on any tile", id)
		}
		if u.Health <= 0 || u.Health > MaxHealth {
			return fmt.Errorf("unit %d has health %d", id, u.Health)
		}
		if rosterUnits[id] != 1 || !slices.Contains(s.Players[u.Owner].Units, id) {
			return fmt.Errorf("unit %d roster mismatch", id)
		}
	}
	for id, b := range s.Buildings {
		if !seenBuildings[id] {
			return fmt.Errorf("building %d is not on any tile", id)
		}
		if b.Health <= 0 || b.Health > MaxHealth {
			return fmt.Errorf("building %d has health %d", id, b.Health)
		}
		if rosterBuildings[id] != 1 || !slices.Contains(s.Players[b.Owner].Buildings, id) {
			return fmt.Errorf("building %d roster mismatch", id)
		}
	}
	if len(rosterUnits) != len(s.Units) || len(rosterBuildings) != len(s.Buildings) {
		return fmt.Errorf("roster references %d units/%d buildings, arena holds %d/%d",
			len(rosterUnits), len(rosterBuildings), len(s.Units), len(s.Buildings))
	}
	for i := range s.Players {
		if s.Players[i].Gold < 0 {
			return fmt.Errorf("player %d has negative gold %d", i, s.Players[i].Gold)
		}
	}
	return nil
}
