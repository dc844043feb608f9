package core

// MaxHealth is the health every unit and building starts with
const MaxHealth = 100

// Unit is a mobile actor stored in the State arena
type Unit struct {
	ID          UnitID
	Type        UnitType
	Owner       int
	Pos         Coordinate
	Health      int
	MovesLeft   int
	HasAttacked bool
}

// Stats is shorthand for the unit's static stats
func (u *Unit) Stats() UnitStats { return u.Type.Stats() }

// IsDestroyed reports whether the unit has no health left
func (u *Unit) IsDestroyed() bool { return u.Health <= 0 }

// HealthRatio scales combat power by remaining health
func (u *Unit) HealthRatio() float64 { return float64(u.Health) / MaxHealth }

// ResetForTurn restores movement and the attack flag
func (u *Unit) ResetForTurn() {
	u.MovesLeft = u.Stats().Movement
	u.HasAttacked = false
}

// Building is a static structure stored in the State arena
type Building struct {
	ID     BuildingID
	Type   BuildingType
	Owner  int
	Pos    Coordinate
	Health int
	Level  int
}

// Stats is shorthand for the building's static stats
func (b *Building) Stats() BuildingStats { return b.Type.Stats() }

// IsDestroyed reports whether the building has no health left
func (b *Building) IsDestroyed() bool { return b.Health <= 0 }
