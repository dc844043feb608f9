// Package command declares the surface through which players, bots and
// renderers interact with a running match. The engine implements it; callers
// never hold a pointer to the mutable state.
package command

import "github.com/mitchelldurbincs/HexConquest/internal/game/core"

// View is a read-only window onto the match. Every value it returns is a copy.
type View interface {
	Radius() int
	// Coordinates lists every tile coordinate in grid order
	Coordinates() []core.Coordinate
	TileAt(c core.Coordinate) (core.Tile, bool)
	Unit(id core.UnitID) (core.Unit, bool)
	UnitAt(c core.Coordinate) (core.Unit, bool)
	BuildingAt(c core.Coordinate) (core.Building, bool)
	DefenseBonusAt(c core.Coordinate) int
	Player(id int) (core.Player, bool)
	PlayerCount() int
	ActivePlayer() int
	Turn() int
	AliveCount() int
	ReachableTiles(from core.Coordinate, budget int) core.ReachableSet
	FindPath(from, to core.Coordinate, maxSteps int) []core.Coordinate
}

// Selection is the answer to Select: what stands on the tile and, for a
// unit, where it can move and what it can hit this turn
type Selection struct {
	At        core.Coordinate
	Unit      *core.Unit
	Building  *core.Building
	Reachable core.ReachableSet
	Targets   []core.Coordinate
}

// HasUnit reports whether a unit was selected
func (s Selection) HasUnit() bool { return s.Unit != nil }

// Surface is the full command set available to the active player.
// Every command is validated first and either applies completely or
// returns an error and leaves the match unchanged.
type Surface interface {
	View
	Select(pos core.Coordinate) (Selection, error)
	Move(from, to core.Coordinate) error
	Attack(from, to core.Coordinate) error
	Build(bt core.BuildingType, pos core.Coordinate) error
	// Produce returns where the new unit was placed
	Produce(ut core.UnitType) (core.Coordinate, error)
	EndTurn() error
}

// Policy plays the active player's turn through the surface. The caller
// ends the turn once PlayTurn returns.
type Policy interface {
	PlayTurn(s Surface) error
}

// PolicyFunc adapts a function to Policy
type PolicyFunc func(s Surface) error

func (f PolicyFunc) PlayTurn(s Surface) error { return f(s) }
