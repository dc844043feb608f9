package command

import "github.com/mitchelldurbincs/HexConquest/internal/game/core"

// Clock reports whose turn it is
type Clock interface {
	ActivePlayer() int
	Turn() int
}

// FixedClock is a Clock that never advances
type FixedClock struct {
	Player    int
	TurnCount int
}

func (c FixedClock) ActivePlayer() int { return c.Player }
func (c FixedClock) Turn() int         { return c.TurnCount }

// StateView implements View over a State arena
type StateView struct {
	state *core.State
	paths *core.PathFinder
	clock Clock
}

// NewStateView wraps a state. The view reads through to the live state, so
// it always reflects the latest command.
func NewStateView(state *core.State, clock Clock) *StateView {
	return &StateView{
		state: state,
		paths: core.NewPathFinder(state.Grid),
		clock: clock,
	}
}

var _ View = (*StateView)(nil)

func (v *StateView) Radius() int                    { return v.state.Grid.Radius }
func (v *StateView) Coordinates() []core.Coordinate { return v.state.Grid.Coordinates() }
func (v *StateView) PlayerCount() int               { return len(v.state.Players) }
func (v *StateView) ActivePlayer() int              { return v.clock.ActivePlayer() }
func (v *StateView) Turn() int                      { return v.clock.Turn() }
func (v *StateView) AliveCount() int                { return v.state.AliveCount() }

func (v *StateView) TileAt(c core.Coordinate) (core.Tile, bool) {
	t := v.state.Grid.GetTile(c)
	if t == nil {
		return core.Tile{}, false
	}
	return *t, true
}

func (v *StateView) Unit(id core.UnitID) (core.Unit, bool) {
	u := v.state.Unit(id)
	if u == nil {
		return core.Unit{}, false
	}
	return *u, true
}

func (v *StateView) UnitAt(c core.Coordinate) (core.Unit, bool) {
	u := v.state.UnitAt(c)
	if u == nil {
		return core.Unit{}, false
	}
	return *u, true
}

func (v *StateView) BuildingAt(c core.Coordinate) (core.Building, bool) {
	b := v.state.BuildingAt(c)
	if b == nil {
		return core.Building{}, false
	}
	return *b, true
}

func (v *StateView) DefenseBonusAt(c core.Coordinate) int {
	return v.state.DefenseBonusAt(c)
}

func (v *StateView) Player(id int) (core.Player, bool) {
	p, err := v.state.Player(id)
	if err != nil {
		return core.Player{}, false
	}
	return p.Clone(), true
}

func (v *StateView) ReachableTiles(from core.Coordinate, budget int) core.ReachableSet {
	return v.paths.ReachableTiles(from, budget)
}

func (v *StateView) FindPath(from, to core.Coordinate, maxSteps int) []core.Coordinate {
	return v.paths.FindPath(from, to, maxSteps)
}
