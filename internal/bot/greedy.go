// Package bot holds the computer players. A policy sees the match only
// through command.Surface, the same commands a human issues.
package bot

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

// GreedyPolicy builds, produces and then sends every unit at the nearest enemy
type GreedyPolicy struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// Option configures a GreedyPolicy
type Option func(*GreedyPolicy)

// WithRNG sets the random source for building and unit choices
func WithRNG(rng *rand.Rand) Option {
	return func(p *GreedyPolicy) { p.rng = rng }
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(p *GreedyPolicy) { p.logger = logger }
}

// NewGreedyPolicy creates a greedy bot. Without WithRNG it seeds from the clock.
func NewGreedyPolicy(opts ...Option) *GreedyPolicy {
	p := &GreedyPolicy{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p.logger = p.logger.With().Str("component", "GreedyPolicy").Logger()
	return p
}

var _ command.Policy = (*GreedyPolicy)(nil)

// PlayTurn runs the build, produce and move/attack phases, then ends the turn.
// Rejected commands are logged and skipped; a phase with nothing to do is a no-op.
func (p *GreedyPolicy) PlayTurn(s command.Surface) error {
	me := s.ActivePlayer()
	log := p.logger.With().Int("player_id", me).Int("turn", s.Turn()).Logger()

	p.build(s, me, log)
	p.produce(s, me, log)
	p.advanceUnits(s, me, log)

	log.Debug().Msg("Bot turn complete")
	return s.EndTurn()
}

func (p *GreedyPolicy) build(s command.Surface, me int, log zerolog.Logger) {
	site, ok := firstBuildSite(s, me)
	if !ok {
		return
	}
	bt := core.ConstructibleBuildingTypes[p.rng.Intn(len(core.ConstructibleBuildingTypes))]
	if !canAfford(s, me, bt.Stats().Cost) {
		return
	}
	if err := s.Build(bt, site); err != nil {
		log.Debug().Err(err).Str("building", bt.String()).Str("at", site.String()).Msg("Build rejected")
		return
	}
	log.Debug().Str("building", bt.String()).Str("at", site.String()).Msg("Built")
}

func (p *GreedyPolicy) produce(s command.Surface, me int, log zerolog.Logger) {
	ut := core.AllUnitTypes[p.rng.Intn(len(core.AllUnitTypes))]
	if !canAfford(s, me, ut.Stats().Cost) {
		return
	}
	at, err := s.Produce(ut)
	if err != nil {
		log.Debug().Err(err).Str("unit", ut.String()).Msg("Produce rejected")
		return
	}
	log.Debug().Str("unit", ut.String()).Str("at", at.String()).Msg("Produced")
}

func (p *GreedyPolicy) advanceUnits(s command.Surface, me int, log zerolog.Logger) {
	player, ok := s.Player(me)
	if !ok {
		return
	}
	// Search far enough to route around any water on the map
	searchBound := len(s.Coordinates())

	for _, id := range player.Units {
		u, ok := s.Unit(id)
		if !ok || u.MovesLeft <= 0 {
			continue
		}
		target, ok := nearestEnemy(s, me, u.Pos)
		if !ok {
			return
		}

		// With no legal step the unit keeps its movement. Each unit is visited
		// once and the turn ends after this loop, so it is never spent.
		pos := u.Pos
		if dest, ok := approach(s, u, target, searchBound); ok {
			if err := s.Move(u.Pos, dest); err != nil {
				log.Debug().Err(err).Str("from", u.Pos.String()).Str("to", dest.String()).Msg("Move rejected")
			} else {
				pos = dest
			}
		}

		if pos.DistanceTo(target) <= u.Stats().Range {
			if err := s.Attack(pos, target); err != nil {
				log.Debug().Err(err).Str("from", pos.String()).Str("to", target.String()).Msg("Attack rejected")
			}
		}
	}
}

// approach picks the furthest step along a path to target, within the
// unit's movement, that the engine would accept as a move
func approach(s command.Surface, u core.Unit, target core.Coordinate, searchBound int) (core.Coordinate, bool) {
	path := s.FindPath(u.Pos, target, searchBound)
	if len(path) == 0 {
		return core.Coordinate{}, false
	}
	sel, err := s.Select(u.Pos)
	if err != nil {
		return core.Coordinate{}, false
	}

	last := len(path) - 1
	if u.MovesLeft-1 < last {
		last = u.MovesLeft - 1
	}
	for i := last; i >= 0; i-- {
		if sel.Reachable.Contains(path[i]) {
			return path[i], true
		}
	}
	return core.Coordinate{}, false
}

// nearestEnemy scans in grid order for the closest tile holding a foreign
// unit or building; ties go to the first seen
func nearestEnemy(v command.View, me int, from core.Coordinate) (core.Coordinate, bool) {
	best := core.Coordinate{}
	bestDist := math.MaxInt
	for _, c := range v.Coordinates() {
		if !holdsEnemy(v, me, c) {
			continue
		}
		if d := from.DistanceTo(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist != math.MaxInt
}

func holdsEnemy(v command.View, me int, c core.Coordinate) bool {
	if u, ok := v.UnitAt(c); ok && u.Owner != me {
		return true
	}
	if b, ok := v.BuildingAt(c); ok && b.Owner != me {
		return true
	}
	return false
}

// firstBuildSite is the first owned passable tile, in grid order, without a building
func firstBuildSite(v command.View, me int) (core.Coordinate, bool) {
	for _, c := range v.Coordinates() {
		t, ok := v.TileAt(c)
		if ok && t.OwnedBy(me) && !t.HasBuilding() && t.IsPassable() {
			return c, true
		}
	}
	return core.Coordinate{}, false
}

func canAfford(v command.View, me, cost int) bool {
	player, ok := v.Player(me)
	return ok && player.CanAfford(cost)
}
