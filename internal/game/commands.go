package game

import (
	"fmt"

	"github.com/mitchelldurbincs/HexConquest/internal/game/combat"
	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events"
)

// Apply dispatches a command for its player. Commands for anyone other than
// the active player are rejected.
func (e *Engine) Apply(action core.Action) error {
	if action == nil {
		return core.WrapActionError(nil, core.ErrInvalidTarget)
	}
	if action.GetPlayerID() != e.turns.ActivePlayer() {
		return e.reject(action, core.ErrInvalidPlayer)
	}

	switch a := action.(type) {
	case *core.SelectAction:
		_, err := e.Select(a.At)
		return err
	case *core.MoveAction:
		return e.Move(a.From, a.To)
	case *core.AttackAction:
		return e.Attack(a.From, a.To)
	case *core.BuildAction:
		return e.Build(a.Type, a.At)
	case *core.ProduceAction:
		_, err := e.Produce(a.Type)
		return err
	case *core.EndTurnAction:
		return e.EndTurn()
	default:
		return e.reject(action, fmt.Errorf("unsupported action %T: %w", action, core.ErrInvalidTarget))
	}
}

// execute runs the shared gate for every command: lifecycle phase, static
// validation, then the command body. Bodies validate everything before
// their first mutation, so a returned error means nothing changed.
func (e *Engine) execute(action core.Action, body func(playerID int) error) error {
	if phase := e.stateMachine.CurrentPhase(); !phase.CanReceiveActions() {
		return e.reject(action, core.WrapGameStateError(e.turns.Turn(), phase.String(), core.ErrGameNotRunning))
	}
	if err := action.Validate(e.state.Grid); err != nil {
		return e.reject(action, err)
	}
	if err := body(action.GetPlayerID()); err != nil {
		return e.reject(action, err)
	}
	e.logger.Debug().
		Int("player_id", action.GetPlayerID()).
		Int("turn", e.turns.Turn()).
		Str("command", action.Describe()).
		Msg("Command applied")
	return nil
}

func (e *Engine) reject(action core.Action, err error) error {
	e.logger.Debug().
		Err(err).
		Int("player_id", action.GetPlayerID()).
		Int("turn", e.turns.Turn()).
		Str("command", action.Describe()).
		Msg("Command rejected")
	e.eventBus.Publish(events.NewCommandRejectedEvent(
		e.gameID, action.GetPlayerID(), e.turns.Turn(), action.GetType().String(), err))
	return core.WrapActionError(action, err)
}

// ownUnitAt returns the active player's unit on c
func (e *Engine) ownUnitAt(playerID int, c core.Coordinate) (*core.Unit, error) {
	u := e.state.UnitAt(c)
	if u == nil || u.Owner != playerID {
		return nil, core.ErrInvalidSelection
	}
	return u, nil
}

// Select inspects a tile owned by, or holding a unit of, the active player
func (e *Engine) Select(pos core.Coordinate) (command.Selection, error) {
	var sel command.Selection
	action := &core.SelectAction{PlayerID: e.turns.ActivePlayer(), At: pos}
	err := e.execute(action, func(playerID int) error {
		tile := e.state.Grid.GetTile(pos)
		u := e.state.UnitAt(pos)
		ownUnit := u != nil && u.Owner == playerID
		if !ownUnit && !tile.OwnedBy(playerID) {
			return core.ErrInvalidSelection
		}

		sel.At = pos
		if b := e.state.BuildingAt(pos); b != nil {
			bc := *b
			sel.Building = &bc
		}
		if ownUnit {
			uc := *u
			sel.Unit = &uc
			sel.Reachable = e.legalMoves.MoveTargets(e, uc)
			sel.Targets = e.legalMoves.AttackTargets(e, uc)
		}
		return nil
	})
	return sel, err
}

// Move relocates a unit to a reachable empty tile. It spends all of the
// unit's remaining movement and claims the destination.
func (e *Engine) Move(from, to core.Coordinate) error {
	action := &core.MoveAction{PlayerID: e.turns.ActivePlayer(), From: from, To: to}
	return e.execute(action, func(playerID int) error {
		u, err := e.ownUnitAt(playerID, from)
		if err != nil {
			return err
		}
		cost, err := e.legalMoves.CheckMove(e, *u, to)
		if err != nil {
			return err
		}

		if err := e.state.RelocateUnit(u.ID, to); err != nil {
			return err
		}
		u.MovesLeft = 0
		e.eventBus.Publish(events.NewUnitMovedEvent(e.gameID, playerID, e.turns.Turn(), u, from, cost))
		return nil
	})
}

// Attack strikes the unit on to, or the building there if no unit stands on it
func (e *Engine) Attack(from, to core.Coordinate) error {
	action := &core.AttackAction{PlayerID: e.turns.ActivePlayer(), From: from, To: to}
	return e.execute(action, func(playerID int) error {
		attacker, err := e.ownUnitAt(playerID, from)
		if err != nil {
			return err
		}

		distance := from.DistanceTo(to)
		if defender := e.state.UnitAt(to); defender != nil {
			if defender.Owner == playerID {
				return core.ErrInvalidTarget
			}
			if !combat.CanAttack(attacker, defender.Owner, distance) {
				return core.ErrOutOfRange
			}
			e.fight(playerID, *attacker, *defender)
			return nil
		}

		if b := e.state.BuildingAt(to); b != nil {
			if b.Owner == playerID {
				return core.ErrInvalidTarget
			}
			if !combat.CanAttack(attacker, b.Owner, distance) {
				return core.ErrOutOfRange
			}
			e.siege(playerID, *attacker, b)
			return nil
		}
		return core.ErrInvalidTarget
	})
}

// fight resolves a unit-versus-unit exchange. The arguments are copies taken
// before resolution so destroyed units can still be reported.
func (e *Engine) fight(playerID int, attacker, defender core.Unit) {
	res := e.combat.Resolve(attacker.ID, defender.ID)
	turn := e.turns.Turn()

	ev := events.NewCombatResolvedEvent(e.gameID, turn, int(attacker.ID), int(defender.ID), attacker.Pos, defender.Pos)
	ev.Metadata.PlayerID = playerID
	ev.AttackPower = res.AttackPower
	ev.DefensePower = res.DefensePower
	ev.DamageToDefender = res.DamageToDefender
	ev.DamageToAttacker = res.DamageToAttacker
	ev.AttackerDestroyed = res.AttackerDestroyed
	ev.DefenderDestroyed = res.DefenderDestroyed
	e.eventBus.Publish(ev)

	if res.DefenderDestroyed {
		e.eventBus.Publish(events.NewUnitDestroyedEvent(e.gameID, turn, &defender))
	}
	if res.AttackerDestroyed {
		e.eventBus.Publish(events.NewUnitDestroyedEvent(e.gameID, turn, &attacker))
	}
}

// siege resolves an attack on a building and any elimination it causes
func (e *Engine) siege(playerID int, attacker core.Unit, b *core.Building) {
	res := e.combat.AttackBuilding(attacker.ID, b.ID)
	turn := e.turns.Turn()

	e.eventBus.Publish(events.NewBuildingAttackedEvent(e.gameID, turn, playerID, b, res.Damage))
	if res.Destroyed {
		e.eventBus.Publish(events.NewBuildingDestroyedEvent(e.gameID, turn, b))
	}
	if res.Eliminated != core.NeutralID {
		remaining := e.state.AliveCount()
		e.logger.Info().
			Int("player_id", res.Eliminated).
			Int("eliminated_by", playerID).
			Int("remaining", remaining).
			Int("turn", turn).
			Msg("Player eliminated")
		e.eventBus.Publish(events.NewPlayerEliminatedEvent(e.gameID, res.Eliminated, playerID, remaining, turn))
	}
}

// Build constructs a building on an owned passable tile without one
func (e *Engine) Build(bt core.BuildingType, pos core.Coordinate) error {
	action := &core.BuildAction{PlayerID: e.turns.ActivePlayer(), Type: bt, At: pos}
	return e.execute(action, func(playerID int) error {
		tile := e.state.Grid.GetTile(pos)
		if !tile.OwnedBy(playerID) || tile.HasBuilding() || !tile.IsPassable() {
			return core.ErrInvalidTarget
		}
		p, err := e.state.Player(playerID)
		if err != nil {
			return err
		}
		cost := bt.Stats().Cost
		if err := e.economy.CheckFunds(p, cost); err != nil {
			return err
		}

		b, err := e.state.PlaceBuilding(playerID, bt, pos)
		if err != nil {
			return err
		}
		e.economy.Spend(p, cost)
		e.eventBus.Publish(events.NewBuildingConstructedEvent(e.gameID, e.turns.Turn(), b))
		return nil
	})
}

// Produce buys a unit and places it on the first empty passable tile next
// to one of the player's Barracks or Capital, returning where it went
func (e *Engine) Produce(ut core.UnitType) (core.Coordinate, error) {
	var at core.Coordinate
	action := &core.ProduceAction{PlayerID: e.turns.ActivePlayer(), Type: ut}
	err := e.execute(action, func(playerID int) error {
		p, err := e.state.Player(playerID)
		if err != nil {
			return err
		}
		cost := ut.Stats().Cost
		if err := e.economy.CheckFunds(p, cost); err != nil {
			return err
		}
		spot, ok := e.spawnSite(playerID)
		if !ok {
			return core.ErrInvalidTarget
		}

		u, err := e.state.SpawnUnit(playerID, ut, spot)
		if err != nil {
			return err
		}
		e.economy.Spend(p, cost)
		at = spot
		e.eventBus.Publish(events.NewUnitProducedEvent(e.gameID, e.turns.Turn(), u))
		return nil
	})
	return at, err
}

// spawnSite scans the player's spawning buildings in roster order and their
// neighbors in direction order
func (e *Engine) spawnSite(playerID int) (core.Coordinate, bool) {
	for _, b := range e.state.BuildingsOf(playerID) {
		if !b.Type.CanSpawnUnits() {
			continue
		}
		for _, n := range e.state.Grid.Neighbors(b.Pos) {
			if t := e.state.Grid.GetTile(n); t.IsPassable() && t.IsEmpty() {
				return n, true
			}
		}
	}
	return core.Coordinate{}, false
}

// EndTurn passes the turn to the next alive player, then plays any bot
// seats that follow until a human is active again
func (e *Engine) EndTurn() error {
	action := &core.EndTurnAction{PlayerID: e.turns.ActivePlayer()}
	if err := e.execute(action, func(int) error {
		e.advanceTurn()
		return nil
	}); err != nil {
		return err
	}
	e.AdvanceBots()
	return nil
}

// advanceTurn rotates to the next alive player and refreshes every alive
// player's units and gold
func (e *Engine) advanceTurn() {
	prev, next := e.turns.Advance(e.state.Players)
	e.economy.ProcessTurnStart(e.state, e.turns.Turn())
	e.eventBus.Publish(events.NewTurnEndedEvent(e.gameID, prev, next, e.turns.Turn()))
}

// AdvanceBots plays consecutive bot turns while a bot is active, at most one
// full rotation (or MaxChainedTurns) per call. It returns the number of turns
// played. Hosts call it once after setup when seat 0 is a bot.
func (e *Engine) AdvanceBots() int {
	if e.botDepth > 0 {
		return 0
	}
	limit := e.maxChained
	if limit <= 0 {
		limit = len(e.state.Players)
	}

	played := 0
	for played < limit && e.stateMachine.CurrentPhase().CanReceiveActions() {
		active := e.turns.ActivePlayer()
		policy, ok := e.policies[active]
		if !ok || !e.state.Players[active].IsAlive() {
			break
		}
		e.playBotTurn(active, policy)
		played++
	}
	return played
}

func (e *Engine) playBotTurn(playerID int, policy command.Policy) {
	e.botDepth++
	defer func() { e.botDepth-- }()

	surface := &botSurface{Engine: e}
	if err := policy.PlayTurn(surface); err != nil {
		e.logger.Warn().Err(err).Int("player_id", playerID).Int("turn", e.turns.Turn()).Msg("Bot turn failed")
	}
	// A sole survivor is active again after its own EndTurn
	if !surface.ended {
		e.advanceTurn()
	}
}

// botSurface is the surface handed to policies. EndTurn only ends the bot's
// own turn; chaining into the next seat stays with AdvanceBots.
type botSurface struct {
	*Engine
	ended bool
}

func (s *botSurface) EndTurn() error {
	if s.ended {
		return nil
	}
	action := &core.EndTurnAction{PlayerID: s.turns.ActivePlayer()}
	err := s.execute(action, func(int) error {
		s.advanceTurn()
		return nil
	})
	s.ended = err == nil
	return err
}
