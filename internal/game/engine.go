package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/game/combat"
	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events"
	"github.com/mitchelldurbincs/HexConquest/internal/game/mapgen"
	"github.com/mitchelldurbincs/HexConquest/internal/game/rules"
	"github.com/mitchelldurbincs/HexConquest/internal/game/states"
)

// PolicyFactory builds the policy that plays a computer-controlled seat
type PolicyFactory func(playerID int, rng *rand.Rand, logger zerolog.Logger) command.Policy

// GameConfig holds configuration for creating a new game engine
type GameConfig struct {
	Radius  int
	Players int
	// HumanPlayer is the seat driven by commands from outside; -1 makes every seat a bot
	HumanPlayer  int
	StartingGold int
	BaseIncome   int

	// Map overrides the generated terrain. Radius and Players are taken from
	// the engine config; a zero Seed draws one from Rng.
	Map *mapgen.MapConfig

	// HexSize sets the layout used by TileAtWorld
	HexSize float64

	// MaxChainedTurns caps the bot turns EndTurn runs; 0 means one rotation
	MaxChainedTurns int

	NewPolicy   PolicyFactory
	Subscribers []events.Subscriber

	Rng    *rand.Rand
	GameID string
	Logger zerolog.Logger
}

// Engine is the single writer of a match. It implements command.Surface for
// the active player; every other reader goes through the embedded view.
type Engine struct {
	*command.StateView

	state        *core.State
	rng          *rand.Rand
	logger       zerolog.Logger
	eventBus     *events.EventBus
	gameID       string
	stateMachine *states.StateMachine

	turns        *TurnController
	economy      *Economy
	combat       *combat.Resolver
	legalMoves   *rules.LegalMoveCalculator
	winCondition *rules.WinConditionChecker
	layout       core.Layout

	policies   map[int]command.Policy
	maxChained int
	botDepth   int
}

var _ command.Surface = (*Engine)(nil)

// GameID returns the id stamped on every event of this match
func (e *Engine) GameID() string { return e.gameID }

// EventBus returns the bus events are published on
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// CurrentPhase returns the lifecycle phase
func (e *Engine) CurrentPhase() states.GamePhase { return e.stateMachine.CurrentPhase() }

// StateMachine exposes the lifecycle machine for host-driven pause and end
func (e *Engine) StateMachine() *states.StateMachine { return e.stateMachine }

// IsBot reports whether a policy plays the seat
func (e *Engine) IsBot(playerID int) bool {
	_, ok := e.policies[playerID]
	return ok
}

// Layout returns the hex layout used to resolve world positions
func (e *Engine) Layout() core.Layout { return e.layout }

// TileAtWorld resolves a world-space point to the tile under it
func (e *Engine) TileAtWorld(x, y float64) (core.Coordinate, bool) {
	c := e.layout.WorldToHex(x, y)
	return c, e.state.Grid.Contains(c)
}

// Standings summarizes the match for the host
func (e *Engine) Standings() rules.Standings {
	return e.winCondition.Standings(e)
}

// IsGameOver reports whether at most one player is left, and who
func (e *Engine) IsGameOver() (bool, int) {
	players := make([]rules.Player, len(e.state.Players))
	for i := range e.state.Players {
		players[i] = &e.state.Players[i]
	}
	return e.winCondition.CheckGameOver(players)
}

// Pause stops the match from accepting commands
func (e *Engine) Pause(reason string) error {
	return e.stateMachine.TransitionTo(states.PhasePaused, reason)
}

// Resume accepts commands again after Pause
func (e *Engine) Resume(reason string) error {
	return e.stateMachine.TransitionTo(states.PhaseRunning, reason)
}

// End is the host's decision that the match is over. The winner is the
// sole survivor if there is one.
func (e *Engine) End(reason string) error {
	_, winner := e.IsGameOver()
	ctx := e.stateMachine.GetContext()
	ctx.Winner = winner
	if err := e.stateMachine.TransitionTo(states.PhaseEnded, reason); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, winner, ctx.GetElapsedTime(), e.turns.Turn()))
	return nil
}

// CheckInvariants verifies arena consistency; meant for tests and debug runs
func (e *Engine) CheckInvariants() error { return e.state.CheckInvariants() }

// Snapshot returns a deep copy of the arena
func (e *Engine) Snapshot() *core.State { return e.state.Clone() }
