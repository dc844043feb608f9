package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexConquest/internal/common"
	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events"
	"github.com/mitchelldurbincs/HexConquest/internal/game/mapgen"
	"github.com/mitchelldurbincs/HexConquest/internal/game/states"
	"github.com/mitchelldurbincs/HexConquest/internal/testutil"
)

// passTurn is a bot that ends its turn without acting
func passTurn(int, *rand.Rand, zerolog.Logger) command.Policy {
	return command.PolicyFunc(func(s command.Surface) error { return s.EndTurn() })
}

// newTestEngine creates a plain-terrain match with seat 0 human and passing
// bots elsewhere, unless cfg says otherwise
func newTestEngine(t *testing.T, cfg GameConfig) *Engine {
	t.Helper()
	if cfg.Players == 0 {
		cfg.Players = 2
	}
	if cfg.Radius == 0 {
		cfg.Radius = 5
	}
	if cfg.StartingGold == 0 {
		cfg.StartingGold = testutil.DefaultGold
	}
	if cfg.BaseIncome == 0 {
		cfg.BaseIncome = testutil.DefaultIncome
	}
	if cfg.NewPolicy == nil {
		cfg.NewPolicy = passTurn
	}
	if cfg.Map == nil {
		cfg.Map = testutil.PlainMapConfig(cfg.Radius, cfg.Players)
	}
	cfg.Rng = testutil.NewTestRNG(12345)
	cfg.Logger = testutil.NopLogger()

	e, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	return e
}

// collect records every event of the given type
func collect[T events.Event](e *Engine, eventType string) *[]T {
	var got []T
	e.EventBus().SubscribeFunc(eventType, func(ev events.Event) {
		got = append(got, ev.(T))
	})
	return &got
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine(context.Background(), GameConfig{
		Radius:       10,
		Players:      4,
		StartingGold: 500,
		BaseIncome:   100,
		NewPolicy:    passTurn,
		Rng:          testutil.NewTestRNG(1),
		Logger:       testutil.NopLogger(),
	})
	require.NoError(t, err)

	assert.Equal(t, states.PhaseRunning, e.CurrentPhase())
	assert.NotEmpty(t, e.GameID())
	assert.Equal(t, 0, e.ActivePlayer())
	assert.Equal(t, 1, e.Turn())
	assert.Equal(t, 4, e.AliveCount())
	assert.False(t, e.IsBot(0))
	assert.True(t, e.IsBot(3))

	capitals := []core.Coordinate{
		core.NewCoordinate(0, -8), core.NewCoordinate(0, 8),
		core.NewCoordinate(8, -8), core.NewCoordinate(-8, 8),
	}
	for id, c := range capitals {
		u, ok := e.UnitAt(c)
		require.True(t, ok, "player %d infantry", id)
		assert.Equal(t, id, u.Owner)
		assert.Equal(t, core.UnitInfantry, u.Type)

		b, ok := e.BuildingAt(c)
		require.True(t, ok)
		assert.Equal(t, core.BuildingCapital, b.Type)

		p, _ := e.Player(id)
		assert.Len(t, p.Units, 1)
		assert.Equal(t, 500, p.Gold)
		assert.Equal(t, 100, p.Income)
	}
	assert.Equal(t, 16, capitals[0].DistanceTo(capitals[1]))
	assert.Equal(t, 16, capitals[2].DistanceTo(capitals[3]))
	require.NoError(t, e.CheckInvariants())
}

func TestNewEngine_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewEngine(ctx, GameConfig{Radius: 2, Players: 2, Logger: testutil.NopLogger()})
	assert.ErrorIs(t, err, mapgen.ErrRadiusTooSmall)

	_, err = NewEngine(ctx, GameConfig{Radius: 8, Players: 7, Logger: testutil.NopLogger()})
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = NewEngine(cancelled, GameConfig{Radius: 5, Players: 2, Logger: testutil.NopLogger()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Select(t *testing.T) {
	e := newTestEngine(t, GameConfig{})
	home := core.NewCoordinate(0, -3)

	sel, err := e.Select(home)
	require.NoError(t, err)
	require.True(t, sel.HasUnit())
	require.NotNil(t, sel.Building)
	assert.Equal(t, core.BuildingCapital, sel.Building.Type)
	assert.True(t, sel.Reachable.Contains(core.NewCoordinate(0, -1)))
	assert.False(t, sel.Reachable.Contains(core.NewCoordinate(0, 0)), "beyond two plains")
	assert.Empty(t, sel.Targets)

	// An owned empty tile selects without a unit
	sel, err = e.Select(core.NewCoordinate(0, -2))
	require.NoError(t, err)
	assert.False(t, sel.HasUnit())

	_, err = e.Select(core.NewCoordinate(0, 3))
	assert.ErrorIs(t, err, core.ErrInvalidSelection)
	_, err = e.Select(core.NewCoordinate(0, 0))
	assert.ErrorIs(t, err, core.ErrInvalidSelection, "neutral tile")
	_, err = e.Select(core.NewCoordinate(9, 9))
	assert.ErrorIs(t, err, core.ErrInvalidCoordinates)
}

func TestEngine_Move(t *testing.T) {
	e := newTestEngine(t, GameConfig{})
	moved := collect[*events.UnitMovedEvent](e, events.TypeUnitMoved)
	from, to := core.NewCoordinate(0, -3), core.NewCoordinate(0, -1)

	require.NoError(t, e.Move(from, to))

	u, ok := e.UnitAt(to)
	require.True(t, ok)
	assert.Equal(t, 0, u.MovesLeft, "moving spends all movement")
	_, still := e.UnitAt(from)
	assert.False(t, still)
	tile, _ := e.TileAt(to)
	assert.True(t, tile.OwnedBy(0), "destination is claimed")

	require.Len(t, *moved, 1)
	assert.Equal(t, 2, (*moved)[0].Cost)

	err := e.Move(to, core.NewCoordinate(0, 0))
	assert.ErrorIs(t, err, core.ErrUnreachableTarget)

	err = e.Move(from, core.NewCoordinate(0, -2))
	assert.ErrorIs(t, err, core.ErrInvalidSelection, "no unit left on the capital")

	err = e.Move(core.NewCoordinate(0, 3), core.NewCoordinate(0, 2))
	assert.ErrorIs(t, err, core.ErrInvalidSelection, "enemy unit")
	require.NoError(t, e.CheckInvariants())
}

func TestEngine_MoveOntoOccupiedTile(t *testing.T) {
	e := newTestEngine(t, GameConfig{})
	testutil.MustSpawnUnit(t, e.state, 0, core.UnitTank, core.NewCoordinate(0, -2))

	err := e.Move(core.NewCoordinate(0, -3), core.NewCoordinate(0, -2))
	assert.ErrorIs(t, err, core.ErrInvalidTarget)
}

func TestEngine_BuildAndProduce(t *testing.T) {
	e := newTestEngine(t, GameConfig{})
	built := collect[*events.BuildingConstructedEvent](e, events.TypeBuildingConstructed)
	produced := collect[*events.UnitProducedEvent](e, events.TypeUnitProduced)

	site := core.NewCoordinate(-1, -2)
	require.NoError(t, e.Build(core.BuildingMine, site))

	p, _ := e.Player(0)
	assert.Equal(t, 500-150, p.Gold)
	assert.Equal(t, 100+75, p.Income)
	require.Len(t, *built, 1)

	at, err := e.Produce(core.UnitInfantry)
	require.NoError(t, err)
	assert.Equal(t, core.NewCoordinate(1, -3), at, "first free neighbor of the capital")
	u, ok := e.UnitAt(at)
	require.True(t, ok)
	assert.Equal(t, core.UnitInfantry.Stats().Movement, u.MovesLeft)
	require.Len(t, *produced, 1)

	p, _ = e.Player(0)
	assert.Equal(t, 350-100, p.Gold)

	assert.ErrorIs(t, e.Build(core.BuildingBarracks, site), core.ErrInvalidTarget, "already built")
	assert.ErrorIs(t, e.Build(core.BuildingCapital, core.NewCoordinate(0, -2)), core.ErrInvalidTarget)
	assert.ErrorIs(t, e.Build(core.BuildingMine, core.NewCoordinate(0, 2)), core.ErrInvalidTarget, "enemy tile")
	assert.ErrorIs(t, e.Build(core.BuildingMine, core.NewCoordinate(0, 0)), core.ErrInvalidTarget, "neutral tile")
	require.NoError(t, e.CheckInvariants())
}

func TestEngine_ProduceWithoutSpawnSite(t *testing.T) {
	e := newTestEngine(t, GameConfig{StartingGold: 5000})
	for range 6 {
		_, err := e.Produce(core.UnitInfantry)
		require.NoError(t, err)
	}

	_, err := e.Produce(core.UnitInfantry)
	assert.ErrorIs(t, err, core.ErrInvalidTarget)
}

func TestEngine_InsufficientFundsLeavesStateUnchanged(t *testing.T) {
	e := newTestEngine(t, GameConfig{})
	rejected := collect[*events.CommandRejectedEvent](e, events.TypeCommandRejected)
	e.state.Players[0].Gold = 50
	before := e.Snapshot()

	for range 2 {
		err := e.Build(core.BuildingBarracks, core.NewCoordinate(-1, -2))
		assert.ErrorIs(t, err, core.ErrInsufficientFunds)
		_, err = e.Produce(core.UnitTank)
		assert.ErrorIs(t, err, core.ErrInsufficientFunds)
		assert.Equal(t, before, e.Snapshot())
	}
	assert.Len(t, *rejected, 4)
}

func TestEngine_Attack(t *testing.T) {
	e := newTestEngine(t, GameConfig{Radius: 3})
	fights := collect[*events.CombatResolvedEvent](e, events.TypeCombatResolved)
	mine, theirs := core.NewCoordinate(0, -1), core.NewCoordinate(0, 1)

	assert.ErrorIs(t, e.Attack(mine, theirs), core.ErrOutOfRange, "two away with range one")
	assert.ErrorIs(t, e.Attack(mine, core.NewCoordinate(1, -1)), core.ErrInvalidTarget, "empty tile")

	require.NoError(t, e.Move(mine, core.NewCoordinate(0, 0)))
	require.NoError(t, e.Attack(core.NewCoordinate(0, 0), theirs))

	attacker, ok := e.UnitAt(core.NewCoordinate(0, 0))
	require.True(t, ok)
	defender, ok := e.UnitAt(theirs)
	require.True(t, ok)
	// Infantry on a capital defends with 3+5, so the attacker loses the exchange
	assert.Equal(t, 99, defender.Health)
	assert.Equal(t, 94, attacker.Health)
	assert.True(t, attacker.HasAttacked)

	require.Len(t, *fights, 1)
	assert.Equal(t, 0, (*fights)[0].Metadata.PlayerID)
	assert.InDelta(t, 5.5, (*fights)[0].DamageToAttacker, 1e-9)

	assert.ErrorIs(t, e.Attack(core.NewCoordinate(0, 0), theirs), core.ErrOutOfRange, "already attacked")
	assert.ErrorIs(t, e.Attack(theirs, core.NewCoordinate(0, 0)), core.ErrInvalidSelection)
	require.NoError(t, e.CheckInvariants())
}

func TestEngine_AttackOwnTarget(t *testing.T) {
	e := newTestEngine(t, GameConfig{Radius: 3})
	testutil.MustSpawnUnit(t, e.state, 0, core.UnitInfantry, core.NewCoordinate(0, 0))

	assert.ErrorIs(t, e.Attack(core.NewCoordinate(0, 0), core.NewCoordinate(0, -1)), core.ErrInvalidTarget)
}

func TestEngine_CapitalDestroyedEliminatesPlayer(t *testing.T) {
	e := newTestEngine(t, GameConfig{Radius: 3})
	eliminated := collect[*events.PlayerEliminatedEvent](e, events.TypePlayerEliminated)
	theirs := core.NewCoordinate(0, 1)

	e.state.RemoveUnit(e.state.UnitAt(theirs).ID)
	e.state.BuildingAt(theirs).Health = 1

	require.NoError(t, e.Move(core.NewCoordinate(0, -1), core.NewCoordinate(0, 0)))
	require.NoError(t, e.Attack(core.NewCoordinate(0, 0), theirs))

	_, ok := e.BuildingAt(theirs)
	assert.False(t, ok)
	assert.Equal(t, 1, e.AliveCount())
	p1, _ := e.Player(1)
	assert.False(t, p1.Alive)
	assert.Empty(t, p1.Units)
	assert.Empty(t, p1.Buildings)

	require.Len(t, *eliminated, 1)
	assert.Equal(t, 1, (*eliminated)[0].Metadata.PlayerID)
	assert.Equal(t, 1, (*eliminated)[0].Remaining)

	over, winner := e.IsGameOver()
	assert.True(t, over)
	assert.Equal(t, 0, winner)
	assert.Equal(t, 0, e.Standings().Survivor)

	// Player 1 never gets the turn back
	for range 3 {
		require.NoError(t, e.EndTurn())
		assert.Equal(t, 0, e.ActivePlayer())
	}
	require.NoError(t, e.CheckInvariants())
}

func TestEngine_EndTurn(t *testing.T) {
	e := newTestEngine(t, GameConfig{Players: 3})
	income := collect[*events.IncomeCreditedEvent](e, events.TypeIncomeCredited)
	turns := collect[*events.TurnEndedEvent](e, events.TypeTurnEnded)
	require.NoError(t, e.Move(core.NewCoordinate(0, -3), core.NewCoordinate(0, -1)))

	require.NoError(t, e.EndTurn())

	// Two passing bots played, so three rotations each credited every player
	assert.Equal(t, 0, e.ActivePlayer())
	assert.Equal(t, 4, e.Turn())
	assert.Len(t, *turns, 3)
	assert.Len(t, *income, 9)
	for id := range 3 {
		p, _ := e.Player(id)
		assert.Equal(t, 500+3*100, p.Gold)
	}

	u, _ := e.UnitAt(core.NewCoordinate(0, -1))
	assert.Equal(t, u.Stats().Movement, u.MovesLeft)
	assert.False(t, u.HasAttacked)
}

func TestEngine_OnlySurvivorKeepsTurn(t *testing.T) {
	e := newTestEngine(t, GameConfig{Players: 4, HumanPlayer: 2})
	for _, id := range []int{0, 1, 3} {
		require.NoError(t, e.state.EliminatePlayer(id))
	}

	for range 5 {
		require.NoError(t, e.EndTurn())
		assert.Equal(t, 2, e.ActivePlayer())
	}
	assert.Equal(t, 1, e.AliveCount())
}

func TestEngine_AdvanceBotsIsBounded(t *testing.T) {
	e := newTestEngine(t, GameConfig{Players: 3, HumanPlayer: -1})
	assert.Equal(t, 3, e.AdvanceBots(), "one rotation per call")
	assert.Equal(t, 4, e.Turn())

	capped := newTestEngine(t, GameConfig{Players: 3, HumanPlayer: -1, MaxChainedTurns: 2})
	assert.Equal(t, 2, capped.AdvanceBots())
	assert.Equal(t, 2, capped.ActivePlayer())

	human := newTestEngine(t, GameConfig{})
	assert.Zero(t, human.AdvanceBots(), "human seat is active")
}

func TestEngine_SoleSurvivorBotAdvancesOncePerTurn(t *testing.T) {
	e := newTestEngine(t, GameConfig{Players: 4, HumanPlayer: -1})
	turns := collect[*events.TurnEndedEvent](e, events.TypeTurnEnded)
	for _, id := range []int{0, 1, 3} {
		require.NoError(t, e.state.EliminatePlayer(id))
	}
	e.advanceTurn()
	require.Equal(t, 2, e.ActivePlayer())
	before, _ := e.Player(2)
	startTurn := e.Turn()
	*turns = nil

	played := e.AdvanceBots()

	require.Equal(t, 4, played)
	after, _ := e.Player(2)
	assert.Equal(t, before.Gold+played*before.Income, after.Gold)
	assert.Equal(t, startTurn+played, e.Turn())
	assert.Len(t, *turns, played)
	assert.Equal(t, 2, e.ActivePlayer())
}

func TestEngine_BotCannotEndTwice(t *testing.T) {
	double := func(int, *rand.Rand, zerolog.Logger) command.Policy {
		return command.PolicyFunc(func(s command.Surface) error {
			require.NoError(t, s.EndTurn())
			return s.EndTurn()
		})
	}
	e := newTestEngine(t, GameConfig{Players: 3, HumanPlayer: 0, NewPolicy: double})

	require.NoError(t, e.EndTurn())
	assert.Equal(t, 0, e.ActivePlayer())
	assert.Equal(t, 4, e.Turn())
}

func TestEngine_CommandsRequireRunningPhase(t *testing.T) {
	e := newTestEngine(t, GameConfig{})
	require.NoError(t, e.Pause("test"))

	err := e.Move(core.NewCoordinate(0, -3), core.NewCoordinate(0, -1))
	assert.ErrorIs(t, err, core.ErrGameNotRunning)
	assert.ErrorIs(t, e.EndTurn(), core.ErrGameNotRunning)
	assert.Equal(t, 1, e.Turn())

	require.NoError(t, e.Resume("test"))
	require.NoError(t, e.Move(core.NewCoordinate(0, -3), core.NewCoordinate(0, -1)))

	ended := collect[*events.GameEndedEvent](e, events.TypeGameEnded)
	require.NoError(t, e.End("host closed the match"))
	assert.Equal(t, states.PhaseEnded, e.CurrentPhase())
	require.Len(t, *ended, 1)
	assert.Equal(t, -1, (*ended)[0].Winner)
	assert.ErrorIs(t, e.EndTurn(), core.ErrGameNotRunning)
}

func TestEngine_Apply(t *testing.T) {
	e := newTestEngine(t, GameConfig{})

	err := e.Apply(&core.EndTurnAction{PlayerID: 1})
	assert.ErrorIs(t, err, core.ErrInvalidPlayer)

	require.NoError(t, e.Apply(&core.MoveAction{
		PlayerID: 0,
		From:     core.NewCoordinate(0, -3),
		To:       core.NewCoordinate(0, -2),
	}))
	require.NoError(t, e.Apply(&core.BuildAction{PlayerID: 0, Type: core.BuildingMine, At: core.NewCoordinate(-1, -2)}))
	require.NoError(t, e.Apply(&core.SelectAction{PlayerID: 0, At: core.NewCoordinate(0, -2)}))
	require.NoError(t, e.Apply(&core.EndTurnAction{PlayerID: 0}))
	assert.Equal(t, 3, e.Turn())

	assert.Error(t, e.Apply(nil))
}

func TestEngine_TileAtWorld(t *testing.T) {
	e := newTestEngine(t, GameConfig{HexSize: 20})
	c := core.NewCoordinate(2, -1)

	x, y := e.Layout().HexToWorld(c)
	got, ok := e.TileAtWorld(x+3, y-2)
	assert.True(t, ok)
	assert.Equal(t, c, got)

	_, ok = e.TileAtWorld(10000, 0)
	assert.False(t, ok)
}

func TestEngine_Standings(t *testing.T) {
	e := newTestEngine(t, GameConfig{})
	require.NoError(t, e.Build(core.BuildingMine, core.NewCoordinate(-1, -2)))

	st := e.Standings()
	assert.Equal(t, 1, st.Turn)
	assert.Equal(t, 2, st.AliveCount)
	assert.Equal(t, -1, st.Survivor)
	require.Len(t, st.Players, 2)
	assert.Equal(t, 175, st.Players[0].Income)
	assert.Equal(t, 2, st.Players[0].Buildings)
	assert.Equal(t, 7, st.Players[1].Tiles)
	assert.True(t, st.Players[1].IsBot)
}

func TestEngine_Board(t *testing.T) {
	e := newTestEngine(t, GameConfig{Radius: 3})
	board := e.Board()

	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")
	require.Len(t, lines, 2*3+1+2)
	assert.Equal(t, 2+1, strings.Count(board, "♔"), "two capitals plus the legend")
	assert.Contains(t, board, common.PlayerANSI(1)+"i")
	assert.True(t, strings.HasPrefix(lines[0], "      "), "top row is indented")
}

func TestEngine_BoardText(t *testing.T) {
	e := newTestEngine(t, GameConfig{Radius: 3})
	text := e.BoardText()

	assert.NotContains(t, text, "\033[")
	assert.Contains(t, text, "♔i")
	assert.Equal(t, strings.Count(e.Board(), "♔"), strings.Count(text, "♔"))
}
