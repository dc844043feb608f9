package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/bot"
	"github.com/mitchelldurbincs/HexConquest/internal/game/combat"
	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events"
	"github.com/mitchelldurbincs/HexConquest/internal/game/mapgen"
	"github.com/mitchelldurbincs/HexConquest/internal/game/rules"
	"github.com/mitchelldurbincs/HexConquest/internal/game/states"
)

// EngineInitializer handles the complex initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine is shorthand for NewEngineInitializer(cfg).Initialize(ctx)
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	engine := ei.createEngine()
	if err := engine.stateMachine.TransitionTo(states.PhaseSetup, "Engine created"); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	m, err := ei.generateMap()
	if err != nil {
		ei.fail(engine, err)
		return nil, fmt.Errorf("map generation failed: %w", err)
	}

	state := core.NewState(m.Grid, ei.initializePlayers())
	ei.attachState(engine, state)

	if err := ei.placeCapitals(state, m.Capitals); err != nil {
		ei.fail(engine, err)
		return nil, fmt.Errorf("capital placement failed: %w", err)
	}

	if err := engine.stateMachine.TransitionTo(states.PhaseRunning, "Capitals placed"); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		ei.config.Players,
		ei.config.Radius,
		state.Grid.Len(),
	))

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("radius", ei.config.Radius).
		Int("players", ei.config.Players).
		Int("human_player", ei.config.HumanPlayer).
		Int64("map_seed", m.Seed).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.GameID == "" {
		ei.config.GameID = uuid.New().String()
	}

	if ei.config.NewPolicy == nil {
		ei.config.NewPolicy = func(playerID int, rng *rand.Rand, logger zerolog.Logger) command.Policy {
			return bot.NewGreedyPolicy(bot.WithRNG(rng), bot.WithLogger(logger))
		}
	}

	if ei.config.HexSize <= 0 {
		ei.config.HexSize = 1
	}
}

// createEngine builds the engine shell: bus, lifecycle and rule helpers.
// The arena is attached once the map exists.
func (ei *EngineInitializer) createEngine() *Engine {
	eventBus := events.NewEventBus(ei.logger)
	for _, sub := range ei.config.Subscribers {
		eventBus.Subscribe(sub)
	}

	gameContext := states.NewGameContext(ei.config.GameID, mapgen.MaxPlayers, ei.logger)
	gameContext.PlayerCount = ei.config.Players

	return &Engine{
		rng:          ei.config.Rng,
		logger:       ei.logger,
		eventBus:     eventBus,
		gameID:       ei.config.GameID,
		stateMachine: states.NewStateMachine(gameContext, eventBus),
		turns:        NewTurnController(ei.logger),
		economy:      NewEconomy(eventBus, ei.config.GameID, ei.logger),
		legalMoves:   rules.NewLegalMoveCalculator(),
		winCondition: rules.NewWinConditionChecker(ei.logger, ei.config.Players),
		layout:       core.NewLayout(ei.config.HexSize),
		policies:     make(map[int]command.Policy),
		maxChained:   ei.config.MaxChainedTurns,
	}
}

// generateMap generates the grid and the capital sites
func (ei *EngineInitializer) generateMap() (*mapgen.Map, error) {
	mapCfg := mapgen.DefaultMapConfig(ei.config.Radius, ei.config.Players)
	if ei.config.Map != nil {
		mapCfg = *ei.config.Map
		mapCfg.Radius = ei.config.Radius
		mapCfg.PlayerCount = ei.config.Players
	}
	return mapgen.NewGenerator(mapCfg, ei.config.Rng).GenerateMap()
}

// initializePlayers creates the roster with the configured economy
func (ei *EngineInitializer) initializePlayers() []core.Player {
	players := make([]core.Player, ei.config.Players)
	for i := range players {
		players[i] = core.Player{
			ID:     i,
			IsBot:  i != ei.config.HumanPlayer,
			Gold:   ei.config.StartingGold,
			Income: ei.config.BaseIncome,
			Alive:  true,
		}
	}
	return players
}

// attachState wires the arena and every component that reads it
func (ei *EngineInitializer) attachState(engine *Engine, state *core.State) {
	engine.state = state
	engine.StateView = command.NewStateView(state, engine.turns)
	engine.combat = combat.NewResolver(state)

	for i := range state.Players {
		if state.Players[i].IsBot {
			botLogger := ei.logger.With().Int("bot_player", i).Logger()
			engine.policies[i] = ei.config.NewPolicy(i, ei.config.Rng, botLogger)
		}
	}
}

// placeCapitals puts each player's capital and starting infantry on their
// site and claims the passable tiles around it
func (ei *EngineInitializer) placeCapitals(state *core.State, capitals []mapgen.CapitalPlacement) error {
	for _, cp := range capitals {
		if _, err := state.PlaceBuilding(cp.PlayerID, core.BuildingCapital, cp.Pos); err != nil {
			return fmt.Errorf("player %d capital at %s: %w", cp.PlayerID, cp.Pos, err)
		}
		if _, err := state.SpawnUnit(cp.PlayerID, core.UnitInfantry, cp.Pos); err != nil {
			return fmt.Errorf("player %d infantry at %s: %w", cp.PlayerID, cp.Pos, err)
		}
		for _, n := range state.Grid.Neighbors(cp.Pos) {
			if t := state.Grid.GetTile(n); t.IsPassable() && t.IsNeutral() {
				t.Owner = cp.PlayerID
			}
		}
	}
	return nil
}

// fail records a setup error and moves the lifecycle to PhaseError
func (ei *EngineInitializer) fail(engine *Engine, err error) {
	engine.stateMachine.GetContext().Error = err
	if tErr := engine.stateMachine.TransitionTo(states.PhaseError, err.Error()); tErr != nil {
		ei.logger.Error().Err(tErr).Msg("Failed to transition to Error state")
	}
}
