package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/HexConquest/internal/config"
	"github.com/mitchelldurbincs/HexConquest/internal/game"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/HexConquest/internal/game/rules"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, loads config.<env>.yaml over the base config")
	seed := flag.Int64("seed", 0, "Match seed (0 for a random seed)")
	maxTurns := flag.Int("max-turns", -1, "Turn limit (-1 to use config default)")
	radius := flag.Int("radius", 0, "Grid radius (0 to use config default)")
	players := flag.Int("players", 0, "Number of bot players (0 to use config default)")
	every := flag.Int("print-every", 0, "Print the board every N turns (0 prints only the final board)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	// Flag overrides go through the config so they are validated like file values
	if err := config.Set("game.players.human", -1); err != nil {
		log.Fatal().Err(err).Msg("Failed to seat bots")
	}
	for _, o := range []struct {
		key string
		val int
	}{{"game.grid.radius", *radius}, {"game.players.count", *players}} {
		if o.val <= 0 {
			continue
		}
		if err := config.Set(o.key, o.val); err != nil {
			log.Fatal().Err(err).Str("key", o.key).Msg("Invalid flag override")
		}
	}
	cfg := config.Get()

	logger, err := config.NewLogger(cfg.Logging, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}
	log.Logger = logger
	log.Info().Str("config_file", config.ConfigFilePath()).Str("env", *env).Msg("Config loaded")

	if *maxTurns == -1 {
		*maxTurns = cfg.Simulate.MaxTurns
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	gameCfg := game.ConfigFromSettings(cfg, rand.New(rand.NewSource(*seed)), logger)

	// Only the match-shaping events go to the log
	matchLog := subscribers.NewLoggerSubscriber("match-log", logger, zerolog.InfoLevel)
	matchLog.SetEventFilter([]string{
		events.TypeGameStarted,
		events.TypeBuildingDestroyed,
		events.TypePlayerEliminated,
		events.TypeGameEnded,
	})
	gameCfg.Subscribers = append(gameCfg.Subscribers, matchLog)

	engine, err := game.NewEngine(context.Background(), gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create match")
	}
	log.Info().Int64("seed", *seed).Str("game_id", engine.GameID()).Msg("Simulation started")
	fmt.Printf("Initial board:\n%s\n", engine.Board())

	start := time.Now()
	lastPrint := engine.Turn()
	for engine.Turn() <= *maxTurns && engine.AliveCount() > 1 {
		if engine.AdvanceBots() == 0 {
			break
		}
		if *every > 0 && engine.Turn()-lastPrint >= *every {
			lastPrint = engine.Turn()
			fmt.Printf("Turn %d:\n%s\n", engine.Turn(), engine.Board())
		}
	}

	st := engine.Standings()
	reason := "turn limit reached"
	if st.Survivor >= 0 {
		reason = fmt.Sprintf("player %d is the last one standing", st.Survivor)
	}
	if err := engine.End(reason); err != nil {
		log.Error().Err(err).Msg("Failed to end match")
	}

	fmt.Printf("Final board:\n%s\n", engine.Board())
	printStandings(st)
	log.Info().
		Int("turns", st.Turn).
		Int("alive", st.AliveCount).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation finished")
}

func printStandings(st rules.Standings) {
	fmt.Printf("Turn %d, %d alive\n", st.Turn, st.AliveCount)
	for _, p := range st.Players {
		status := "ALIVE"
		if !p.Alive {
			status = "DEAD"
		}
		fmt.Printf("Player %d: %5s  gold %8s  income %6s  units %3d  buildings %3d  tiles %3d\n",
			p.ID, status, humanize.Comma(int64(p.Gold)), humanize.Comma(int64(p.Income)),
			p.Units, p.Buildings, p.Tiles)
	}
	if st.Survivor >= 0 {
		fmt.Printf("Player %d wins!\n", st.Survivor)
	}
}
