package main

import (
	"context"
	"flag"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/HexConquest/internal/config"
	"github.com/mitchelldurbincs/HexConquest/internal/game"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/HexConquest/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, loads config.<env>.yaml over the base config")
	seed := flag.Int64("seed", 0, "Match seed (0 for a random seed)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	logger, err := config.NewLogger(cfg.Logging, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}
	// The global level gates output so a config reload can change it
	level, _ := zerolog.ParseLevel(cfg.Logging.Level)
	zerolog.SetGlobalLevel(level)
	logger = logger.Level(zerolog.TraceLevel)
	log.Logger = logger
	log.Info().Str("config_file", config.ConfigFilePath()).Str("env", *env).Msg("Config loaded")

	config.WatchConfig(func(c *config.Config) {
		if level, err := zerolog.ParseLevel(c.Logging.Level); err == nil {
			zerolog.SetGlobalLevel(level)
			log.Info().Str("level", level.String()).Msg("Log level reloaded")
		}
	})

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	gameCfg := game.ConfigFromSettings(cfg, rng, logger)
	gameCfg.Subscribers = append(gameCfg.Subscribers,
		subscribers.NewLoggerSubscriber("match-log", logger, zerolog.DebugLevel))

	engine, err := game.NewEngine(context.Background(), gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create match")
	}
	// Bots seated before the human play their opening turns
	engine.AdvanceBots()

	log.Info().
		Str("game_id", engine.GameID()).
		Int("radius", gameCfg.Radius).
		Int("players", gameCfg.Players).
		Int("human", gameCfg.HumanPlayer).
		Msg("Match started")

	w := cfg.UI.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(ui.NewHexGame(engine, gameCfg.HumanPlayer, cfg.UI, logger)); err != nil {
		log.Fatal().Err(err).Msg("Game loop exited")
	}
}
