package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game     GameConfig     `mapstructure:"game"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	UI       UIConfig       `mapstructure:"ui"`
	Simulate SimulateConfig `mapstructure:"simulate"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Grid    GridConfig    `mapstructure:"grid"`
	Players PlayersConfig `mapstructure:"players"`
	Economy EconomyConfig `mapstructure:"economy"`
	Terrain TerrainConfig `mapstructure:"terrain"`
	Bot     BotConfig     `mapstructure:"bot"`
}

// GridConfig holds the board size
type GridConfig struct {
	Radius int `mapstructure:"radius"`
}

// PlayersConfig holds the seat layout. Human is -1 for an all-bot match.
type PlayersConfig struct {
	Count int `mapstructure:"count"`
	Human int `mapstructure:"human"`
}

// EconomyConfig holds starting funds and income
type EconomyConfig struct {
	StartingGold int `mapstructure:"starting_gold"`
	BaseIncome   int `mapstructure:"base_income"`
}

// TerrainConfig holds noise settings for map generation
type TerrainConfig struct {
	Seed          int64   `mapstructure:"seed"`
	WaterLevel    float64 `mapstructure:"water_level"`
	ForestLevel   float64 `mapstructure:"forest_level"`
	MountainLevel float64 `mapstructure:"mountain_level"`
	Frequency     float64 `mapstructure:"frequency"`
	Octaves       int     `mapstructure:"octaves"`
}

// BotConfig holds computer player settings
type BotConfig struct {
	// MaxChainedTurns caps bot turns run by one EndTurn; 0 means one full rotation
	MaxChainedTurns int `mapstructure:"max_chained_turns"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window  WindowConfig `mapstructure:"window"`
	HexSize float64      `mapstructure:"hex_size"`
	Camera  CameraConfig `mapstructure:"camera"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// CameraConfig holds zoom limits
type CameraConfig struct {
	MinZoom  float64 `mapstructure:"min_zoom"`
	MaxZoom  float64 `mapstructure:"max_zoom"`
	ZoomStep float64 `mapstructure:"zoom_step"`
}

// SimulateConfig holds headless runner settings
type SimulateConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
}

var (
	// Global config instance. mu guards cfg and every use of v after Init;
	// WatchConfig swaps cfg from the fsnotify goroutine.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.grid.radius", 10)
	v.SetDefault("game.players.count", 4)
	v.SetDefault("game.players.human", 0)

	v.SetDefault("game.economy.starting_gold", 500)
	v.SetDefault("game.economy.base_income", 100)

	v.SetDefault("game.terrain.seed", 0)
	v.SetDefault("game.terrain.water_level", 0.3)
	v.SetDefault("game.terrain.forest_level", 0.6)
	v.SetDefault("game.terrain.mountain_level", 0.75)
	v.SetDefault("game.terrain.frequency", 0.15)
	v.SetDefault("game.terrain.octaves", 3)

	v.SetDefault("game.bot.max_chained_turns", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("ui.window.width", 1280)
	v.SetDefault("ui.window.height", 800)
	v.SetDefault("ui.window.title", "HexConquest")
	v.SetDefault("ui.hex_size", 28.0)
	v.SetDefault("ui.camera.min_zoom", 0.4)
	v.SetDefault("ui.camera.max_zoom", 3.0)
	v.SetDefault("ui.camera.zoom_step", 0.1)

	v.SetDefault("simulate.max_turns", 200)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/hexconquest")
	}

	v.SetEnvPrefix("HEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file falls back to defaults; a malformed one is an error
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	next, err := decode(v)
	if err != nil {
		return err
	}
	mu.Lock()
	cfg = next
	mu.Unlock()
	return nil
}

// decode unmarshals and validates a fresh Config from the viper instance
func decode(v *viper.Viper) (*Config, error) {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return next, nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded settings
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	mu.Lock()
	defer mu.Unlock()
	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	next, err := decode(v)
	if err != nil {
		return fmt.Errorf("environment config %s: %w", envFile, err)
	}
	cfg = next
	return nil
}

// Set overrides one key at runtime, typically from a command line flag
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
	next, err := decode(v)
	if err != nil {
		return fmt.Errorf("after setting %s: %w", key, err)
	}
	cfg = next
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. Reloads that fail
// validation are dropped and the previous values stay in effect.
func WatchConfig(onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		next, err := decode(v)
		if err == nil {
			cfg = next
		}
		mu.Unlock()
		if err != nil {
			return
		}
		if onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Grid.Radius < 3 {
		return fmt.Errorf("game.grid.radius must be at least 3")
	}
	if c.Game.Players.Count < 1 || c.Game.Players.Count > 6 {
		return fmt.Errorf("game.players.count must be between 1 and 6")
	}
	if c.Game.Players.Human < -1 || c.Game.Players.Human >= c.Game.Players.Count {
		return fmt.Errorf("game.players.human must be -1 or valid player index")
	}
	if c.Game.Economy.StartingGold < 0 {
		return fmt.Errorf("game.economy.starting_gold must be non-negative")
	}
	if c.Game.Economy.BaseIncome < 0 {
		return fmt.Errorf("game.economy.base_income must be non-negative")
	}

	t := c.Game.Terrain
	if t.Frequency <= 0 {
		return fmt.Errorf("game.terrain.frequency must be positive")
	}
	if t.Octaves < 1 {
		return fmt.Errorf("game.terrain.octaves must be at least 1")
	}
	if t.WaterLevel > t.MountainLevel {
		return fmt.Errorf("game.terrain.water_level must not exceed mountain_level")
	}
	if c.Game.Bot.MaxChainedTurns < 0 {
		return fmt.Errorf("game.bot.max_chained_turns must be non-negative")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.HexSize <= 0 {
		return fmt.Errorf("ui.hex_size must be positive")
	}
	if c.UI.Camera.MinZoom <= 0 || c.UI.Camera.MinZoom > c.UI.Camera.MaxZoom {
		return fmt.Errorf("ui.camera zoom limits must satisfy 0 < min_zoom <= max_zoom")
	}
	if c.UI.Camera.ZoomStep <= 0 {
		return fmt.Errorf("ui.camera.zoom_step must be positive")
	}

	if c.Simulate.MaxTurns <= 0 {
		return fmt.Errorf("simulate.max_turns must be positive")
	}

	return nil
}
