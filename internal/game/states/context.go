package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext is the match information phases read and update on entry and exit
type GameContext struct {
	GameID string
	Logger zerolog.Logger

	PlayerCount int
	MaxPlayers  int

	// StartTime is set when PhaseRunning is first entered
	StartTime          time.Time
	PauseTime          time.Time
	TotalPauseDuration time.Duration

	// Winner is -1 until the host ends the match with a sole survivor
	Winner int

	// Error holds the setup failure that moved the machine to PhaseError
	Error error
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, maxPlayers int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:     gameID,
		MaxPlayers: maxPlayers,
		Logger:     logger.With().Str("game_id", gameID).Logger(),
		Winner:     -1,
	}
}

// IsReady returns true if the player count fits the match
func (gc *GameContext) IsReady() bool {
	return gc.PlayerCount >= 1 && gc.PlayerCount <= gc.MaxPlayers
}

// GetElapsedTime returns the time elapsed since game start, excluding pauses
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime) - gc.TotalPauseDuration
}
