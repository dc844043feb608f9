package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
)

// PlayerStanding is one row of the scoreboard
type PlayerStanding struct {
	ID        int
	IsBot     bool
	Alive     bool
	Gold      int
	Income    int
	Units     int
	Buildings int
	Tiles     int
}

// Standings summarizes a match for the host. The match never ends on its
// own; the host decides what to do with a sole survivor.
type Standings struct {
	Turn       int
	AliveCount int
	// Survivor is the last alive player, or -1 while several remain
	Survivor int
	Players  []PlayerStanding
}

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger          zerolog.Logger
	originalPlayers int
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, originalPlayers int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:          logger.With().Str("component", "WinConditionChecker").Logger(),
		originalPlayers: originalPlayers,
	}
}

// CheckGameOver determines if the game is over based on the number of alive players
// Returns (isGameOver, winnerID)
func (wc *WinConditionChecker) CheckGameOver(players []Player) (bool, int) {
	aliveCount := 0
	lastAliveID := -1
	for _, p := range players {
		if p.IsAlive() {
			aliveCount++
			lastAliveID = p.GetID()
		}
	}

	// A single-player sandbox only ends when that player falls
	var gameOver bool
	if wc.originalPlayers > 1 {
		gameOver = aliveCount <= 1
	} else {
		gameOver = aliveCount == 0
	}

	winnerID := -1
	if gameOver && aliveCount == 1 {
		winnerID = lastAliveID
		wc.logger.Info().Int("winner_player_id", winnerID).Msg("Winner determined")
	} else if gameOver {
		wc.logger.Info().Msg("No winner found, every player was eliminated")
	}

	wc.logger.Debug().Bool("is_game_over", gameOver).Int("alive_player_count", aliveCount).Msg("Game over check complete")
	return gameOver, winnerID
}

// Standings builds the scoreboard from a read-only view
func (wc *WinConditionChecker) Standings(v command.View) Standings {
	st := Standings{
		Turn:     v.Turn(),
		Survivor: -1,
		Players:  make([]PlayerStanding, v.PlayerCount()),
	}
	for id := range st.Players {
		p, _ := v.Player(id)
		st.Players[id] = PlayerStanding{
			ID:        p.ID,
			IsBot:     p.IsBot,
			Alive:     p.Alive,
			Gold:      p.Gold,
			Income:    p.Income,
			Units:     len(p.Units),
			Buildings: len(p.Buildings),
		}
		if p.Alive {
			st.AliveCount++
			st.Survivor = p.ID
		}
	}
	if st.AliveCount != 1 {
		st.Survivor = -1
	}
	for _, c := range v.Coordinates() {
		t, _ := v.TileAt(c)
		if t.Owner >= 0 && t.Owner < len(st.Players) {
			st.Players[t.Owner].Tiles++
		}
	}
	return st
}

// Player interface to avoid circular imports
type Player interface {
	GetID() int
	IsAlive() bool
}
