package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

// TurnController tracks whose turn it is. Players who are not alive are
// skipped; with a single player alive the rotation stays on that player.
type TurnController struct {
	active int
	turn   int
	logger zerolog.Logger
}

// NewTurnController starts the rotation at player 0 on turn 1
func NewTurnController(logger zerolog.Logger) *TurnController {
	return &TurnController{
		active: 0,
		turn:   1,
		logger: logger.With().Str("component", "TurnController").Logger(),
	}
}

// ActivePlayer is the id of the player whose commands are accepted
func (tc *TurnController) ActivePlayer() int { return tc.active }

// Turn counts rotation steps, starting at 1
func (tc *TurnController) Turn() int { return tc.turn }

// Advance moves to the next alive player after the current one and bumps the
// turn counter. It returns the previous and new active player.
func (tc *TurnController) Advance(players []core.Player) (int, int) {
	prev := tc.active
	n := len(players)
	for step := 1; step <= n; step++ {
		candidate := (prev + step) % n
		if players[candidate].IsAlive() {
			tc.active = candidate
			break
		}
	}
	tc.turn++

	tc.logger.Debug().
		Int("previous_player", prev).
		Int("active_player", tc.active).
		Int("turn", tc.turn).
		Msg("Turn advanced")
	return prev, tc.active
}
