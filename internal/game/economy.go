package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/game/events"
)

// Economy handles gold: spending on commands and the income credited at
// every turn change
type Economy struct {
	eventBus events.Publisher
	gameID   string
	logger   zerolog.Logger
}

// NewEconomy creates a new economy manager
func NewEconomy(eventBus events.Publisher, gameID string, logger zerolog.Logger) *Economy {
	return &Economy{
		eventBus: eventBus,
		gameID:   gameID,
		logger:   logger.With().Str("component", "Economy").Logger(),
	}
}

// CheckFunds returns ErrInsufficientFunds when the player cannot pay cost
func (ec *Economy) CheckFunds(p *core.Player, cost int) error {
	if !p.CanAfford(cost) {
		return core.ErrInsufficientFunds
	}
	return nil
}

// Spend deducts cost. Callers check funds first; gold never goes negative.
func (ec *Economy) Spend(p *core.Player, cost int) {
	if !p.CanAfford(cost) {
		panic("economy: spend without funds")
	}
	p.Gold -= cost
}

// ProcessTurnStart refreshes every alive player's units and credits their income
func (ec *Economy) ProcessTurnStart(s *core.State, turn int) {
	totalCredited := 0
	for pid := range s.Players {
		p := &s.Players[pid]
		if !p.IsAlive() {
			continue
		}

		for _, u := range s.UnitsOf(pid) {
			u.ResetForTurn()
		}

		p.Gold += p.Income
		totalCredited += p.Income
		ec.eventBus.Publish(events.NewIncomeCreditedEvent(ec.gameID, pid, p.Income, p.Gold, turn))
	}

	ec.logger.Debug().
		Int("turn", turn).
		Int("total_credited", totalCredited).
		Msg("Turn income processed")
}
