package states

import (
	"fmt"
	"time"
)

// InitializingState is the phase before any grid exists
type InitializingState struct{}

func NewInitializingState() State { return &InitializingState{} }

func (s *InitializingState) Phase() GamePhase { return PhaseInitializing }

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error { return nil }

func (s *InitializingState) Validate(ctx *GameContext) error { return nil }

// SetupState covers grid generation and capital placement
type SetupState struct{}

func NewSetupState() State { return &SetupState{} }

func (s *SetupState) Phase() GamePhase { return PhaseSetup }

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("player_count", ctx.PlayerCount).
		Msg("Setting up match")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Setup complete")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("player count %d outside 1..%d", ctx.PlayerCount, ctx.MaxPlayers)
	}
	return nil
}

// RunningState represents active gameplay
type RunningState struct{}

func NewRunningState() State { return &RunningState{} }

func (s *RunningState) Phase() GamePhase { return PhaseRunning }

func (s *RunningState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
		ctx.Logger.Info().
			Time("start_time", ctx.StartTime).
			Msg("Game started")
	}
	return nil
}

func (s *RunningState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting running state")
	return nil
}

func (s *RunningState) Validate(ctx *GameContext) error {
	if ctx.PlayerCount < 1 {
		return fmt.Errorf("cannot run game with no players")
	}
	return nil
}

// PausedState represents a host-suspended game
type PausedState struct{}

func NewPausedState() State { return &PausedState{} }

func (s *PausedState) Phase() GamePhase { return PhasePaused }

func (s *PausedState) Enter(ctx *GameContext) error {
	ctx.PauseTime = time.Now()
	ctx.Logger.Info().Msg("Game paused")
	return nil
}

func (s *PausedState) Exit(ctx *GameContext) error {
	if !ctx.PauseTime.IsZero() {
		pauseDuration := time.Since(ctx.PauseTime)
		ctx.TotalPauseDuration += pauseDuration
		ctx.PauseTime = time.Time{}
		ctx.Logger.Info().
			Dur("pause_duration", pauseDuration).
			Dur("total_pause_duration", ctx.TotalPauseDuration).
			Msg("Game resumed")
	}
	return nil
}

func (s *PausedState) Validate(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("cannot pause a game that hasn't started")
	}
	return nil
}

// EndedState represents a match the host has closed
type EndedState struct{}

func NewEndedState() State { return &EndedState{} }

func (s *EndedState) Phase() GamePhase { return PhaseEnded }

func (s *EndedState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("winner", ctx.Winner).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game ended")
	return nil
}

func (s *EndedState) Exit(ctx *GameContext) error { return nil }

func (s *EndedState) Validate(ctx *GameContext) error { return nil }

// ErrorState records a failed setup
type ErrorState struct{}

func NewErrorState() State { return &ErrorState{} }

func (s *ErrorState) Phase() GamePhase { return PhaseError }

func (s *ErrorState) Enter(ctx *GameContext) error {
	ctx.Logger.Error().
		Err(ctx.Error).
		Msg("Game entered error state")
	return nil
}

func (s *ErrorState) Exit(ctx *GameContext) error { return nil }

func (s *ErrorState) Validate(ctx *GameContext) error {
	if ctx.Error == nil {
		return fmt.Errorf("error state requires an error in context")
	}
	return nil
}
