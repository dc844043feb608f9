package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSelection   = errors.New("no unit or tile of the active player at target")
	ErrInsufficientFunds  = errors.New("insufficient gold")
	ErrOutOfRange         = errors.New("target out of range or unit already attacked")
	ErrUnreachableTarget  = errors.New("target unreachable within movement budget")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidPlayer      = errors.New("invalid player ID")
	ErrGameNotRunning     = errors.New("game is not running")
)

// WrapActionError adds player and command context to an error
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	if action == nil {
		return fmt.Errorf("player action: %w", err)
	}
	return fmt.Errorf("player %d: %s: %w", action.GetPlayerID(), action.Describe(), err)
}

// WrapGameStateError adds turn and phase context to an error
func WrapGameStateError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game turn %d [%s]: %w", turn, phase, err)
}

// WrapPlayerError adds player and operation context to an error
func WrapPlayerError(playerID int, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %d %s: %w", playerID, operation, err)
}

// GameError is a structured error carrying turn and player context
type GameError struct {
	Turn      int
	PlayerID  int
	Operation string
	Err       error
}

// NewGameError creates a GameError. A negative playerID omits the player from the message.
func NewGameError(turn, playerID int, operation string, err error) *GameError {
	return &GameError{Turn: turn, PlayerID: playerID, Operation: operation, Err: err}
}

func (e *GameError) Error() string {
	if e.PlayerID >= 0 {
		return fmt.Sprintf("turn %d: player %d %s: %v", e.Turn, e.PlayerID, e.Operation, e.Err)
	}
	return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error { return e.Err }
