package states

import (
	"fmt"
	"slices"
)

// GamePhase represents the lifecycle phase of a match
type GamePhase int

const (
	// PhaseInitializing - engine object creation
	PhaseInitializing GamePhase = iota

	// PhaseSetup - grid generation, capital and starting unit placement
	PhaseSetup

	// PhaseRunning - commands are accepted
	PhaseRunning

	// PhasePaused - host suspended play; commands are refused
	PhasePaused

	// PhaseEnded - host declared the match over
	PhaseEnded

	// PhaseError - setup failed
	PhaseError
)

var phaseNames = map[GamePhase]string{
	PhaseInitializing: "Initializing",
	PhaseSetup:        "Setup",
	PhaseRunning:      "Running",
	PhasePaused:       "Paused",
	PhaseEnded:        "Ended",
	PhaseError:        "Error",
}

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

// IsTerminal returns true if no transition leaves this phase
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// CanReceiveActions returns true if the game can process player commands in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseSetup, PhaseError}
	case PhaseSetup:
		return []GamePhase{PhaseRunning, PhaseError}
	case PhaseRunning:
		return []GamePhase{PhasePaused, PhaseEnded}
	case PhasePaused:
		return []GamePhase{PhaseRunning, PhaseEnded}
	default:
		return nil
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	return slices.Contains(p.AllowedTransitions(), target)
}

// ParsePhase converts a phase name back to a GamePhase
func ParsePhase(s string) (GamePhase, bool) {
	for phase, name := range phaseNames {
		if name == s {
			return phase, true
		}
	}
	return PhaseInitializing, false
}
