package session

import (
	"errors"
	"fmt"
)

// State is the turn controller's phase
type State int

const (
	StateUndefined State = iota
	StateWelcome
	StatePlaying
	// StateRollingDice is declared but never entered.
	StateRollingDice
	// StateGameOver is declared but no transition leads to it; a run ends
	// after a fixed number of ticks instead.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateUndefined:
		return "undefined"
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StateRollingDice:
		return "rolling_dice"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Movement selects how the active player moves on their turn
type Movement string

const (
	// MovementPath advances the shared path cursor once per step
	MovementPath Movement = "path"
	// MovementWalk takes random orthogonal single steps on the grid
	MovementWalk Movement = "walk"
)

// ErrUnknownMovement is returned by ParseMovement
var ErrUnknownMovement = errors.New("unknown movement")

// ParseMovement converts a movement name; empty means MovementPath
func ParseMovement(name string) (Movement, error) {
	switch Movement(name) {
	case MovementPath, "":
		return MovementPath, nil
	case MovementWalk:
		return MovementWalk, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMovement, name)
	}
}
