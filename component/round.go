package component

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the round result, terminal once it leaves OutcomeInProgress
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeSurvived
	OutcomeDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSurvived:
		return "survived"
	case OutcomeDefeated:
		return "defeated"
	default:
		return "in progress"
	}
}

// Terminal reports whether the round has been decided
func (o Outcome) Terminal() bool {
	return o != OutcomeInProgress
}

// EndReason records what triggered the terminal transition
type EndReason uint8

const (
	EndNone EndReason = iota
	EndTimeout
	EndTargetDestroyed
	EndGaveUp
	EndOutOfAmmo
)

func (r EndReason) String() string {
	switch r {
	case EndTimeout:
		return "timeout"
	case EndTargetDestroyed:
		return "target destroyed"
	case EndGaveUp:
		return "gave up"
	case EndOutOfAmmo:
		return "out of ammo"
	default:
		return "none"
	}
}

// RoundComponent is the countdown and result of one play-through
type RoundComponent struct {
	ID            uuid.UUID
	TimeRemaining int // Whole seconds
	Outcome       Outcome
	Reason        EndReason
	EndedAt       time.Duration // Game-clock timestamp of the terminal transition
}
