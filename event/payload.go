package event

import (
	"github.com/lixenwraith/quantum-shooter/component"
)

// ZonePayload names the zone a pointer crossed into or out of
type ZonePayload struct {
	Zone component.Zone
}

// ShotPayload describes an accepted shot
type ShotPayload struct {
	Result component.ShotResult
	Shots  int // Remaining after the shot
}

// RoundEndedPayload describes the terminal transition
type RoundEndedPayload struct {
	Outcome component.Outcome
	Reason  component.EndReason
	Scene   string
}
