package engine

import (
	"time"

	"github.com/lixenwraith/quantum-shooter/event"
)

// System is a unit of game logic run once per tick in priority order
// Systems also receive routed events during the dispatch phase that precedes Update
type System interface {
	event.Handler

	// Name identifies the system in logs and telemetry
	Name() string

	// Priority orders Update calls and handler registration, lower runs first
	Priority() int

	// Update advances the system by dt of game time
	Update(dt time.Duration)
}
