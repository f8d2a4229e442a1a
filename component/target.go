package component

import (
	"time"

	"github.com/lixenwraith/quantum-shooter/vmath"
)

// TargetComponent is the moving target inside the gallery
// Position is the footprint center relative to the play-area center
type TargetComponent struct {
	Position vmath.Vec2
	Velocity vmath.Vec2 // Per-axis signed speed, units per second
	Extent   vmath.Vec2 // Half width / half height, fixed after initialization
	Area     vmath.Vec2 // Play-area full width / height

	HitPoints int

	// Observation freezes what the display shows, motion continues underneath
	Observed         bool
	ObservedPosition vmath.Vec2
	ObservedSpeed    float64
	ObservedVector   int
	ObservedUntil    time.Duration // Game-clock timestamp
}

// Alive reports whether the target still takes part in the round
func (t TargetComponent) Alive() bool {
	return t.HitPoints > 0
}

// Limits returns the largest center offset per axis that keeps the footprint inside the area
// An area smaller than the footprint pins that axis to the center
func (t TargetComponent) Limits() vmath.Vec2 {
	lim := vmath.Vec2{
		X: t.Area.X/2 - t.Extent.X,
		Y: t.Area.Y/2 - t.Extent.Y,
	}
	if lim.X < 0 {
		lim.X = 0
	}
	if lim.Y < 0 {
		lim.Y = 0
	}
	return lim
}
