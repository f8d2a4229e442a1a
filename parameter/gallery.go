package parameter

import "time"

// Target
const (
	// MaxHitPoints is the target health at round start
	MaxHitPoints = 3

	// MinSpeed is the smallest per-axis velocity magnitude in units per second
	MinSpeed = 30.0

	// MaxSpeed is the largest per-axis velocity magnitude in units per second
	MaxSpeed = 300.0

	// MinChangeDelay is the shortest interval between velocity reassignments
	MinChangeDelay = 200 * time.Millisecond

	// MaxChangeDelay is the longest interval between velocity reassignments
	MaxChangeDelay = 2 * time.Second

	// ObservationTime is how long displayed readouts stay frozen after Observe
	ObservationTime = 2 * time.Second

	// TargetWidth is the target footprint width in play-area units
	TargetWidth = 60.0

	// TargetHeight is the target footprint height in play-area units
	TargetHeight = 60.0
)

// Shooter
const (
	// MaxShots is the magazine size
	MaxShots = 6

	// MaxReloads is the number of reloads available per round
	MaxReloads = 2

	// ShotDelay is the cooldown between consecutive shots
	ShotDelay = 1 * time.Second

	// ReloadTime is the duration of a reload
	ReloadTime = 3 * time.Second
)

// Round
const (
	// TimeLimit is the round length in whole seconds
	TimeLimit = 30

	// CountdownInterval is the period of the round countdown
	CountdownInterval = 1 * time.Second

	// SceneDefeated is loaded when the target is destroyed
	SceneDefeated = "ending_dead"

	// SceneSurvived is loaded when the target outlives the countdown
	SceneSurvived = "ending_alive"
)

// Terminal Mapping
const (
	// UnitsPerColumn converts one terminal column to play-area units
	UnitsPerColumn = 10.0

	// UnitsPerRow converts one terminal row to play-area units, cells are roughly twice as tall as wide
	UnitsPerRow = 20.0

	// HUDRows is the number of rows reserved above the gallery for readouts
	HUDRows = 2
)

// Spectator
const (
	// SpectatorSendQueueSize is the per-peer outbound frame buffer
	SpectatorSendQueueSize = 32

	// SpectatorWriteTimeout bounds a single websocket write
	SpectatorWriteTimeout = 2 * time.Second

	// SpectatorMaxPeers caps concurrent spectators
	SpectatorMaxPeers = 16

	// SpectatorFrameInterval is the minimum wall time between broadcast frames
	SpectatorFrameInterval = 50 * time.Millisecond

	// SpectatorShutdownTimeout bounds graceful HTTP shutdown
	SpectatorShutdownTimeout = 3 * time.Second
)
