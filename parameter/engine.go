package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps a single tick after a stall (suspend, debugger) so motion does not tunnel
	MaxFrameDelta = 250 * time.Millisecond

	// InputChannelSize is the buffer between the terminal poller and the game loop
	InputChannelSize = 64
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
