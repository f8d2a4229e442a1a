package parameter

// System Execution Priorities (lower runs first)
// Event handlers are registered in the same order, so a fire request reaches the shooter before the round
const (
	PriorityTarget  = 10 // Motion integration first
	PriorityTimers  = 20 // After motion, countdown decides on the current tick
	PriorityShooter = 30
	PriorityRound   = 40 // After shooter, re-checks health on fire
	PriorityAudio   = 50 // After game logic, cues only
)
