package component

// ShooterState is derived from the shooter flags and counters, never stored
type ShooterState uint8

const (
	ShooterIdle ShooterState = iota
	ShooterCooldown
	ShooterReloading
	ShooterAwaitingReload // Magazine empty, reloads remain
	ShooterEmpty          // Magazine empty, no reloads remain
)

func (s ShooterState) String() string {
	switch s {
	case ShooterIdle:
		return "idle"
	case ShooterCooldown:
		return "cooldown"
	case ShooterReloading:
		return "reloading"
	case ShooterAwaitingReload:
		return "awaiting reload"
	case ShooterEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ShotResult is host feedback for a fire request
type ShotResult uint8

const (
	ShotRejected ShotResult = iota // Gate closed, nothing changed
	ShotMissed
	ShotHit
)

func (r ShotResult) String() string {
	switch r {
	case ShotMissed:
		return "missed"
	case ShotHit:
		return "hit"
	default:
		return "rejected"
	}
}

// ShooterComponent tracks ammunition and the fire gates
type ShooterComponent struct {
	Shots   int
	Reloads int

	CanShoot  bool // Cooldown gate, false between a shot and readyNextShot
	Reloading bool

	AimedAtGallery bool
	AimedAtTarget  bool
}

// State derives the current shooter state
func (s ShooterComponent) State() ShooterState {
	switch {
	case s.Reloading:
		return ShooterReloading
	case s.Shots == 0 && s.Reloads == 0:
		return ShooterEmpty
	case s.Shots == 0:
		return ShooterAwaitingReload
	case !s.CanShoot:
		return ShooterCooldown
	default:
		return ShooterIdle
	}
}

// CanFire reports whether a fire request would be accepted
func (s ShooterComponent) CanFire() bool {
	return s.CanShoot && !s.Reloading && s.AimedAtGallery && s.Shots > 0
}

// OutOfAmmo reports an empty magazine with no reloads left
func (s ShooterComponent) OutOfAmmo() bool {
	return s.Shots == 0 && s.Reloads == 0
}
