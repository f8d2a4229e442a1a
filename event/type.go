package event

// EventType represents the type of game event
type EventType int

const (
	// === Input Requests ===

	// EventPointerDown is a primary button press
	// Trigger: host input | Consumer: ShooterSystem, RoundSystem | Payload: nil
	EventPointerDown EventType = iota + 1

	// EventPointerEnter reports the pointer entering a zone
	// Trigger: host input | Consumer: ShooterSystem | Payload: *ZonePayload
	EventPointerEnter

	// EventPointerExit reports the pointer leaving a zone
	// Trigger: host input | Consumer: ShooterSystem | Payload: *ZonePayload
	EventPointerExit

	// EventReloadRequest asks the shooter to reload
	// Trigger: host input | Consumer: ShooterSystem | Payload: nil
	EventReloadRequest

	// EventObserveRequest freezes the target readouts
	// Trigger: host input | Consumer: TargetSystem | Payload: nil
	EventObserveRequest

	// EventGiveUpRequest ends the round at once
	// Trigger: host input | Consumer: RoundSystem | Payload: nil
	EventGiveUpRequest

	// EventResize asks the target to re-query the play-area geometry
	// Trigger: host terminal resize | Consumer: TargetSystem | Payload: nil
	EventResize

	// === Notifications ===

	// EventShotFired reports an accepted shot
	// Trigger: ShooterSystem | Consumer: AudioSystem | Payload: *ShotPayload
	EventShotFired

	// EventReloadStarted reports an accepted reload
	// Trigger: ShooterSystem | Consumer: AudioSystem | Payload: nil
	EventReloadStarted

	// EventReloadComplete reports a full magazine
	// Trigger: ShooterSystem timer | Consumer: AudioSystem | Payload: nil
	EventReloadComplete

	// EventTargetDestroyed reports HitPoints reaching zero, emitted once
	// Trigger: TargetSystem | Consumer: AudioSystem | Payload: nil
	EventTargetDestroyed

	// EventObservationStarted reports frozen readouts
	// Trigger: TargetSystem | Consumer: AudioSystem | Payload: nil
	EventObservationStarted

	// EventObservationEnded reports live readouts again
	// Trigger: TargetSystem timer | Consumer: none | Payload: nil
	EventObservationEnded

	// EventRoundEnded reports the terminal transition, emitted once
	// Trigger: RoundSystem | Consumer: AudioSystem, host | Payload: *RoundEndedPayload
	EventRoundEnded
)

var typeNames = map[EventType]string{
	EventPointerDown:        "PointerDown",
	EventPointerEnter:       "PointerEnter",
	EventPointerExit:        "PointerExit",
	EventReloadRequest:      "ReloadRequest",
	EventObserveRequest:     "ObserveRequest",
	EventGiveUpRequest:      "GiveUpRequest",
	EventResize:             "Resize",
	EventShotFired:          "ShotFired",
	EventReloadStarted:      "ReloadStarted",
	EventReloadComplete:     "ReloadComplete",
	EventTargetDestroyed:    "TargetDestroyed",
	EventObservationStarted: "ObservationStarted",
	EventObservationEnded:   "ObservationEnded",
	EventRoundEnded:         "RoundEnded",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick number at push time
}
