package system

import (
	"time"

	"github.com/lixenwraith/quantum-shooter/component"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/event"
	"github.com/lixenwraith/quantum-shooter/parameter"
)

// AudioSystem turns game notifications into sound cues
type AudioSystem struct {
	sound engine.SoundPlayer
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{sound: world.Resources.Sound}
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
		event.EventReloadStarted,
		event.EventReloadComplete,
		event.EventTargetDestroyed,
		event.EventObservationStarted,
		event.EventRoundEnded,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventShotFired:
		s.sound.Play(engine.CueShot)
		if p, ok := ev.Payload.(*event.ShotPayload); ok && p.Result == component.ShotHit {
			s.sound.Play(engine.CueHit)
		}
	case event.EventReloadStarted:
		s.sound.Play(engine.CueReload)
	case event.EventReloadComplete:
		s.sound.Play(engine.CueReloadDone)
	case event.EventTargetDestroyed:
		s.sound.Play(engine.CueTargetDestroyed)
	case event.EventObservationStarted:
		s.sound.Play(engine.CueObserve)
	case event.EventRoundEnded:
		s.sound.Play(engine.CueRoundOver)
	}
}

func (s *AudioSystem) Update(time.Duration) {}
