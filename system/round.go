package system

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/quantum-shooter/component"
	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/event"
	"github.com/lixenwraith/quantum-shooter/parameter"
	"github.com/lixenwraith/quantum-shooter/status"
)

// RoundSystem runs the countdown and decides the round exactly once
//
// InProgress -> Defeated when the target runs out of hit points
// InProgress -> Survived when the countdown reaches zero with the target alive
// Health is always examined first, so a kill landing on the last second still counts
type RoundSystem struct {
	world   *engine.World
	res     *engine.Resources
	cfg     config.RoundConfig
	scenes  config.SceneConfig
	scope   *engine.TimerScope
	hud     *hudCache
	target  *TargetSystem
	shooter *ShooterSystem

	round   component.RoundComponent
	started bool

	// Telemetry
	statTime    *atomic.Int64
	statOutcome *status.AtomicString
	statReason  *status.AtomicString
}

func NewRoundSystem(
	world *engine.World,
	cfg config.RoundConfig,
	scenes config.SceneConfig,
	scope *engine.TimerScope,
	target *TargetSystem,
	shooter *ShooterSystem,
) *RoundSystem {
	reg := world.Resources.Status
	return &RoundSystem{
		world:       world,
		res:         world.Resources,
		cfg:         cfg,
		scenes:      scenes,
		scope:       scope,
		hud:         newHUDCache(world.Resources.Display),
		target:      target,
		shooter:     shooter,
		statTime:    reg.Ints.Get("round.time"),
		statOutcome: reg.Strings.Get("round.outcome"),
		statReason:  reg.Strings.Get("round.reason"),
	}
}

// Name returns system's name
func (s *RoundSystem) Name() string {
	return "round"
}

func (s *RoundSystem) Priority() int {
	return parameter.PriorityRound
}

func (s *RoundSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointerDown,
		event.EventGiveUpRequest,
	}
}

func (s *RoundSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPointerDown:
		// Shooter has already handled the same press, a lethal hit ends the round in this tick
		s.check()
	case event.EventGiveUpRequest:
		s.end(component.EndGaveUp)
	}
}

// Start resets the countdown to the time limit and schedules the first decrement
// A round starts at most once and never after its timers were released
func (s *RoundSystem) Start() {
	if s.started || s.scope.Released() {
		return
	}
	s.started = true
	s.round = component.RoundComponent{
		ID:            uuid.New(),
		TimeRemaining: s.cfg.TimeLimit,
	}
	s.statTime.Store(int64(s.round.TimeRemaining))
	s.statOutcome.Store(s.round.Outcome.String())
	s.statReason.Store(s.round.Reason.String())
	s.hud.text(engine.FieldTime, timeText(s.round.TimeRemaining))

	s.scope.After(parameter.CountdownInterval, s.countDown)
	s.res.Logger.Info("round started", "id", s.round.ID, "time_limit", s.cfg.TimeLimit)
}

// countDown removes one second, ends the round at zero or reschedules itself
func (s *RoundSystem) countDown() {
	if s.round.Outcome.Terminal() {
		return
	}

	s.round.TimeRemaining--
	s.statTime.Store(int64(s.round.TimeRemaining))
	s.hud.text(engine.FieldTime, timeText(s.round.TimeRemaining))

	if s.round.TimeRemaining <= 0 {
		s.end(component.EndTimeout)
		return
	}
	s.scope.After(parameter.CountdownInterval, s.countDown)
}

// Update re-examines the termination conditions after the timers of this tick
func (s *RoundSystem) Update(time.Duration) {
	s.check()
}

func (s *RoundSystem) check() {
	if !s.started || s.round.Outcome.Terminal() {
		return
	}
	if !s.target.Alive() {
		s.end(component.EndTargetDestroyed)
		return
	}
	if s.cfg.EndOnOutOfAmmo && s.shooter.IsOutOfAmmo() && !s.shooter.Reloading() {
		s.end(component.EndOutOfAmmo)
	}
}

// GiveUp ends the round now, resolved by the target's health
func (s *RoundSystem) GiveUp() {
	s.end(component.EndGaveUp)
}

// end performs the one terminal transition: resolve, release timers, freeze state, hand off
func (s *RoundSystem) end(reason component.EndReason) {
	if !s.started || s.round.Outcome.Terminal() {
		return
	}

	outcome := component.OutcomeSurvived
	scene := s.scenes.Survived
	if !s.target.Alive() {
		outcome = component.OutcomeDefeated
		reason = component.EndTargetDestroyed
		scene = s.scenes.Defeated
	}

	s.round.Outcome = outcome
	s.round.Reason = reason
	s.round.EndedAt = s.world.Now()
	s.statOutcome.Store(outcome.String())
	s.statReason.Store(reason.String())

	s.scope.Release()
	s.target.Stop()
	s.shooter.Stop()

	s.res.Logger.Info("round ended",
		"id", s.round.ID,
		"outcome", outcome,
		"reason", reason,
		"time_remaining", s.round.TimeRemaining,
		"at", s.round.EndedAt,
	)
	s.world.Push(event.EventRoundEnded, &event.RoundEndedPayload{
		Outcome: outcome,
		Reason:  reason,
		Scene:   scene,
	})

	if err := s.res.Presenter.LoadScene(scene); err != nil {
		s.res.Logger.Error("scene load failed", "scene", scene, "err", err)
	}
}

// Outcome returns the current outcome
func (s *RoundSystem) Outcome() component.Outcome {
	return s.round.Outcome
}

// Component returns a copy of the round state
func (s *RoundSystem) Component() component.RoundComponent {
	return s.round
}
