package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/quantum-shooter/component"
	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/event"
	"github.com/lixenwraith/quantum-shooter/parameter"
	"github.com/lixenwraith/quantum-shooter/status"
)

// ShooterSystem gates firing on ammunition, cooldown, reload and aim
// Rejected requests leave the state untouched and emit nothing
type ShooterSystem struct {
	world  *engine.World
	res    *engine.Resources
	cfg    config.ShooterConfig
	scope  *engine.TimerScope
	hud    *hudCache
	target *TargetSystem

	shooter component.ShooterComponent
	stopped bool

	// Telemetry
	statShots   *atomic.Int64
	statReloads *atomic.Int64
	statFired   *atomic.Int64
	statHits    *atomic.Int64
	statState   *status.AtomicString
}

// NewShooterSystem creates the shooter, damage goes to target
func NewShooterSystem(world *engine.World, cfg config.ShooterConfig, scope *engine.TimerScope, target *TargetSystem) *ShooterSystem {
	reg := world.Resources.Status
	return &ShooterSystem{
		world:       world,
		res:         world.Resources,
		cfg:         cfg,
		scope:       scope,
		hud:         newHUDCache(world.Resources.Display),
		target:      target,
		statShots:   reg.Ints.Get("shooter.shots"),
		statReloads: reg.Ints.Get("shooter.reloads"),
		statFired:   reg.Ints.Get("shooter.fired"),
		statHits:    reg.Ints.Get("shooter.hits"),
		statState:   reg.Strings.Get("shooter.state"),
	}
}

// Name returns system's name
func (s *ShooterSystem) Name() string {
	return "shooter"
}

func (s *ShooterSystem) Priority() int {
	return parameter.PriorityShooter
}

func (s *ShooterSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointerDown,
		event.EventPointerEnter,
		event.EventPointerExit,
		event.EventReloadRequest,
	}
}

func (s *ShooterSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPointerDown:
		s.Fire()
	case event.EventReloadRequest:
		s.Reload()
	case event.EventPointerEnter:
		if p, ok := ev.Payload.(*event.ZonePayload); ok {
			s.SetAim(p.Zone, true)
		}
	case event.EventPointerExit:
		if p, ok := ev.Payload.(*event.ZonePayload); ok {
			s.SetAim(p.Zone, false)
		}
	}
}

// Initialize fills the magazine and reload stock
// Aim survives so a pointer already resting on the gallery can fire at once
func (s *ShooterSystem) Initialize() {
	s.shooter.Shots = s.cfg.MaxShots
	s.shooter.Reloads = s.cfg.MaxReloads
	s.shooter.CanShoot = true
	s.shooter.Reloading = false
	s.stopped = false

	s.hud.text(engine.FieldShots, shotsText(s.shooter.Shots))
	s.hud.text(engine.FieldReloads, reloadsText(s.shooter.Reloads))
	s.publish()
}

func (s *ShooterSystem) Update(time.Duration) {}

// Fire shoots once if the gate is open
// A shot inside the target footprint damages it; the cooldown is armed only while shots remain,
// an empty magazine waits for a reload instead
func (s *ShooterSystem) Fire() component.ShotResult {
	sh := &s.shooter
	if s.stopped || !sh.CanFire() {
		return component.ShotRejected
	}

	sh.Shots--
	sh.CanShoot = false
	s.statFired.Add(1)

	result := component.ShotMissed
	if sh.AimedAtTarget {
		result = component.ShotHit
		s.statHits.Add(1)
		s.target.Damage()
	}

	s.hud.text(engine.FieldShots, shotsText(sh.Shots))
	if sh.Shots > 0 {
		s.scope.After(s.cfg.ShotDelay, s.readyNextShot)
	}
	s.publish()

	s.res.Logger.Debug("shot", "result", result, "shots", sh.Shots)
	s.world.Push(event.EventShotFired, &event.ShotPayload{Result: result, Shots: sh.Shots})
	return result
}

func (s *ShooterSystem) readyNextShot() {
	s.shooter.CanShoot = true
	s.publish()
}

// Reload starts a reload if one is available and none is running, returns false otherwise
func (s *ShooterSystem) Reload() bool {
	sh := &s.shooter
	if s.stopped || sh.Reloading || sh.Reloads <= 0 {
		return false
	}

	sh.Reloads--
	sh.Reloading = true
	s.hud.text(engine.FieldReloads, reloadsText(sh.Reloads))
	s.scope.After(s.cfg.ReloadTime, s.reloadComplete)
	s.publish()

	s.res.Logger.Debug("reload started", "reloads", sh.Reloads)
	s.world.Push(event.EventReloadStarted, nil)
	return true
}

// reloadComplete refills the magazine and re-arms the cooldown gate
func (s *ShooterSystem) reloadComplete() {
	sh := &s.shooter
	sh.Shots = s.cfg.MaxShots
	sh.Reloading = false
	sh.CanShoot = true
	s.hud.text(engine.FieldShots, shotsText(sh.Shots))
	s.publish()

	s.res.Logger.Debug("reload complete", "shots", sh.Shots)
	s.world.Push(event.EventReloadComplete, nil)
}

// SetAim records the pointer entering or leaving a zone
// Leaving the gallery also leaves the target, which lies inside it
func (s *ShooterSystem) SetAim(zone component.Zone, inside bool) {
	switch zone {
	case component.ZoneGallery:
		s.shooter.AimedAtGallery = inside
		if !inside {
			s.shooter.AimedAtTarget = false
		}
	case component.ZoneTarget:
		s.shooter.AimedAtTarget = inside
	}
}

// IsOutOfAmmo reports an empty magazine with no reloads left
func (s *ShooterSystem) IsOutOfAmmo() bool {
	return s.shooter.OutOfAmmo()
}

// Reloading reports a reload in progress
func (s *ShooterSystem) Reloading() bool {
	return s.shooter.Reloading
}

// Stop rejects every further request, used at round end
func (s *ShooterSystem) Stop() {
	s.stopped = true
}

// Component returns a copy of the shooter state
func (s *ShooterSystem) Component() component.ShooterComponent {
	return s.shooter
}

func (s *ShooterSystem) publish() {
	s.statShots.Store(int64(s.shooter.Shots))
	s.statReloads.Store(int64(s.shooter.Reloads))
	s.statState.Store(s.shooter.State().String())
}
