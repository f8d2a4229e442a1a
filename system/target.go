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
	"github.com/lixenwraith/quantum-shooter/vmath"
)

// TargetSystem moves the target inside the play area and owns its health and observation state
type TargetSystem struct {
	world *engine.World
	res   *engine.Resources
	cfg   config.TargetConfig
	scope *engine.TimerScope
	hud   *hudCache

	target component.TargetComponent

	changeTimer  engine.TimerID
	observeTimer engine.TimerID
	stopped      bool

	// Telemetry
	statHP       *atomic.Int64
	statSpeed    *status.AtomicFloat
	statVector   *atomic.Int64
	statObserved *atomic.Bool
	statChanges  *atomic.Int64
	statBounces  *atomic.Int64
}

// NewTargetSystem creates the target system, Initialize must run before the first tick
func NewTargetSystem(world *engine.World, cfg config.TargetConfig, scope *engine.TimerScope) *TargetSystem {
	reg := world.Resources.Status
	return &TargetSystem{
		world:        world,
		res:          world.Resources,
		cfg:          cfg,
		scope:        scope,
		hud:          newHUDCache(world.Resources.Display),
		statHP:       reg.Ints.Get("target.hp"),
		statSpeed:    reg.Floats.Get("target.speed"),
		statVector:   reg.Ints.Get("target.vector"),
		statObserved: reg.Bools.Get("target.observed"),
		statChanges:  reg.Ints.Get("target.changes"),
		statBounces:  reg.Ints.Get("target.bounces"),
	}
}

// Name returns system's name
func (s *TargetSystem) Name() string {
	return "target"
}

func (s *TargetSystem) Priority() int {
	return parameter.PriorityTarget
}

func (s *TargetSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventObserveRequest,
		event.EventResize,
	}
}

func (s *TargetSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventObserveRequest:
		s.Observe()
	case event.EventResize:
		s.SetArea(s.res.Geometry.Extent())
	}
}

// Initialize places a full-health target at the area center and starts the movement cycle
func (s *TargetSystem) Initialize(area vmath.Vec2) {
	s.target = component.TargetComponent{
		Extent:    vmath.Vec2{X: s.cfg.Width / 2, Y: s.cfg.Height / 2},
		Area:      area,
		HitPoints: s.cfg.MaxHitPoints,
	}
	s.stopped = false
	s.statHP.Store(int64(s.target.HitPoints))
	s.statObserved.Store(false)
	s.hud.text(engine.FieldHealth, healthText(s.target.HitPoints))
	s.res.Display.SetTargetPosition(s.target.Position)

	s.changeMovement()
}

// Update integrates motion and keeps the footprint inside the area
func (s *TargetSystem) Update(dt time.Duration) {
	if s.inert() {
		return
	}

	t := &s.target
	lim := t.Limits()
	before := t.Velocity
	sec := dt.Seconds()

	bounceAxis(&t.Position.X, &t.Velocity.X, lim.X, sec)
	bounceAxis(&t.Position.Y, &t.Velocity.Y, lim.Y, sec)

	if signChanged(before.X, t.Velocity.X) || signChanged(before.Y, t.Velocity.Y) {
		s.statBounces.Add(1)
		s.pushReadouts()
	}
	if !t.Observed {
		s.res.Display.SetTargetPosition(t.Position)
	}
}

// bounceAxis moves one axis by vel*dt within [-lim, lim]
// Velocity pointing out of a touched wall is turned inward first; an overshoot is clamped and
// turned inward after the step. Only the sign ever changes. An axis with no room holds at center
func bounceAxis(pos, vel *float64, lim, dt float64) {
	if lim <= 0 {
		*pos = 0
		return
	}

	if (*pos >= lim && *vel > 0) || (*pos <= -lim && *vel < 0) {
		*vel = -*vel
	}

	*pos += *vel * dt

	switch {
	case *pos > lim:
		*pos = lim
		if *vel > 0 {
			*vel = -*vel
		}
	case *pos < -lim:
		*pos = -lim
		if *vel < 0 {
			*vel = -*vel
		}
	}
}

func signChanged(a, b float64) bool {
	return (a < 0) != (b < 0)
}

// changeMovement assigns a fresh random velocity and reschedules itself
func (s *TargetSystem) changeMovement() {
	if s.inert() {
		return
	}

	s.target.Velocity = vmath.Vec2{X: s.randomSpeed(), Y: s.randomSpeed()}
	s.statChanges.Add(1)
	s.pushReadouts()

	s.changeTimer = s.scope.After(s.randomDelay(), s.changeMovement)
}

// randomSpeed returns a magnitude in [MinSpeed, MaxSpeed] with a coin-toss sign
func (s *TargetSystem) randomSpeed() float64 {
	r := s.res.Rand
	v := s.cfg.MinSpeed + r.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed)
	if r.IntN(2) == 0 {
		return -v
	}
	return v
}

// randomDelay returns a delay in [MinChangeDelay, MaxChangeDelay]
func (s *TargetSystem) randomDelay() time.Duration {
	span := int64(s.cfg.MaxChangeDelay - s.cfg.MinChangeDelay)
	return s.cfg.MinChangeDelay + time.Duration(s.res.Rand.Int64N(span+1))
}

// pushReadouts sends speed and heading unless the display is frozen
func (s *TargetSystem) pushReadouts() {
	speed := s.Speed()
	deg := s.VectorDegrees()
	s.statSpeed.Store(speed)
	s.statVector.Store(int64(deg))

	if s.target.Observed {
		return
	}
	s.hud.text(engine.FieldSpeed, speedText(speed))
	s.res.Display.SetVector(deg)
}

// Speed returns the true speed rounded to two decimals
func (s *TargetSystem) Speed() float64 {
	return vmath.Speed(s.target.Velocity)
}

// VectorDegrees returns the true heading in whole degrees, range (-180, 180]
func (s *TargetSystem) VectorDegrees() int {
	return vmath.Degrees(s.target.Velocity)
}

// Observe freezes the displayed position, speed and heading for ObservationTime
// Motion continues underneath. A repeated request while frozen is ignored
func (s *TargetSystem) Observe() {
	t := &s.target
	if s.inert() || t.Observed {
		return
	}

	t.Observed = true
	t.ObservedPosition = t.Position
	t.ObservedSpeed = s.Speed()
	t.ObservedVector = s.VectorDegrees()
	t.ObservedUntil = s.world.Now() + s.cfg.ObservationTime
	s.statObserved.Store(true)

	s.hud.text(engine.FieldSpeed, speedText(t.ObservedSpeed))
	s.res.Display.SetVector(t.ObservedVector)
	s.res.Display.SetTargetPosition(t.ObservedPosition)

	s.observeTimer = s.scope.After(s.cfg.ObservationTime, s.endObservation)
	s.world.Push(event.EventObservationStarted, nil)
}

// endObservation reverts the display to the current true values
func (s *TargetSystem) endObservation() {
	t := &s.target
	t.Observed = false
	s.statObserved.Store(false)

	s.pushReadouts()
	s.res.Display.SetTargetPosition(t.Position)
	s.world.Push(event.EventObservationEnded, nil)
}

// Damage removes one hit point, floored at zero
// Reaching zero stops the movement cycle and emits EventTargetDestroyed once
func (s *TargetSystem) Damage() {
	t := &s.target
	if t.HitPoints <= 0 {
		return
	}

	t.HitPoints--
	s.statHP.Store(int64(t.HitPoints))
	s.hud.text(engine.FieldHealth, healthText(t.HitPoints))

	if t.HitPoints == 0 {
		s.scope.Cancel(s.changeTimer)
		s.res.Logger.Info("target destroyed", "at", s.world.Now())
		s.world.Push(event.EventTargetDestroyed, nil)
	}
}

// SetArea applies a new play-area size and pulls the target back inside it
func (s *TargetSystem) SetArea(area vmath.Vec2) {
	t := &s.target
	if area == t.Area {
		return
	}
	t.Area = area
	lim := t.Limits()
	t.Position.X = vmath.Clamp(t.Position.X, -lim.X, lim.X)
	t.Position.Y = vmath.Clamp(t.Position.Y, -lim.Y, lim.Y)
	s.res.Logger.Debug("play area resized", "width", area.X, "height", area.Y)

	if !t.Observed {
		s.res.Display.SetTargetPosition(t.Position)
	}
}

// Stop freezes the target for good, used at round end
func (s *TargetSystem) Stop() {
	s.stopped = true
}

// Alive reports whether the target has hit points left
func (s *TargetSystem) Alive() bool {
	return s.target.Alive()
}

// HitPoints returns the remaining hit points
func (s *TargetSystem) HitPoints() int {
	return s.target.HitPoints
}

// Component returns a copy of the target state
func (s *TargetSystem) Component() component.TargetComponent {
	return s.target
}

func (s *TargetSystem) inert() bool {
	return s.stopped || !s.target.Alive()
}
