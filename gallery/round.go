// Package gallery composes the target, shooter and round systems into one playable round
// All input methods only queue events and are safe to call from any goroutine; Tick, Start,
// Snapshot and Close belong to the game loop goroutine
package gallery

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/quantum-shooter/component"
	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/event"
	"github.com/lixenwraith/quantum-shooter/status"
	"github.com/lixenwraith/quantum-shooter/system"
)

// Collaborators are the host-provided boundaries of a round
// Everything except Geometry may be nil and falls back to a silent default
type Collaborators struct {
	Display   engine.Display
	Presenter engine.Presenter
	Geometry  engine.Geometry
	Sound     engine.SoundPlayer
	Logger    *log.Logger
	Status    *status.Registry
	Rand      *rand.Rand
}

// Round is one play-through of the gallery
type Round struct {
	cfg   *config.Config
	world *engine.World
	scope *engine.TimerScope

	target  *system.TargetSystem
	shooter *system.ShooterSystem
	round   *system.RoundSystem

	started bool
	closed  bool
}

// NewRound wires a round from cfg and the host collaborators, nil cfg means config.Default
func NewRound(cfg *config.Config, c Collaborators) (*Round, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	if c.Geometry == nil {
		return nil, fmt.Errorf("new round: %w", engine.ErrNoGeometry)
	}

	if c.Display == nil {
		c.Display = engine.NopDisplay
	}
	if c.Presenter == nil {
		c.Presenter = engine.NopPresenter
	}
	if c.Sound == nil {
		c.Sound = engine.NopSound
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Status == nil {
		c.Status = status.NewRegistry()
	}
	if c.Rand == nil {
		c.Rand = NewRand(cfg.Round.Seed)
	}

	res := &engine.Resources{
		Events:    event.NewEventQueue(),
		Timers:    engine.NewScheduler(c.Status),
		Status:    c.Status,
		Rand:      c.Rand,
		Logger:    c.Logger,
		Display:   c.Display,
		Presenter: c.Presenter,
		Geometry:  c.Geometry,
		Sound:     c.Sound,
	}
	world := engine.NewWorld(res)
	scope := res.Timers.NewScope()

	r := &Round{
		cfg:   cfg,
		world: world,
		scope: scope,
	}
	r.target = system.NewTargetSystem(world, cfg.Target, scope)
	r.shooter = system.NewShooterSystem(world, cfg.Shooter, scope, r.target)
	r.round = system.NewRoundSystem(world, cfg.Round, cfg.Scenes, scope, r.target, r.shooter)

	world.AddSystem(r.target)
	world.AddSystem(r.shooter)
	world.AddSystem(r.round)
	world.AddSystem(system.NewAudioSystem(world))

	return r, nil
}

// NewRand returns a PCG source, seed zero draws a fresh seed
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Start initializes target and shooter and begins the countdown
// Later calls and calls after Close are ignored
func (r *Round) Start() {
	if r.started || r.closed {
		return
	}
	r.started = true

	r.target.Initialize(r.world.Resources.Geometry.Extent())
	r.shooter.Initialize()
	r.round.Start()
}

// Tick advances the round by dt of game time, it does nothing before Start
func (r *Round) Tick(dt time.Duration) {
	if !r.started {
		return
	}
	r.world.Update(dt)
}

// PointerDown is a primary button press, it fires if the shooter allows
func (r *Round) PointerDown() {
	r.world.Push(event.EventPointerDown, nil)
}

func (r *Round) PointerEnter(zone component.Zone) {
	r.world.Push(event.EventPointerEnter, &event.ZonePayload{Zone: zone})
}

func (r *Round) PointerExit(zone component.Zone) {
	r.world.Push(event.EventPointerExit, &event.ZonePayload{Zone: zone})
}

func (r *Round) Reload() {
	r.world.Push(event.EventReloadRequest, nil)
}

func (r *Round) Observe() {
	r.world.Push(event.EventObserveRequest, nil)
}

func (r *Round) GiveUp() {
	r.world.Push(event.EventGiveUpRequest, nil)
}

// Resize makes the target re-query the play-area geometry on the next tick
func (r *Round) Resize() {
	r.world.Push(event.EventResize, nil)
}

// Snapshot is a read-only copy of the round state
type Snapshot struct {
	Frame   int64
	Now     time.Duration
	Target  component.TargetComponent
	Shooter component.ShooterComponent
	Round   component.RoundComponent
}

// Snapshot returns the true state, including a target position the display may be hiding
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		Frame:   r.world.Frame(),
		Now:     r.world.Now(),
		Target:  r.target.Component(),
		Shooter: r.shooter.Component(),
		Round:   r.round.Component(),
	}
}

func (r *Round) Outcome() component.Outcome {
	return r.round.Outcome()
}

func (r *Round) ID() uuid.UUID {
	return r.round.Component().ID
}

// Close cancels every pending timer of the round without deciding it
func (r *Round) Close() {
	r.closed = true
	r.scope.Release()
	r.target.Stop()
	r.shooter.Stop()
}
