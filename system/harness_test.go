package system

import (
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/quantum-shooter/component"
	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/event"
	"github.com/lixenwraith/quantum-shooter/status"
	"github.com/lixenwraith/quantum-shooter/vmath"
)

// recordingDisplay keeps every readout it receives
type recordingDisplay struct {
	texts     map[engine.HUDField][]string
	vectors   []int
	positions []vmath.Vec2
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{texts: make(map[engine.HUDField][]string)}
}

func (d *recordingDisplay) SetText(f engine.HUDField, s string) {
	d.texts[f] = append(d.texts[f], s)
}

func (d *recordingDisplay) SetVector(deg int) {
	d.vectors = append(d.vectors, deg)
}

func (d *recordingDisplay) SetTargetPosition(p vmath.Vec2) {
	d.positions = append(d.positions, p)
}

func (d *recordingDisplay) lastText(f engine.HUDField) string {
	texts := d.texts[f]
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func (d *recordingDisplay) lastPosition() vmath.Vec2 {
	return d.positions[len(d.positions)-1]
}

type harness struct {
	cfg     *config.Config
	res     *engine.Resources
	world   *engine.World
	scope   *engine.TimerScope
	display *recordingDisplay

	target  *TargetSystem
	shooter *ShooterSystem
	round   *RoundSystem
}

type harnessOption func(*engine.Resources)

func withPresenter(p engine.Presenter) harnessOption {
	return func(r *engine.Resources) { r.Presenter = p }
}

func withSound(s engine.SoundPlayer) harnessOption {
	return func(r *engine.Resources) { r.Sound = s }
}

// newHarness wires all gallery systems over an 800x400 area
func newHarness(t testing.TB, cfg *config.Config, seed uint64, opts ...harnessOption) *harness {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}

	reg := status.NewRegistry()
	display := newRecordingDisplay()
	res := &engine.Resources{
		Events:    event.NewEventQueue(),
		Timers:    engine.NewScheduler(reg),
		Status:    reg,
		Rand:      rand.New(rand.NewPCG(seed, seed+1)),
		Logger:    log.New(io.Discard),
		Display:   display,
		Presenter: engine.NopPresenter,
		Geometry:  engine.StaticGeometry{X: 800, Y: 400},
		Sound:     engine.NopSound,
	}
	for _, opt := range opts {
		opt(res)
	}

	world := engine.NewWorld(res)
	scope := res.Timers.NewScope()

	h := &harness{cfg: cfg, res: res, world: world, scope: scope, display: display}
	h.target = NewTargetSystem(world, cfg.Target, scope)
	h.shooter = NewShooterSystem(world, cfg.Shooter, scope, h.target)
	h.round = NewRoundSystem(world, cfg.Round, cfg.Scenes, scope, h.target, h.shooter)

	world.AddSystem(h.target)
	world.AddSystem(h.shooter)
	world.AddSystem(h.round)
	world.AddSystem(NewAudioSystem(world))
	return h
}

func (h *harness) start() {
	h.target.Initialize(h.res.Geometry.Extent())
	h.shooter.Initialize()
	h.round.Start()
}

// run ticks the world in fixed steps until total game time has passed
func (h *harness) run(total, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		h.world.Update(step)
	}
}

// aim puts the pointer on the gallery, and on the target if onTarget
func (h *harness) aim(onTarget bool) {
	h.shooter.SetAim(component.ZoneGallery, true)
	h.shooter.SetAim(component.ZoneTarget, onTarget)
}
