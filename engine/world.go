package engine

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/quantum-shooter/event"
	"github.com/lixenwraith/quantum-shooter/status"
)

// Resources are the collaborators and shared services every system receives
// No system looks anything up globally; the composition root fills this once per round
type Resources struct {
	Events *event.EventQueue
	Timers *Scheduler
	Status *status.Registry
	Rand   *rand.Rand
	Logger *log.Logger

	Display   Display
	Presenter Presenter
	Geometry  Geometry
	Sound     SoundPlayer
}

// World runs systems over shared resources on a single logical game thread
type World struct {
	Resources *Resources

	systems []System
	router  *event.Router
	frame   atomic.Int64 // Read by Push from host goroutines

	statTicks   *atomic.Int64
	statEvents  *atomic.Int64
	statDropped *atomic.Int64
}

// NewWorld creates a world over res, the scheduler is added as a system
func NewWorld(res *Resources) *World {
	w := &World{
		Resources:   res,
		router:      event.NewRouter(res.Events),
		statTicks:   res.Status.Ints.Get("engine.ticks"),
		statEvents:  res.Status.Ints.Get("engine.events"),
		statDropped: res.Status.Ints.Get("engine.dropped"),
	}
	w.AddSystem(res.Timers)
	return w
}

// AddSystem adds a system and rebuilds routing so handlers run in priority order
// Systems with equal priority keep insertion order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})

	w.router = event.NewRouter(w.Resources.Events)
	for _, sys := range w.systems {
		w.router.Register(sys)
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	return slices.Clone(w.systems)
}

// Update runs one tick: dispatch pending events, then every system in priority order
func (w *World) Update(dt time.Duration) {
	w.statTicks.Store(w.frame.Add(1))

	n := w.router.DispatchAll()
	w.statEvents.Add(int64(n))
	w.statDropped.Store(int64(w.Resources.Events.Dropped()))

	for _, s := range w.systems {
		s.Update(dt)
	}
}

// Frame returns the number of completed or running ticks
func (w *World) Frame() int64 {
	return w.frame.Load()
}

// Now returns the game clock
func (w *World) Now() time.Duration {
	return w.Resources.Timers.Now()
}

// Push queues an event stamped with the current frame
func (w *World) Push(t event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.frame.Load()})
}
