package engine

import (
	"cmp"
	"sync/atomic"
	"time"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/lixenwraith/quantum-shooter/event"
	"github.com/lixenwraith/quantum-shooter/parameter"
	"github.com/lixenwraith/quantum-shooter/status"
)

// TimerID identifies a pending one-shot timer, zero is never issued
type TimerID uint64

type timerEntry struct {
	id  TimerID
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler is the game clock and its one-shot timers
// Time only moves through Advance, so timers follow game time rather than wall time
// Canceled entries stay in the heap and are skipped when they surface
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue *priorityqueue.Queue
	live  map[TimerID]*timerEntry

	statPending *atomic.Int64
	statFired   *atomic.Int64
}

// NewScheduler creates a scheduler at game time zero
func NewScheduler(reg *status.Registry) *Scheduler {
	return &Scheduler{
		queue: priorityqueue.NewWith(func(a, b any) int {
			ea, eb := a.(*timerEntry), b.(*timerEntry)
			if c := cmp.Compare(ea.due, eb.due); c != 0 {
				return c
			}
			return cmp.Compare(ea.seq, eb.seq)
		}),
		live:        make(map[TimerID]*timerEntry),
		statPending: reg.Ints.Get("timers.pending"),
		statFired:   reg.Ints.Get("timers.fired"),
	}
}

// After schedules fn to run once when the game clock reaches Now()+d
// Negative d is treated as zero; timers due at the same instant run in scheduling order
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.seq++
	e := &timerEntry{
		id:  TimerID(s.seq),
		due: s.now + d,
		seq: s.seq,
		fn:  fn,
	}
	s.queue.Enqueue(e)
	s.live[e.id] = e
	s.statPending.Store(int64(len(s.live)))
	return e.id
}

// Cancel removes a pending timer, returns false if it already fired or was canceled
func (s *Scheduler) Cancel(id TimerID) bool {
	if _, ok := s.live[id]; !ok {
		return false
	}
	delete(s.live, id)
	s.statPending.Store(int64(len(s.live)))
	return true
}

// Pending returns the number of timers that will still fire
func (s *Scheduler) Pending() int {
	return len(s.live)
}

// Now returns the game clock
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by dt and fires every timer that comes due, in due order
// The clock is set to each timer's due time before its callback runs, so a callback that
// reschedules itself keeps its period without drift; timers it schedules inside the window fire too
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + max(dt, 0)

	for !s.queue.Empty() {
		head, _ := s.queue.Peek()
		e := head.(*timerEntry)
		if e.due > target {
			break
		}
		s.queue.Dequeue()

		if _, ok := s.live[e.id]; !ok {
			continue
		}
		delete(s.live, e.id)
		s.statPending.Store(int64(len(s.live)))

		s.now = e.due
		s.statFired.Add(1)
		e.fn()
	}

	s.now = target
	s.compact()
}

// compact drops canceled entries once they dominate the heap
func (s *Scheduler) compact() {
	if s.queue.Size() <= 64 || s.queue.Size() < 4*len(s.live) {
		return
	}
	s.queue.Clear()
	for _, e := range s.live {
		s.queue.Enqueue(e)
	}
}

// NewScope creates a timer group that can be released at once
func (s *Scheduler) NewScope() *TimerScope {
	return &TimerScope{
		s:   s,
		ids: make(map[TimerID]struct{}),
	}
}

// System integration: the scheduler runs as the timers system so callbacks fire
// after motion and before the round check of the same tick

func (s *Scheduler) Name() string {
	return "timers"
}

func (s *Scheduler) Priority() int {
	return parameter.PriorityTimers
}

func (s *Scheduler) EventTypes() []event.EventType {
	return nil
}

func (s *Scheduler) HandleEvent(event.GameEvent) {}

func (s *Scheduler) Update(dt time.Duration) {
	s.Advance(dt)
}

// TimerScope owns the timers of one round
// After Release nothing it scheduled will fire and further After calls are ignored
type TimerScope struct {
	s        *Scheduler
	ids      map[TimerID]struct{}
	released bool
}

// After schedules fn within the scope, returns zero if the scope is released
func (sc *TimerScope) After(d time.Duration, fn func()) TimerID {
	if sc.released {
		return 0
	}
	var id TimerID
	id = sc.s.After(d, func() {
		delete(sc.ids, id)
		fn()
	})
	sc.ids[id] = struct{}{}
	return id
}

// Cancel removes a pending timer owned by the scope
func (sc *TimerScope) Cancel(id TimerID) bool {
	if _, ok := sc.ids[id]; !ok {
		return false
	}
	delete(sc.ids, id)
	return sc.s.Cancel(id)
}

// Release cancels every pending timer of the scope, safe to call more than once
func (sc *TimerScope) Release() {
	if sc.released {
		return
	}
	sc.released = true
	for id := range sc.ids {
		sc.s.Cancel(id)
	}
	clear(sc.ids)
}

func (sc *TimerScope) Released() bool {
	return sc.released
}

// Pending returns the number of scope timers that will still fire
func (sc *TimerScope) Pending() int {
	return len(sc.ids)
}
