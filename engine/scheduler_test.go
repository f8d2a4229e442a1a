package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/quantum-shooter/status"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler(status.NewRegistry())

	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(200*time.Millisecond, func() { order = append(order, "b1") })
	s.After(200*time.Millisecond, func() { order = append(order, "b2") })

	s.Advance(250 * time.Millisecond)
	if got := len(order); got != 3 {
		t.Fatalf("Expected 3 fired, got %d: %v", got, order)
	}
	s.Advance(50 * time.Millisecond)

	want := []string{"a", "b1", "b2", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], order[i])
		}
	}
	if s.Now() != 300*time.Millisecond {
		t.Errorf("Expected clock at 300ms, got %v", s.Now())
	}
}

func TestSchedulerClockAtDueTimeDuringCallback(t *testing.T) {
	s := NewScheduler(status.NewRegistry())

	var ticks []time.Duration
	var tick func()
	tick = func() {
		ticks = append(ticks, s.Now())
		if len(ticks) < 3 {
			s.After(time.Second, tick)
		}
	}
	s.After(time.Second, tick)

	// One oversized step must still fire the chain at exact one-second marks
	s.Advance(5 * time.Second)

	want := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}
	if len(ticks) != len(want) {
		t.Fatalf("Expected %d ticks, got %v", len(want), ticks)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("Tick %d: expected %v, got %v", i, want[i], ticks[i])
		}
	}
	if s.Now() != 5*time.Second {
		t.Errorf("Expected clock at 5s, got %v", s.Now())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(status.NewRegistry())

	fired := false
	id := s.After(time.Second, func() { fired = true })
	if s.Pending() != 1 {
		t.Fatalf("Expected 1 pending, got %d", s.Pending())
	}
	if !s.Cancel(id) {
		t.Fatal("Expected first cancel to succeed")
	}
	if s.Cancel(id) {
		t.Error("Expected second cancel to fail")
	}

	s.Advance(2 * time.Second)
	if fired {
		t.Error("Canceled timer fired")
	}
	if s.Pending() != 0 {
		t.Errorf("Expected 0 pending, got %d", s.Pending())
	}
}

func TestTimerScopeRelease(t *testing.T) {
	s := NewScheduler(status.NewRegistry())
	scope := s.NewScope()

	var fired []string
	scope.After(time.Second, func() { fired = append(fired, "scoped") })
	s.After(time.Second, func() { fired = append(fired, "global") })
	if scope.Pending() != 1 {
		t.Fatalf("Expected 1 scoped timer, got %d", scope.Pending())
	}

	scope.Release()
	if !scope.Released() {
		t.Fatal("Expected scope released")
	}
	if id := scope.After(time.Millisecond, func() { fired = append(fired, "late") }); id != 0 {
		t.Errorf("Expected zero id after release, got %d", id)
	}

	s.Advance(2 * time.Second)
	if len(fired) != 1 || fired[0] != "global" {
		t.Errorf("Expected only the global timer, got %v", fired)
	}
}

func TestTimerScopeReleaseFromCallback(t *testing.T) {
	s := NewScheduler(status.NewRegistry())
	scope := s.NewScope()

	other := false
	scope.After(time.Second, func() { scope.Release() })
	scope.After(time.Second, func() { other = true })

	s.Advance(time.Second)
	if other {
		t.Error("Timer due in the same instant fired after its scope was released")
	}
	if s.Pending() != 0 {
		t.Errorf("Expected 0 pending, got %d", s.Pending())
	}
}

func TestSchedulerCompactsCanceledEntries(t *testing.T) {
	s := NewScheduler(status.NewRegistry())

	keep := s.After(time.Hour, func() {})
	for i := 0; i < 200; i++ {
		s.Cancel(s.After(time.Minute, func() {}))
	}
	s.Advance(time.Millisecond)

	if s.queue.Size() != 1 {
		t.Errorf("Expected heap compacted to 1, got %d", s.queue.Size())
	}
	if !s.Cancel(keep) {
		t.Error("Expected live timer to survive compaction")
	}
}
