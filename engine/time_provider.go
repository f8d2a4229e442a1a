package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts the wall clock for the host loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads time.Now, which carries a monotonic reading
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock turns wall-clock readings into per-tick game deltas
// A stall longer than maxDelta is cut to maxDelta so the target cannot tunnel through a wall
type FrameClock struct {
	tp       TimeProvider
	last     time.Time
	maxDelta time.Duration
}

func NewFrameClock(tp TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{tp: tp, last: tp.Now(), maxDelta: maxDelta}
}

// Tick returns the time elapsed since the previous Tick, clamped to [0, maxDelta]
func (c *FrameClock) Tick() time.Duration {
	now := c.tp.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return min(dt, c.maxDelta)
}

// Reset discards elapsed time, used when a new round starts
func (c *FrameClock) Reset() {
	c.last = c.tp.Now()
}
