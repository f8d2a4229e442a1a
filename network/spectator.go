package network

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/status"
	"github.com/lixenwraith/quantum-shooter/vmath"
)

// Spectator mirrors the display and presenter boundaries into feed frames
// Readout calls only update the working frame; Flush decides when to broadcast
type Spectator struct {
	mu       sync.Mutex
	hub      *Hub
	status   *status.Registry
	interval time.Duration

	frame     Frame
	seq       uint64
	dirty     bool
	lastFlush time.Time
}

// NewSpectator creates a mirror broadcasting through hub, reg may be nil
func NewSpectator(hub *Hub, reg *status.Registry, interval time.Duration) *Spectator {
	return &Spectator{
		hub:      hub,
		status:   reg,
		interval: interval,
		frame:    Frame{Type: FrameState, HUD: make(map[string]string, engine.HUDFieldCount)},
	}
}

// SetText implements engine.Display
func (s *Spectator) SetText(field engine.HUDField, text string) {
	s.mu.Lock()
	s.frame.HUD[field.String()] = text
	s.dirty = true
	s.mu.Unlock()
}

// SetVector implements engine.Display
func (s *Spectator) SetVector(degrees int) {
	s.mu.Lock()
	s.frame.Vector = degrees
	s.dirty = true
	s.mu.Unlock()
}

// SetTargetPosition implements engine.Display
func (s *Spectator) SetTargetPosition(pos vmath.Vec2) {
	s.mu.Lock()
	s.frame.Position = &Position{X: pos.X, Y: pos.Y}
	s.dirty = true
	s.mu.Unlock()
}

// LoadScene implements engine.Presenter, the ending is sent without waiting for the interval
func (s *Spectator) LoadScene(scene string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Scene = scene
	s.broadcastLocked(time.Now())
	return nil
}

// BeginRound clears mirrored state and announces round id
func (s *Spectator) BeginRound(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame = Frame{
		Type:  FrameRound,
		Round: id.String(),
		HUD:   make(map[string]string, engine.HUDFieldCount),
	}
	s.broadcastLocked(time.Now())
	s.frame.Type = FrameState
}

// Flush broadcasts pending changes if the interval since the last frame has passed
// Returns true if a frame was sent
func (s *Spectator) Flush(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty || now.Sub(s.lastFlush) < s.interval {
		return false
	}
	s.broadcastLocked(now)
	return true
}

func (s *Spectator) broadcastLocked(now time.Time) {
	s.seq++
	f := s.frame.clone()
	f.Seq = s.seq
	if s.status != nil {
		f.Status = s.status.Snapshot()
	}
	s.hub.Broadcast(f)
	s.dirty = false
	s.lastFlush = now
}
