package render

import (
	"sync"

	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/vmath"
)

// HUD stores the latest readouts pushed by the round
// Writes come from the game loop, reads from the renderer and spectator feed
type HUD struct {
	mu   sync.RWMutex
	view HUDView
}

// HUDView is a copy of everything the HUD shows
type HUDView struct {
	Texts    [engine.HUDFieldCount]string
	Vector   int
	Position vmath.Vec2
	Placed   bool // Position was pushed at least once
}

func NewHUD() *HUD {
	return &HUD{}
}

// SetText implements engine.Display
func (h *HUD) SetText(field engine.HUDField, text string) {
	if int(field) >= engine.HUDFieldCount {
		return
	}
	h.mu.Lock()
	h.view.Texts[field] = text
	h.mu.Unlock()
}

// SetVector implements engine.Display
func (h *HUD) SetVector(degrees int) {
	h.mu.Lock()
	h.view.Vector = degrees
	h.mu.Unlock()
}

// SetTargetPosition implements engine.Display
func (h *HUD) SetTargetPosition(pos vmath.Vec2) {
	h.mu.Lock()
	h.view.Position = pos
	h.view.Placed = true
	h.mu.Unlock()
}

// View returns a copy of the current readouts
func (h *HUD) View() HUDView {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.view
}

// Reset clears all readouts for a new round
func (h *HUD) Reset() {
	h.mu.Lock()
	h.view = HUDView{}
	h.mu.Unlock()
}
