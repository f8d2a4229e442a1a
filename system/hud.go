package system

import (
	"strconv"

	"github.com/lixenwraith/quantum-shooter/engine"
)

// Readout formats, kept identical to what players of the gallery know
func shotsText(n int) string   { return "Shots: " + strconv.Itoa(n) }
func reloadsText(n int) string { return "Reloads: " + strconv.Itoa(n) }
func timeText(n int) string    { return "Time: " + strconv.Itoa(n) }
func healthText(n int) string  { return "HEALTH: " + strconv.Itoa(n) }

// speedText prints the shortest decimal form, 150 rather than 150.00
func speedText(v float64) string {
	return "Speed: " + strconv.FormatFloat(v, 'f', -1, 64)
}

// hudCache suppresses repeated writes of an unchanged readout
type hudCache struct {
	display engine.Display
	last    [engine.HUDFieldCount]string
	set     [engine.HUDFieldCount]bool
}

func newHUDCache(d engine.Display) *hudCache {
	return &hudCache{display: d}
}

func (h *hudCache) text(f engine.HUDField, s string) {
	if h.set[f] && h.last[f] == s {
		return
	}
	h.last[f] = s
	h.set[f] = true
	h.display.SetText(f, s)
}
