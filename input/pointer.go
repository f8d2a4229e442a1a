package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quantum-shooter/component"
	"github.com/lixenwraith/quantum-shooter/gallery"
	"github.com/lixenwraith/quantum-shooter/render"
)

// PointerSink receives pointer transitions, satisfied by *gallery.Round
type PointerSink interface {
	PointerDown()
	PointerEnter(zone component.Zone)
	PointerExit(zone component.Zone)
}

// PointerTracker turns raw mouse reports into zone enter/exit transitions and press edges
// Hit testing uses the true target position, not the one the HUD may be showing
type PointerTracker struct {
	field *render.Playfield

	inGallery bool
	onTarget  bool
	pressed   bool
}

func NewPointerTracker(field *render.Playfield) *PointerTracker {
	return &PointerTracker{field: field}
}

// HandleMouse updates zones for the pointer position then reports a primary press edge
func (p *PointerTracker) HandleMouse(ev *tcell.EventMouse, snap gallery.Snapshot, sink PointerSink) {
	x, y := ev.Position()

	_, inGallery := p.field.ToUnits(x, y)
	onTarget := inGallery && snap.Target.Alive() &&
		p.field.HitsFootprint(x, y, snap.Target.Position, snap.Target.Extent)
	p.moveTo(inGallery, onTarget, sink)

	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && !p.pressed {
		sink.PointerDown()
	}
	p.pressed = pressed
}

// Leave exits every zone, used when the pointer leaves the terminal or the round changes
func (p *PointerTracker) Leave(sink PointerSink) {
	p.moveTo(false, false, sink)
	p.pressed = false
}

// Reset forgets zone state without emitting transitions
func (p *PointerTracker) Reset() {
	p.inGallery = false
	p.onTarget = false
	p.pressed = false
}

// moveTo emits transitions, entering outer zones first and leaving inner zones first
func (p *PointerTracker) moveTo(inGallery, onTarget bool, sink PointerSink) {
	if p.onTarget && !onTarget {
		sink.PointerExit(component.ZoneTarget)
	}
	if p.inGallery && !inGallery {
		sink.PointerExit(component.ZoneGallery)
	}
	if !p.inGallery && inGallery {
		sink.PointerEnter(component.ZoneGallery)
	}
	if !p.onTarget && onTarget {
		sink.PointerEnter(component.ZoneTarget)
	}
	p.inGallery = inGallery
	p.onTarget = onTarget
}

// InGallery reports the tracked gallery zone state
func (p *PointerTracker) InGallery() bool { return p.inGallery }

// OnTarget reports the tracked target zone state
func (p *PointerTracker) OnTarget() bool { return p.onTarget }
