package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quantum-shooter/gallery"
	"github.com/lixenwraith/quantum-shooter/render"
)

// RoundInput is the part of a round the controller drives, satisfied by *gallery.Round
type RoundInput interface {
	PointerSink
	Reload()
	Observe()
	GiveUp()
	Resize()
}

// Command is a host-level request produced by input
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
	CommandToggleStatus
)

// Controller translates tcell events into round input and host commands
type Controller struct {
	keys    *Keymap
	field   *render.Playfield
	pointer *PointerTracker
}

func NewController(keys *Keymap, field *render.Playfield) *Controller {
	return &Controller{
		keys:    keys,
		field:   field,
		pointer: NewPointerTracker(field),
	}
}

// Pointer exposes the tracker for round changes
func (c *Controller) Pointer() *PointerTracker {
	return c.pointer
}

// Handle routes one terminal event, snap is the round state the event applies to
func (c *Controller) Handle(ev tcell.Event, snap gallery.Snapshot, round RoundInput) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev, round)

	case *tcell.EventMouse:
		c.pointer.HandleMouse(ev, snap, round)

	case *tcell.EventResize:
		w, h := ev.Size()
		c.field.Resize(w, h)
		round.Resize()

	case *tcell.EventFocus:
		if !ev.Focused {
			c.pointer.Leave(round)
		}
	}
	return CommandNone
}

func (c *Controller) handleKey(ev *tcell.EventKey, round RoundInput) Command {
	switch c.keys.Lookup(ev) {
	case ActionReload:
		round.Reload()
	case ActionObserve:
		round.Observe()
	case ActionGiveUp:
		round.GiveUp()
	case ActionRestart:
		return CommandRestart
	case ActionQuit:
		return CommandQuit
	case ActionToggleStatus:
		return CommandToggleStatus
	}
	return CommandNone
}
