package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quantum-shooter/config"
)

func TestKeymapDefaults(t *testing.T) {
	km, err := NewKeymap(config.Default().Keys)
	if err != nil {
		t.Fatalf("default keys rejected: %v", err)
	}

	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionReload},
		{tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone), ActionObserve},
		{tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), ActionGiveUp},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), ActionToggleStatus},
	}
	for _, tt := range tests {
		if got := km.Lookup(tt.ev); got != tt.want {
			t.Errorf("Lookup(%v) = %d, want %d", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestKeymapAliasesAndUnbind(t *testing.T) {
	km, err := NewKeymap(map[string]string{
		"space": "Reload",
		"q":     "none",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := km.Lookup(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); got != ActionReload {
		t.Errorf("space alias: got %d, want reload", got)
	}
	if got := km.Lookup(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); got != ActionNone {
		t.Errorf("unbound key: got %d, want none", got)
	}
}

func TestKeymapErrors(t *testing.T) {
	if _, err := NewKeymap(map[string]string{"rr": "reload"}); err == nil {
		t.Error("Expected multi-character key to be rejected")
	}
	if _, err := NewKeymap(map[string]string{"r": "teleport"}); err == nil {
		t.Error("Expected unknown action to be rejected")
	}
}
