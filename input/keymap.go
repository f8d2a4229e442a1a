package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action is a keyboard command
type Action uint8

const (
	ActionNone Action = iota
	ActionReload
	ActionObserve
	ActionGiveUp
	ActionRestart
	ActionQuit
	ActionToggleStatus
)

// actionRegistry maps config action names to actions, "none" unbinds a key
var actionRegistry = map[string]Action{
	"none":          ActionNone,
	"reload":        ActionReload,
	"observe":       ActionObserve,
	"give_up":       ActionGiveUp,
	"restart":       ActionRestart,
	"quit":          ActionQuit,
	"toggle_status": ActionToggleStatus,
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Keymap resolves key events to actions
type Keymap struct {
	runes   map[rune]Action
	special map[tcell.Key]Action
}

// defaultSpecialKeys are always bound, runes come from config
func defaultSpecialKeys() map[tcell.Key]Action {
	return map[tcell.Key]Action{
		tcell.KeyCtrlC:  ActionQuit,
		tcell.KeyEscape: ActionQuit,
		tcell.KeyF2:     ActionToggleStatus,
	}
}

// NewKeymap builds a keymap from config [keys] bindings
// Returns error on unknown action names or invalid key names
func NewKeymap(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{
		runes:   make(map[rune]Action, len(bindings)),
		special: defaultSpecialKeys(),
	}

	for keyStr, actionName := range bindings {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		if action == ActionNone {
			delete(km.runes, r)
			continue
		}
		km.runes[r] = action
	}

	return km, nil
}

// Lookup returns the action bound to ev
func (km *Keymap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return km.runes[ev.Rune()]
	}
	return km.special[ev.Key()]
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	action, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return action, nil
}
