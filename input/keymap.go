package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write as a bare character
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// keyNames is tcell.KeyNames reversed and lowercased
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Keymap resolves terminal key events to actions
type Keymap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

func newKeymap() *Keymap {
	return &Keymap{
		keys:  make(map[tcell.Key]Action),
		runes: make(map[rune]Action),
	}
}

// DefaultKeymap returns the built-in bindings
func DefaultKeymap() *Keymap {
	km := newKeymap()
	km.keys[tcell.KeyLeft] = ActionMoveLeft
	km.keys[tcell.KeyRight] = ActionMoveRight
	km.keys[tcell.KeyUp] = ActionAccelerate
	km.keys[tcell.KeyEscape] = ActionQuit
	km.keys[tcell.KeyCtrlC] = ActionQuit

	km.runes[' '] = ActionFire
	km.runes['c'] = ActionToggleCamera
	km.runes['C'] = ActionToggleCamera
	km.runes['p'] = ActionTogglePause
	km.runes['P'] = ActionTogglePause
	km.runes['+'] = ActionScaleUp
	km.runes['='] = ActionScaleUp
	km.runes['-'] = ActionScaleDown
	km.runes['r'] = ActionRestart
	km.runes['R'] = ActionRestart
	km.runes['q'] = ActionQuit
	return km
}

// Lookup returns the action bound to ev
func (km *Keymap) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := km.runes[ev.Rune()]
		return a, ok && a != ActionNone
	}
	a, ok := km.keys[ev.Key()]
	return a, ok && a != ActionNone
}

// Bind attaches a key name to an action, replacing any previous binding of that key
// Accepted names: a single character, an alias (space, plus, minus) or a tcell key name (Left, Esc, Enter)
func (km *Keymap) Bind(keyName string, a Action) error {
	if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
		km.runes[r] = a
		return nil
	}
	if utf8.RuneCountInString(keyName) == 1 {
		r, _ := utf8.DecodeRuneInString(keyName)
		km.runes[r] = a
		return nil
	}
	k, ok := keyNames[strings.ToLower(keyName)]
	if !ok {
		return fmt.Errorf("unknown key %q", keyName)
	}
	km.keys[k] = a
	return nil
}

// unbindAction removes every key bound to a
func (km *Keymap) unbindAction(a Action) {
	for k, bound := range km.keys {
		if bound == a {
			delete(km.keys, k)
		}
	}
	for r, bound := range km.runes {
		if bound == a {
			delete(km.runes, r)
		}
	}
}

// LoadKeymap overlays configured bindings on the defaults
// Each listed action loses its default keys; an empty list unbinds the action
// Returns error on unknown action or key names
func LoadKeymap(bindings map[string][]string) (*Keymap, error) {
	km := DefaultKeymap()
	for name, keys := range bindings {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		km.unbindAction(a)
		for _, key := range keys {
			if err := km.Bind(key, a); err != nil {
				return nil, fmt.Errorf("keymap action %s: %w", name, err)
			}
		}
	}
	return km, nil
}
