package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/river-raid/parameter"
)

type keyHold struct {
	lastSeen  time.Time
	repeating bool
}

// KeyTracker turns press-only terminal key events into held state
// A key stays held until no press or autorepeat arrives within its window;
// the first press waits HoldWindow for the terminal's repeat delay, later repeats use RepeatWindow
// Terminals report no key-up, so a second tap inside the window is read as a repeat:
// rapid taps of fire or camera merge into one edge until the key is released
type KeyTracker struct {
	Keymap       *Keymap
	HoldWindow   time.Duration
	RepeatWindow time.Duration

	holds [ActionCount]*keyHold
}

func NewKeyTracker(km *Keymap) *KeyTracker {
	if km == nil {
		km = DefaultKeymap()
	}
	return &KeyTracker{
		Keymap:       km,
		HoldWindow:   parameter.KeyHoldWindow,
		RepeatWindow: parameter.KeyRepeatWindow,
	}
}

// HandleKey records a key event and returns the bound action
func (t *KeyTracker) HandleKey(ev *tcell.EventKey, now time.Time) (Action, bool) {
	a, ok := t.Keymap.Lookup(ev)
	if !ok {
		return ActionNone, false
	}
	if h := t.holds[a]; h != nil {
		h.repeating = true
		h.lastSeen = now
	} else {
		t.holds[a] = &keyHold{lastSeen: now}
	}
	return a, true
}

// Apply writes held state into snap, releasing actions whose window elapsed
func (t *KeyTracker) Apply(snap *Snapshot, now time.Time) {
	for a := Action(1); a < ActionCount; a++ {
		h := t.holds[a]
		if h == nil {
			continue
		}
		window := t.HoldWindow
		if h.repeating {
			window = t.RepeatWindow
		}
		if now.Sub(h.lastSeen) > window {
			t.holds[a] = nil
			snap.Release(a)
			continue
		}
		snap.Press(a)
	}
}

// Reset forgets every tracked key
func (t *KeyTracker) Reset() {
	t.holds = [ActionCount]*keyHold{}
}
