package input

import (
	"fmt"
	"sort"
)

// Action is a logical game control, independent of the physical key
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAccelerate
	ActionFire
	ActionToggleCamera
	ActionTogglePause
	ActionScaleUp
	ActionScaleDown

	// Host actions, handled outside the simulation
	ActionRestart
	ActionQuit

	ActionCount
)

// actionRegistry maps canonical action names used by keymap config to actions
var actionRegistry = map[string]Action{
	"none":          ActionNone,
	"move_left":     ActionMoveLeft,
	"move_right":    ActionMoveRight,
	"accelerate":    ActionAccelerate,
	"fire":          ActionFire,
	"toggle_camera": ActionToggleCamera,
	"toggle_pause":  ActionTogglePause,
	"scale_up":      ActionScaleUp,
	"scale_down":    ActionScaleDown,
	"restart":       ActionRestart,
	"quit":          ActionQuit,
}

var actionNames = func() [ActionCount]string {
	var names [ActionCount]string
	for name, a := range actionRegistry {
		names[a] = name
	}
	return names
}()

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// ActionNames returns every bindable action name, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name, a := range actionRegistry {
		if a == ActionNone {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
