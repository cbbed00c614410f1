package input

import "strings"

// Action enumerates what the loop should do in response to input.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionReseed
	ActionToggleRun
	ActionPointer
	ActionStepOnce
	ActionClear
)

var actionNames = map[Action]string{
	ActionQuit:      "quit",
	ActionReseed:    "reseed",
	ActionToggleRun: "toggle-run",
	ActionPointer:   "pointer",
	ActionStepOnce:  "step",
	ActionClear:     "clear",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// Intent is a translated input event. Button, X and Y are only set for
// ActionPointer.
type Intent struct {
	Action Action
	Button Button
	X, Y   int
}

// Keymap binds key names to actions.
type Keymap map[Key]Action

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"r":      ActionReseed,
		"s":      ActionToggleRun,
		"n":      ActionStepOnce,
		"c":      ActionClear,
		"escape": ActionQuit,
	}
}

// KeyName normalises a configured key name.
func KeyName(name string) Key {
	return Key(strings.ToLower(strings.TrimSpace(name)))
}

// Bind maps name to action, replacing any key previously bound to it. Blank
// names leave the map unchanged.
func (k Keymap) Bind(name string, action Action) {
	key := KeyName(name)
	if key == "" {
		return
	}
	for existing, a := range k {
		if a == action {
			delete(k, existing)
		}
	}
	k[key] = action
}

// Translate maps a raw event to an intent. ok is false for events the loop
// does not react to.
func (k Keymap) Translate(ev Event) (Intent, bool) {
	switch ev.Kind {
	case EventQuit:
		return Intent{Action: ActionQuit}, true
	case EventKeyDown:
		action, found := k[ev.Key]
		if !found || action == ActionNone || action == ActionPointer {
			return Intent{}, false
		}
		return Intent{Action: action}, true
	case EventMouseDown:
		return Intent{Action: ActionPointer, Button: ev.Button, X: ev.X, Y: ev.Y}, true
	}
	return Intent{}, false
}

// Drain empties src and appends the translated intents to buf in arrival
// order.
func Drain(src Source, k Keymap, buf []Intent) []Intent {
	if src == nil {
		return buf
	}
	for {
		ev, ok := src.Poll()
		if !ok {
			return buf
		}
		if intent, ok := k.Translate(ev); ok {
			buf = append(buf, intent)
		}
	}
}
