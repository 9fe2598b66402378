package input

import "github.com/plus3/blockfall/game"

// Binding is the pair of intents a key produces. Release is zero for keys
// that only act on press.
type Binding struct {
	Press   game.Intent
	Release game.Intent
}

// Keymap maps device keys of type K to intents.
type Keymap[K comparable] struct {
	bindings map[K]Binding
}

func NewKeymap[K comparable]() *Keymap[K] {
	return &Keymap[K]{bindings: make(map[K]Binding)}
}

// Bind assigns a binding to key, replacing any previous one.
func (m *Keymap[K]) Bind(key K, b Binding) *Keymap[K] {
	m.bindings[key] = b
	return m
}

// Press returns the intent for key going down.
func (m *Keymap[K]) Press(key K) (game.Intent, bool) {
	b, ok := m.bindings[key]
	if !ok || b.Press == 0 {
		return 0, false
	}
	return b.Press, true
}

// Release returns the intent for key going up.
func (m *Keymap[K]) Release(key K) (game.Intent, bool) {
	b, ok := m.bindings[key]
	if !ok || b.Release == 0 {
		return 0, false
	}
	return b.Release, true
}

// Tap returns press and release together, for devices that never report key
// up events.
func (m *Keymap[K]) Tap(key K) []game.Intent {
	b, ok := m.bindings[key]
	if !ok {
		return nil
	}
	intents := make([]game.Intent, 0, 2)
	if b.Press != 0 {
		intents = append(intents, b.Press)
	}
	if b.Release != 0 {
		intents = append(intents, b.Release)
	}
	return intents
}

// Len returns the number of bound keys.
func (m *Keymap[K]) Len() int {
	return len(m.bindings)
}

// Keys names the logical controls the standard layout binds.
type Keys[K comparable] struct {
	Left, Right, Down, Up K
	Drop                  K
	Pause, Info           K
	Music, Sound          K
	NewGame, Exit         K
	Activate              K
}

// Standard binds the arrow-style movement controls with key-up releases plus
// the single-press commands.
func Standard[K comparable](keys Keys[K]) *Keymap[K] {
	return NewKeymap[K]().
		Bind(keys.Left, Binding{game.IntentShiftLeft, game.IntentShiftLeftRelease}).
		Bind(keys.Right, Binding{game.IntentShiftRight, game.IntentShiftRightRelease}).
		Bind(keys.Down, Binding{game.IntentSoftDropStart, game.IntentSoftDropStop}).
		Bind(keys.Up, Binding{game.IntentRotate, game.IntentRotateRelease}).
		Bind(keys.Drop, Binding{Press: game.IntentHardDrop}).
		Bind(keys.Pause, Binding{Press: game.IntentTogglePause}).
		Bind(keys.Info, Binding{Press: game.IntentToggleInfo}).
		Bind(keys.Music, Binding{Press: game.IntentToggleMusic}).
		Bind(keys.Sound, Binding{Press: game.IntentToggleSound}).
		Bind(keys.NewGame, Binding{Press: game.IntentNewGame}).
		Bind(keys.Exit, Binding{Press: game.IntentQuit}).
		Bind(keys.Activate, Binding{Press: game.IntentMenuActivate})
}
