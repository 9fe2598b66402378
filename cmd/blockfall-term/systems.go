package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/sim"
)

// Terminal is the frontend state shared by the terminal systems.
type Terminal struct {
	Screen tcell.Screen
	Events <-chan tcell.Event
	Engine *game.Engine
	Keys   *input.Keymap[termKey]
	Stop   context.CancelFunc
}

// termKey identifies a terminal key. Rune is set only for tcell.KeyRune.
type termKey struct {
	Key  tcell.Key
	Rune rune
}

func keyOf(ev *tcell.EventKey) termKey {
	if ev.Key() == tcell.KeyRune {
		return termKey{Key: tcell.KeyRune, Rune: ev.Rune()}
	}
	return termKey{Key: ev.Key()}
}

func runeKey(r rune) termKey {
	return termKey{Key: tcell.KeyRune, Rune: r}
}

// standardKeys binds the arrow keys and letters. Terminals only report key
// presses, so every key is delivered as a tap.
func standardKeys() *input.Keymap[termKey] {
	return input.Standard(input.Keys[termKey]{
		Left:     termKey{Key: tcell.KeyLeft},
		Right:    termKey{Key: tcell.KeyRight},
		Down:     termKey{Key: tcell.KeyDown},
		Up:       termKey{Key: tcell.KeyUp},
		Drop:     runeKey(' '),
		Pause:    termKey{Key: tcell.KeyEscape},
		Info:     runeKey('i'),
		Music:    runeKey('m'),
		Sound:    runeKey('s'),
		NewGame:  runeKey('n'),
		Exit:     runeKey('e'),
		Activate: termKey{Key: tcell.KeyEnter},
	}).Bind(termKey{Key: tcell.KeyCtrlC}, input.Binding{Press: game.IntentQuit})
}

// KeyboardSystem drains pending terminal events into engine intents.
type KeyboardSystem struct {
	Terminal sim.Singleton[Terminal]
}

func (s *KeyboardSystem) Execute(frame *sim.UpdateFrame) {
	term := s.Terminal.Get()
	for {
		select {
		case ev := <-term.Events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				term.Engine.Apply(term.Keys.Tap(keyOf(ev))...)
			case *tcell.EventResize:
				term.Screen.Sync()
			}
		default:
			return
		}
	}
}

// StepSystem advances the engine one tick and stops the loop on quit.
type StepSystem struct {
	Terminal sim.Singleton[Terminal]
}

func (s *StepSystem) Execute(frame *sim.UpdateFrame) {
	term := s.Terminal.Get()
	term.Engine.Tick()
	if term.Engine.QuitRequested() {
		term.Stop()
	}
}

// DrawSystem renders the engine state.
type DrawSystem struct {
	Terminal sim.Singleton[Terminal]
}

func (s *DrawSystem) Execute(frame *sim.UpdateFrame) {
	term := s.Terminal.Get()
	term.Screen.Clear()
	draw(term.Screen, term.Engine)
	term.Screen.Show()
}
