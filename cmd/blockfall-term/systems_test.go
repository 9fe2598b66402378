package main

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/sim"
)

func newTestTerminal(t *testing.T) (*sim.Scheduler, *Terminal, chan tcell.Event, *bool) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 30)
	t.Cleanup(screen.Fini)

	events := make(chan tcell.Event, 8)
	stopped := false

	storage := sim.NewStorage()
	storage.AddSingleton(Terminal{
		Screen: screen,
		Events: events,
		Engine: game.New(game.DefaultConfig(), rand.New(rand.NewPCG(3, 4))),
		Keys:   standardKeys(),
		Stop:   func() { stopped = true },
	})

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&KeyboardSystem{})
	scheduler.Register(&StepSystem{})
	scheduler.Register(&DrawSystem{})

	var term *Terminal
	require.True(t, storage.ReadSingleton(&term))
	return scheduler, term, events, &stopped
}

func TestKeyboardSystemAppliesTaps(t *testing.T) {
	scheduler, term, events, _ := newTestTerminal(t)
	before := term.Engine.Active()

	events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	scheduler.Once()

	assert.Equal(t, before.Translate(-1, 0).Cells, term.Engine.Active().Cells)
	assert.Empty(t, events)
}

func TestKeyboardSystemRuneKeys(t *testing.T) {
	scheduler, term, events, _ := newTestTerminal(t)

	events <- tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)
	scheduler.Once()
	assert.False(t, term.Engine.Settings().Music)

	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	scheduler.Once()
	assert.Equal(t, game.Paused, term.Engine.Session().State)
}

func TestStepSystemStopsOnQuit(t *testing.T) {
	scheduler, term, events, stopped := newTestTerminal(t)

	scheduler.Once()
	assert.False(t, *stopped)

	events <- tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	scheduler.Once()
	assert.True(t, term.Engine.QuitRequested())
	assert.True(t, *stopped)
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, runeKey('n'), keyOf(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	assert.Equal(t, termKey{Key: tcell.KeyUp}, keyOf(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
}
