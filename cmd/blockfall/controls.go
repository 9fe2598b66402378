package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/game"
)

// pointer is the anchor of a mouse drag or the first touch. It moves to the
// current position whenever a swipe is recognized or debounced.
type pointer struct {
	active bool
	x, y   int
}

func (g *Game) readKeys() []game.Intent {
	var intents []game.Intent
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if intent, ok := g.keys.Press(key); ok {
			intents = append(intents, intent)
		}
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		if intent, ok := g.keys.Release(key); ok {
			intents = append(intents, intent)
		}
	}
	return intents
}

func (g *Game) readSwipe() []game.Intent {
	x, y, down := pointerPosition()
	if !down {
		g.pointer.active = false
		return nil
	}
	if !g.pointer.active {
		g.pointer = pointer{active: true, x: x, y: y}
		return nil
	}

	if g.gestures.Blocked() {
		g.pointer.x, g.pointer.y = x, y
		return nil
	}
	intents := g.gestures.Swipe(float64(x-g.pointer.x), float64(y-g.pointer.y))
	if intents != nil {
		g.pointer.x, g.pointer.y = x, y
	}
	return intents
}

func pointerPosition() (x, y int, down bool) {
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y = ebiten.TouchPosition(touches[0])
		return x, y, true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}
