// Package input translates device input into engine intents. It knows nothing
// about concrete devices; frontends feed it key identifiers and drag deltas.
package input

import (
	"math"

	"github.com/plus3/blockfall/game"
)

// DebounceTicks is how long Gestures ignores motion after a recognized swipe.
const DebounceTicks = 6

// Gestures recognizes swipes on a board drawn with square tiles of Tile
// pixels. A swipe must move more than a tenth of a tile along either axis; a
// downward swipe longer than one tile is a hard drop.
type Gestures struct {
	Tile float64

	blocked bool
	ticks   int
}

func NewGestures(tile float64) *Gestures {
	return &Gestures{Tile: tile}
}

// Swipe returns the intents for a drag of (dx, dy) pixels, or nil if the
// motion is too small or a previous swipe is still being debounced.
func (g *Gestures) Swipe(dx, dy float64) []game.Intent {
	if g.blocked {
		return nil
	}

	threshold := g.Tile / 10
	if math.Abs(dx) <= threshold && math.Abs(dy) <= threshold {
		return nil
	}
	g.blocked = true
	g.ticks = 0

	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return []game.Intent{game.IntentShiftLeft, game.IntentShiftLeftRelease}
		}
		return []game.Intent{game.IntentShiftRight, game.IntentShiftRightRelease}
	}

	switch {
	case dy < 0:
		return []game.Intent{game.IntentRotate, game.IntentRotateRelease}
	case dy > g.Tile:
		return []game.Intent{game.IntentHardDrop}
	default:
		return []game.Intent{game.IntentSoftDropStart, game.IntentSoftDropStop}
	}
}

// Tick advances the debounce timer; call it once per engine tick.
func (g *Gestures) Tick() {
	if !g.blocked {
		return
	}
	g.ticks++
	if g.ticks > DebounceTicks {
		g.blocked = false
		g.ticks = 0
	}
}

// Blocked reports whether swipes are currently ignored.
func (g *Gestures) Blocked() bool {
	return g.blocked
}
