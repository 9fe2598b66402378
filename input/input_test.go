package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
)

func TestGesturesSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   []game.Intent
	}{
		{"below threshold", 2, -2, nil},
		{"left", -10, 3, []game.Intent{game.IntentShiftLeft, game.IntentShiftLeftRelease}},
		{"right", 10, -3, []game.Intent{game.IntentShiftRight, game.IntentShiftRightRelease}},
		{"diagonal prefers horizontal", 8, 8, []game.Intent{game.IntentShiftRight, game.IntentShiftRightRelease}},
		{"up", 0, -10, []game.Intent{game.IntentRotate, game.IntentRotateRelease}},
		{"short down", 1, 20, []game.Intent{game.IntentSoftDropStart, game.IntentSoftDropStop}},
		{"long down", 0, 50, []game.Intent{game.IntentHardDrop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := input.NewGestures(40)
			assert.Equal(t, tt.want, g.Swipe(tt.dx, tt.dy))
			assert.Equal(t, tt.want != nil, g.Blocked())
		})
	}
}

func TestGesturesDebounce(t *testing.T) {
	g := input.NewGestures(40)
	assert.NotNil(t, g.Swipe(-10, 0))

	for range input.DebounceTicks {
		g.Tick()
		assert.Nil(t, g.Swipe(-10, 0))
	}

	g.Tick()
	assert.False(t, g.Blocked())
	assert.NotNil(t, g.Swipe(-10, 0))
}

func TestKeymap(t *testing.T) {
	keys := input.Standard(input.Keys[string]{
		Left: "left", Right: "right", Down: "down", Up: "up",
		Drop: "space", Pause: "esc", Info: "i", Music: "m", Sound: "s",
		NewGame: "n", Exit: "e", Activate: "enter",
	})

	assert.Equal(t, 12, keys.Len())

	intent, ok := keys.Press("left")
	assert.True(t, ok)
	assert.Equal(t, game.IntentShiftLeft, intent)

	intent, ok = keys.Release("left")
	assert.True(t, ok)
	assert.Equal(t, game.IntentShiftLeftRelease, intent)

	_, ok = keys.Release("space")
	assert.False(t, ok)

	_, ok = keys.Press("q")
	assert.False(t, ok)

	assert.Equal(t, []game.Intent{game.IntentRotate, game.IntentRotateRelease}, keys.Tap("up"))
	assert.Equal(t, []game.Intent{game.IntentTogglePause}, keys.Tap("esc"))
	assert.Nil(t, keys.Tap("q"))
}
