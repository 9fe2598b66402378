package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionToggle(t *testing.T) {
	t.Run("pause and resume", func(t *testing.T) {
		s := Session{State: Playing}
		s.Menu = MenuExit

		assert.True(t, s.TogglePause())
		assert.Equal(t, Paused, s.State)
		assert.Equal(t, MenuResume, s.Menu)

		assert.False(t, s.TogglePause())
		assert.Equal(t, Playing, s.State)
	})

	t.Run("overlay over game over returns to game over", func(t *testing.T) {
		s := Session{State: GameOver}

		s.TogglePause()
		assert.True(t, s.GameOver())
		s.TogglePause()
		assert.Equal(t, GameOver, s.State)

		s.ToggleInfo()
		assert.Equal(t, ShowingInfo, s.State)
		s.ToggleInfo()
		assert.Equal(t, GameOver, s.State)
	})

	t.Run("switch between overlays", func(t *testing.T) {
		s := Session{State: Playing}

		s.TogglePause()
		assert.True(t, s.ToggleInfo())
		assert.Equal(t, ShowingInfo, s.State)
		assert.False(t, s.ToggleInfo())
		assert.Equal(t, Playing, s.State)
	})
}

func TestSessionNavigate(t *testing.T) {
	s := Session{State: Paused}

	s.Navigate(-1)
	assert.Equal(t, MenuExit, s.Menu)
	s.Navigate(1)
	assert.Equal(t, MenuResume, s.Menu)
	s.Navigate(2)
	assert.Equal(t, MenuMusic, s.Menu)
	assert.Len(t, MenuItems(), 5)
}
