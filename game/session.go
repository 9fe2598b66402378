package game

// SessionState gates which systems may change the game.
type SessionState uint8

const (
	Playing SessionState = iota
	Paused
	ShowingInfo
	GameOver
)

func (s SessionState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case ShowingInfo:
		return "ShowingInfo"
	case GameOver:
		return "GameOver"
	}
	return "SessionState(?)"
}

// MenuItem is an entry of the pause menu.
type MenuItem uint8

const (
	MenuResume MenuItem = iota
	MenuNewGame
	MenuMusic
	MenuSound
	MenuExit
	menuItemCount
)

var menuLabels = [menuItemCount]string{"Resume", "New Game", "Music", "Sound", "Exit"}

func (m MenuItem) String() string {
	if m < menuItemCount {
		return menuLabels[m]
	}
	return "MenuItem(?)"
}

// MenuItems returns the pause menu entries in display order.
func MenuItems() []MenuItem {
	items := make([]MenuItem, menuItemCount)
	for i := range items {
		items[i] = MenuItem(i)
	}
	return items
}

// Session is the tagged session state. Overlay states remember where to
// return to in Resume.
type Session struct {
	State  SessionState
	Resume SessionState
	Menu   MenuItem
	Quit   bool
}

// GameOver reports whether the current game has ended, including while an
// overlay is shown over the final board.
func (s Session) GameOver() bool {
	if s.State == Paused || s.State == ShowingInfo {
		return s.Resume == GameOver
	}
	return s.State == GameOver
}

// TogglePause enters or leaves the pause menu and reports whether the
// session is paused afterwards.
func (s *Session) TogglePause() bool {
	return s.toggle(Paused)
}

// ToggleInfo enters or leaves the info overlay and reports whether it is
// shown afterwards.
func (s *Session) ToggleInfo() bool {
	return s.toggle(ShowingInfo)
}

func (s *Session) toggle(overlay SessionState) bool {
	if s.State == overlay {
		s.State = s.Resume
		return false
	}
	if s.State != Paused && s.State != ShowingInfo {
		s.Resume = s.State
	}
	s.State = overlay
	s.Menu = MenuResume
	return true
}

// Navigate moves the menu selection by delta, wrapping at both ends.
func (s *Session) Navigate(delta int) {
	n := int(menuItemCount)
	s.Menu = MenuItem(((int(s.Menu)+delta)%n + n) % n)
}
