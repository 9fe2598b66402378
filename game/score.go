package game

// Scoreboard tracks cleared lines and the level progression.
type Scoreboard struct {
	Score        int
	Best         int
	Level        int
	GravitySpeed float64
}

func newScoreboard(cfg Config, best int) Scoreboard {
	return Scoreboard{
		Best:         best,
		Level:        1,
		GravitySpeed: cfg.BaseGravity,
	}
}

// Add scores one point per line and reports whether the level went up. A pass
// levels up at most once, when it crosses a multiple of cfg.LevelStep that is
// not above cfg.LevelCap.
func (s *Scoreboard) Add(lines int, cfg Config) bool {
	if lines <= 0 {
		return false
	}

	old := s.Score
	s.Score += lines
	s.Best = max(s.Best, s.Score)

	threshold := (old/cfg.LevelStep + 1) * cfg.LevelStep
	if threshold > s.Score || threshold > cfg.LevelCap {
		return false
	}

	s.Level++
	s.GravitySpeed += cfg.GravityIncrement
	return true
}
