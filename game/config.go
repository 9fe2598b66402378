package game

// Config holds the engine's timing and progression constants. All durations
// are in ticks.
type Config struct {
	// TickRate is the number of ticks per second the frontends run at.
	TickRate int
	// GravityLimit is the accumulator value that triggers a gravity step.
	GravityLimit int
	// HardDropLimit replaces GravityLimit while a hard drop is requested.
	HardDropLimit int
	// BaseGravity is the accumulator increment per tick at level 1.
	BaseGravity float64
	// GravityIncrement is added to the gravity speed on every level up.
	GravityIncrement float64
	// ClearTicks is the length of the line-clear animation.
	ClearTicks int
	// RepeatTicks is the interval at which held inputs re-fire.
	RepeatTicks int
	// LevelStep is the score distance between level thresholds.
	LevelStep int
	// LevelCap is the highest score threshold that still levels up.
	LevelCap int
	// SpawnAt is where template offsets are anchored when a piece is dealt.
	SpawnAt Point
	// Highlight is the color flagged rows take during the clear animation.
	Highlight Color
}

// DefaultConfig returns the reference cadence: 60 ticks per second, one row
// per second at level 1, a 10 tick clear animation and a 10 tick key repeat.
func DefaultConfig() Config {
	return Config{
		TickRate:         60,
		GravityLimit:     60,
		HardDropLimit:    3,
		BaseGravity:      1,
		GravityIncrement: 0.5,
		ClearTicks:       10,
		RepeatTicks:      10,
		LevelStep:        10,
		LevelCap:         1000,
		SpawnAt:          Point{X: 5, Y: 1},
		Highlight:        Color{R: 0xfa, G: 0xfa, B: 0xfa},
	}
}
