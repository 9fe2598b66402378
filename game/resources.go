package game

// Pieces holds the falling piece and the preview.
type Pieces struct {
	Active Piece
	Next   Piece
}

// ClearPhase is the line-clear sub-state.
type ClearPhase uint8

const (
	ClearIdle ClearPhase = iota
	ClearAnimating
	ClearCompacting
)

func (p ClearPhase) String() string {
	switch p {
	case ClearIdle:
		return "Idle"
	case ClearAnimating:
		return "Animating"
	case ClearCompacting:
		return "Compacting"
	}
	return "ClearPhase(?)"
}

// Clear tracks rows flagged for removal and the animation countdown.
type Clear struct {
	Phase   ClearPhase
	Flagged [Rows]bool
	Ticks   int
}

// Gravity accumulates fall progress until it reaches Limit.
type Gravity struct {
	Accumulator float64
	Limit       int
}

// Controls is the intent queue for the next tick plus held-key state.
type Controls struct {
	Queue []Intent

	Left, Right, Down, Up bool
	Repeat                int

	// Pending actions consumed by the movement systems this tick.
	DX   int
	Drop bool
	Turn bool
}

func (c *Controls) held() bool {
	return c.Left || c.Right || c.Down || c.Up
}

func (c *Controls) fireHeld() {
	if c.Left {
		c.DX--
	}
	if c.Right {
		c.DX++
	}
	if c.Down {
		c.Drop = true
	}
	if c.Up {
		c.Turn = true
	}
}

// Settings are the player's audio preferences.
type Settings struct {
	Sound bool
	Music bool
}
