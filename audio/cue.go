package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/plus3/blockfall/game"
)

// Cue is a short sound effect.
type Cue uint8

const (
	CueMove Cue = iota + 1
	CueRotate
	CueLock
	CueClear
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueRotate:
		return "rotate"
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	}
	return "cue(?)"
}

// CueFor returns the cue played for an engine event, if any.
func CueFor(ev game.Event) (Cue, bool) {
	switch ev.Kind {
	case game.EventPieceMoved:
		return CueMove, true
	case game.EventPieceRotated:
		return CueRotate, true
	case game.EventPieceLocked:
		return CueLock, true
	case game.EventLinesCleared:
		return CueClear, true
	case game.EventLevelUp:
		return CueLevelUp, true
	case game.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueMove:     {{440, 30 * time.Millisecond}},
	CueRotate:   {{660, 40 * time.Millisecond}},
	CueLock:     {{220, 60 * time.Millisecond}},
	CueClear:    {{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}},
	CueLevelUp:  {{523.25, 60 * time.Millisecond}, {783.99, 60 * time.Millisecond}, {1046.5, 160 * time.Millisecond}},
	CueGameOver: {{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {261.63, 300 * time.Millisecond}},
}

// Duration returns how long the cue plays.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}

// Streamer renders the cue.
func (c Cue) Streamer() beep.Streamer {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n.freq, n.duration))
	}
	return withVolume(beep.Seq(parts...), 0.4)
}
