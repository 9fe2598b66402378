package game

import "fmt"

// EventKind identifies an engine event on the bus.
type EventKind uint8

const (
	EventPieceMoved EventKind = iota + 1
	EventPieceRotated
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventPauseToggled
	EventInfoToggled
	EventMusicToggled
	EventSoundToggled
	EventNewGame
	EventQuit
)

var eventNames = map[EventKind]string{
	EventPieceMoved:   "PieceMoved",
	EventPieceRotated: "PieceRotated",
	EventPieceLocked:  "PieceLocked",
	EventLinesCleared: "LinesCleared",
	EventLevelUp:      "LevelUp",
	EventGameOver:     "GameOver",
	EventPauseToggled: "PauseToggled",
	EventInfoToggled:  "InfoToggled",
	EventMusicToggled: "MusicToggled",
	EventSoundToggled: "SoundToggled",
	EventNewGame:      "NewGame",
	EventQuit:         "Quit",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "Event(?)"
}

// Event is published on the engine's bus after the tick that raised it.
type Event struct {
	Kind EventKind
	// Lines is set for EventLinesCleared.
	Lines int
	// Level is set for EventLevelUp.
	Level int
	// Enabled is set for the toggle events and reports the new state.
	Enabled bool
}

func (e Event) String() string {
	switch e.Kind {
	case EventLinesCleared:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Lines)
	case EventLevelUp:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Level)
	case EventPauseToggled, EventInfoToggled, EventMusicToggled, EventSoundToggled:
		return fmt.Sprintf("%s(%t)", e.Kind, e.Enabled)
	}
	return e.Kind.String()
}
