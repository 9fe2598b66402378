package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// LogEntry is an event stamped with the frame it was published after.
type LogEntry struct {
	Frame uint64
	Event game.Event
}

// EventLog keeps the most recent engine events in a ring buffer.
type EventLog struct {
	entries []LogEntry
	next    int
	full    bool
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{entries: make([]LogEntry, capacity)}
}

// Attach records every event eng publishes.
func (l *EventLog) Attach(eng *game.Engine) {
	eng.SubscribeAll(func(ev game.Event) {
		l.Add(eng.Frame(), ev)
	})
}

func (l *EventLog) Add(frame uint64, ev game.Event) {
	l.entries[l.next] = LogEntry{Frame: frame, Event: ev}
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
}

// Entries returns the buffered entries, oldest first.
func (l *EventLog) Entries() []LogEntry {
	if !l.full {
		return append([]LogEntry(nil), l.entries[:l.next]...)
	}
	out := make([]LogEntry, 0, len(l.entries))
	out = append(out, l.entries[l.next:]...)
	return append(out, l.entries[:l.next]...)
}

func (l *EventLog) Clear() {
	clear(l.entries)
	l.next = 0
	l.full = false
}

func (l *EventLog) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(730, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 400), imgui.CondOnce)

	if !imgui.BeginV("Events", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Clear") {
		l.Clear()
	}
	imgui.Separator()

	entries := l.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		imgui.Text(fmt.Sprintf("%6d  %s", entries[i].Frame, entries[i].Event))
	}

	imgui.End()
}
