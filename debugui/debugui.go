// Package debugui renders Dear ImGui inspection windows for a running engine.
// Windows are plain render functions collected in a Windows singleton and
// drawn by ImguiSystem once per frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/sim"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends check it before feeding input to the engine.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Windows is the set of items rendered every frame.
type Windows struct {
	Items []ImguiItem
}

func (w *Windows) Add(render func()) {
	w.Items = append(w.Items, ImguiItem{Render: render})
}

// ImguiSystem updates ImguiInputState and defers every window's render
// function to the end of the frame.
type ImguiSystem struct {
	Windows    sim.Singleton[Windows]
	InputState sim.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *sim.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Windows.Get().Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install adds the standard debug windows for eng to storage: engine
// inspector, scheduler stats, resource inspector and, if log is not nil, the
// event log.
func Install(storage *sim.Storage, eng *game.Engine, log *EventLog) {
	windows := sim.NewSingleton[Windows](storage)
	sim.NewSingleton[ImguiInputState](storage)

	inspector := NewEngineInspector(eng)
	stats := NewSchedulerStats(120)
	resources := NewResourceInspector()

	w := windows.Get()
	w.Add(inspector.Render)
	w.Add(func() {
		stats.Render(eng.Stats(), eng.Storage().CollectStats())
	})
	w.Add(func() {
		resources.Render(eng.Storage())
	})
	if log != nil {
		w.Add(log.Render)
	}
}
