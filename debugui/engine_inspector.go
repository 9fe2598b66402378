package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// EngineInspector shows the observable engine state and offers buttons that
// inject intents.
type EngineInspector struct {
	eng *game.Engine
}

func NewEngineInspector(eng *game.Engine) *EngineInspector {
	return &EngineInspector{eng: eng}
}

func (ei *EngineInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 520), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eng := ei.eng
	session := eng.Session()
	score := eng.Score()
	settings := eng.Settings()

	imgui.Text(fmt.Sprintf("Frame: %d", eng.Frame()))
	imgui.Text(fmt.Sprintf("Session: %s (resume %s)", session.State, session.Resume))
	imgui.Text(fmt.Sprintf("Menu: %s", session.Menu))
	imgui.Text(fmt.Sprintf("Clear: %s", eng.ClearPhase()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d  Best: %d", score.Score, score.Best))
	imgui.Text(fmt.Sprintf("Level: %d  Speed: %.1f", score.Level, score.GravitySpeed))
	imgui.Text(fmt.Sprintf("Sound: %t  Music: %t", settings.Sound, settings.Music))
	imgui.Separator()

	active := eng.Active()
	imgui.Text(fmt.Sprintf("Active: %s %v", active.Shape, active.Cells))
	imgui.Text(fmt.Sprintf("Next: %s", eng.Next().Shape))

	if imgui.Button("Pause") {
		eng.Apply(game.IntentTogglePause)
	}
	imgui.SameLine()
	if imgui.Button("New Game") {
		eng.Apply(game.IntentNewGame)
	}
	imgui.SameLine()
	if imgui.Button("Drop") {
		eng.Apply(game.IntentHardDrop)
	}

	if imgui.TreeNodeStr("Grid") {
		for _, line := range GridLines(eng.Grid(), active) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// GridLines renders the grid as text: '#' for locked cells, '@' for the
// active piece and '.' for empty cells.
func GridLines(g game.Grid, active game.Piece) []string {
	var cells [game.Rows][game.Cols]byte
	for y := range game.Rows {
		for x := range game.Cols {
			cells[y][x] = '.'
			if !g.Cells[y][x].IsZero() {
				cells[y][x] = '#'
			}
		}
	}
	for _, c := range active.Cells {
		if c.Y >= 0 && c.Y < game.Rows && c.X >= 0 && c.X < game.Cols {
			cells[c.Y][c.X] = '@'
		}
	}

	lines := make([]string, game.Rows)
	var b strings.Builder
	for y := range game.Rows {
		b.Reset()
		b.Write(cells[y][:])
		lines[y] = b.String()
	}
	return lines
}
