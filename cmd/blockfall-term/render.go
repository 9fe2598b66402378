package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

const (
	// Each cell is two columns wide so tiles look square.
	cellWidth = 2
	boardLeft = 1
	boardTop  = 1
	sideLeft  = boardLeft + game.Cols*cellWidth + 4
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	menuStyle  = tcell.StyleDefault.Reverse(true)
)

func cellStyle(c game.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCell(screen tcell.Screen, x, y int, style tcell.Style) {
	sx := boardLeft + x*cellWidth
	sy := boardTop + y
	screen.SetContent(sx, sy, ' ', nil, style)
	screen.SetContent(sx+1, sy, ' ', nil, style)
}

func draw(screen tcell.Screen, eng *game.Engine) {
	drawFrame(screen)
	drawGrid(screen, eng)
	drawSidebar(screen, eng)
	drawSession(screen, eng)
}

func drawFrame(screen tcell.Screen) {
	right := boardLeft + game.Cols*cellWidth
	bottom := boardTop + game.Rows
	for y := boardTop; y < bottom; y++ {
		screen.SetContent(boardLeft-1, y, '│', nil, frameStyle)
		screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := boardLeft; x < right; x++ {
		screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	screen.SetContent(boardLeft-1, bottom, '└', nil, frameStyle)
	screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func drawGrid(screen tcell.Screen, eng *game.Engine) {
	grid := eng.Grid()
	for y := range game.Rows {
		for x := range game.Cols {
			if c := grid.Cells[y][x]; !c.IsZero() {
				drawCell(screen, x, y, cellStyle(c))
			} else {
				screen.SetContent(boardLeft+x*cellWidth, boardTop+y, '·', nil, emptyStyle)
			}
		}
	}

	if eng.ClearPhase() != game.ClearIdle || eng.Session().GameOver() {
		return
	}
	active := eng.Active()
	ghost, _ := game.Drop(&grid, active)
	ghostStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(active.Color.R), int32(active.Color.G), int32(active.Color.B)))
	for _, c := range ghost.Cells {
		if c.Y >= 0 {
			sx := boardLeft + c.X*cellWidth
			screen.SetContent(sx, boardTop+c.Y, '[', nil, ghostStyle)
			screen.SetContent(sx+1, boardTop+c.Y, ']', nil, ghostStyle)
		}
	}
	for _, c := range active.Cells {
		if c.Y >= 0 {
			drawCell(screen, c.X, c.Y, cellStyle(active.Color))
		}
	}
}

func drawSidebar(screen tcell.Screen, eng *game.Engine) {
	score := eng.Score()
	drawText(screen, sideLeft, boardTop, textStyle, fmt.Sprintf("Score %d", score.Score))
	drawText(screen, sideLeft, boardTop+1, textStyle, fmt.Sprintf("Best  %d", score.Best))
	drawText(screen, sideLeft, boardTop+2, textStyle, fmt.Sprintf("Level %d", score.Level))
	drawText(screen, sideLeft, boardTop+4, textStyle, "Next")

	next := eng.Next()
	minX, minY, _, _ := next.Bounds()
	style := cellStyle(next.Color)
	for _, c := range next.Cells {
		x := sideLeft + (c.X-minX)*cellWidth
		y := boardTop + 6 + c.Y - minY
		screen.SetContent(x, y, ' ', nil, style)
		screen.SetContent(x+1, y, ' ', nil, style)
	}

	settings := eng.Settings()
	drawText(screen, sideLeft, boardTop+11, textStyle, "Sound "+onOff(settings.Sound))
	drawText(screen, sideLeft, boardTop+12, textStyle, "Music "+onOff(settings.Music))
}

func drawSession(screen tcell.Screen, eng *game.Engine) {
	session := eng.Session()
	top := boardTop + 14

	switch session.State {
	case game.Paused:
		drawText(screen, sideLeft, top, textStyle, "Paused")
		for i, item := range game.MenuItems() {
			style := textStyle
			if item == session.Menu {
				style = menuStyle
			}
			drawText(screen, sideLeft+2, top+2+i, style, item.String())
		}
	case game.ShowingInfo:
		for i, line := range helpLines {
			drawText(screen, sideLeft, top+i, textStyle, line)
		}
	case game.GameOver:
		drawText(screen, sideLeft, top, textStyle, "Game over")
		drawText(screen, sideLeft, top+1, textStyle, "n: new game  e: exit")
	}
}

var helpLines = []string{
	"←/→    move",
	"↑      rotate",
	"↓      down",
	"space  drop",
	"esc    menu",
	"m / s  music / sound",
	"n      new game",
	"e      exit",
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
