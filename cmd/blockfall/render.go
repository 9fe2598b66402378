package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/game"
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridLine   = color.RGBA{0x40, 0x40, 0x48, 0xff}
	shade      = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	selected   = color.RGBA{0xfa, 0xfa, 0xfa, 0xff}
)

func drawTile(screen *ebiten.Image, x, y float32, c color.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, tileSize-2, tileSize-2, c, false)
}

func drawBoard(screen *ebiten.Image, eng *game.Engine) {
	screen.Fill(background)

	grid := eng.Grid()
	for y := range game.Rows {
		for x := range game.Cols {
			px, py := float32(x*tileSize), float32(y*tileSize)
			vector.StrokeRect(screen, px, py, tileSize, tileSize, 1, gridLine, false)
			if c := grid.Cells[y][x]; !c.IsZero() {
				drawTile(screen, px, py, c)
			}
		}
	}

	if eng.ClearPhase() != game.ClearIdle || eng.Session().GameOver() {
		return
	}
	active := eng.Active()
	ghost, _ := game.Drop(&grid, active)
	for _, c := range ghost.Cells {
		if c.Y >= 0 {
			vector.StrokeRect(screen, float32(c.X*tileSize)+2, float32(c.Y*tileSize)+2, tileSize-4, tileSize-4, 1, active.Color, false)
		}
	}
	for _, c := range active.Cells {
		if c.Y < 0 {
			continue
		}
		drawTile(screen, float32(c.X*tileSize), float32(c.Y*tileSize), active.Color)
	}
}

func drawSidebar(screen *ebiten.Image, eng *game.Engine) {
	left := game.Cols*tileSize + 16
	score := eng.Score()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", score.Score), left, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BEST   %d", score.Best), left, 36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL  %d", score.Level), left, 56)
	ebitenutil.DebugPrintAt(screen, "NEXT", left, 96)

	next := eng.Next()
	minX, minY, _, _ := next.Bounds()
	const previewTile = tileSize * 3 / 4
	for _, c := range next.Cells {
		x := float32(left + (c.X-minX)*previewTile)
		y := float32(120 + (c.Y-minY)*previewTile)
		vector.DrawFilledRect(screen, x+1, y+1, previewTile-2, previewTile-2, next.Color, false)
	}

	settings := eng.Settings()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SOUND  %s", onOff(settings.Sound)), left, screenHeight-56)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("MUSIC  %s", onOff(settings.Music)), left, screenHeight-36)
}

func drawOverlay(screen *ebiten.Image, eng *game.Engine) {
	session := eng.Session()
	const boardWidth = game.Cols * tileSize

	switch session.State {
	case game.Paused:
		vector.DrawFilledRect(screen, 0, 0, boardWidth, screenHeight, shade, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED", boardWidth/2-18, 200)
		for i, item := range game.MenuItems() {
			label := item.String()
			if item == session.Menu {
				label = "> " + label
				vector.StrokeRect(screen, 80, float32(236+i*32), boardWidth-160, 24, 1, selected, false)
			}
			ebitenutil.DebugPrintAt(screen, label, 100, 240+i*32)
		}

	case game.ShowingInfo:
		vector.DrawFilledRect(screen, 0, 0, boardWidth, screenHeight, shade, false)
		for i, line := range helpLines {
			ebitenutil.DebugPrintAt(screen, line, 24, 120+i*20)
		}

	case game.GameOver:
		vector.DrawFilledRect(screen, 0, 240, boardWidth, 80, shade, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardWidth/2-27, 260)
		ebitenutil.DebugPrintAt(screen, "N - new game", boardWidth/2-36, 285)
	}
}

var helpLines = []string{
	"Keyboard:",
	"  Left/Right - move",
	"  Up         - rotate",
	"  Down       - down",
	"  Space      - drop",
	"  Esc        - menu",
	"  I          - info",
	"  M / S      - music / sound",
	"  N          - new game",
	"  E          - exit",
	"",
	"Touch:",
	"  Swipe left/right - move",
	"  Swipe up         - rotate",
	"  Swipe down       - down",
	"  Long swipe down  - drop",
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
