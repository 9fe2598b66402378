package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/sim"
)

const (
	tileSize     = 32
	sidebarWidth = 200
	screenWidth  = game.Cols*tileSize + sidebarWidth
	screenHeight = game.Rows * tileSize
)

// Game adapts the engine to ebiten's update/draw loop.
type Game struct {
	engine   *game.Engine
	keys     *input.Keymap[ebiten.Key]
	gestures *input.Gestures
	pointer  pointer
	focused  bool

	overlay      *sim.Scheduler
	imguiBackend *sim.Singleton[debugui_ebiten.ImguiBackend]
	imguiInput   *sim.Singleton[debugui.ImguiInputState]
}

func newGame(engine *game.Engine) *Game {
	return &Game{
		engine: engine,
		keys: input.Standard(input.Keys[ebiten.Key]{
			Left:     ebiten.KeyArrowLeft,
			Right:    ebiten.KeyArrowRight,
			Down:     ebiten.KeyArrowDown,
			Up:       ebiten.KeyArrowUp,
			Drop:     ebiten.KeySpace,
			Pause:    ebiten.KeyEscape,
			Info:     ebiten.KeyI,
			Music:    ebiten.KeyM,
			Sound:    ebiten.KeyS,
			NewGame:  ebiten.KeyN,
			Exit:     ebiten.KeyE,
			Activate: ebiten.KeyEnter,
		}),
		gestures: input.NewGestures(tileSize),
		focused:  true,
	}
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.imguiBackend.Get().BeginFrame()
		g.overlay.Once()
		g.imguiBackend.Get().EndFrame()
	}

	focused := ebiten.IsFocused()
	if g.focused && !focused && g.engine.Session().State == game.Playing {
		g.engine.Apply(game.IntentTogglePause)
	}
	g.focused = focused

	if !g.inputCaptured() {
		g.engine.Apply(g.readKeys()...)
		g.engine.Apply(g.readSwipe()...)
	}
	g.gestures.Tick()

	g.engine.Tick()

	if g.engine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) inputCaptured() bool {
	if g.imguiInput == nil {
		return false
	}
	state := g.imguiInput.Get()
	return state.WantCaptureKeyboard || state.WantCaptureMouse
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBoard(screen, g.engine)
	drawSidebar(screen, g.engine)
	drawOverlay(screen, g.engine)

	if g.overlay != nil {
		g.imguiBackend.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
