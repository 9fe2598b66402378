package ebiten_test

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/sim"
)

// Game runs the engine with the debug windows drawn on top.
type Game struct {
	engine       *game.Engine
	scheduler    *sim.Scheduler
	imguiBackend *sim.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	g.engine.Tick()

	g.imguiBackend.Get().BeginFrame()
	g.scheduler.Once()
	g.imguiBackend.Get().EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	engine := game.New(game.DefaultConfig(), rand.New(rand.NewPCG(1, 2)))

	storage := sim.NewStorage()
	sim.NewSingleton(storage, debugui_ebiten.NewImguiBackend("blockfall debug", 1280, 720))

	log := debugui.NewEventLog(64)
	log.Attach(engine)
	debugui.Install(storage, engine, log)

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	g := &Game{
		engine:       engine,
		scheduler:    scheduler,
		imguiBackend: sim.NewSingleton[debugui_ebiten.ImguiBackend](storage),
	}

	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
