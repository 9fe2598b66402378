// Command blockfall plays blockfall in a desktop window.
package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/sim"
	"github.com/plus3/blockfall/store"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for piece selection")
	savePath := flag.String("save", store.DefaultPath(), "snapshot file")
	mute := flag.Bool("mute", false, "disable audio output")
	debug := flag.Bool("debug", false, "show the imgui debug overlay")
	scale := flag.Float64("scale", 1.5, "window scale factor")
	flag.Parse()

	cfg := game.DefaultConfig()
	engine := game.New(cfg, rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)))

	saveFile := store.NewFile(*savePath)
	if err := store.Resume(engine, saveFile); err != nil && !errors.Is(err, store.ErrNoSnapshot) {
		log.Printf("Starting a new game: %v", err)
	}
	store.Autosave(engine, saveFile, log.Printf)

	if !*mute {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer player.Close()
			player.Attach(engine)
		}
	}

	g := newGame(engine)

	if *debug {
		storage := sim.NewStorage()
		sim.NewSingleton(storage, debugui_ebiten.NewImguiBackend("blockfall", 1280, 720))
		events := debugui.NewEventLog(128)
		events.Attach(engine)
		debugui.Install(storage, engine, events)

		overlay := sim.NewScheduler(storage)
		overlay.Register(&debugui.ImguiSystem{})
		g.overlay = overlay
		g.imguiBackend = sim.NewSingleton[debugui_ebiten.ImguiBackend](storage)
		g.imguiInput = sim.NewSingleton[debugui.ImguiInputState](storage)
	} else {
		ebiten.SetWindowSize(int(float64(screenWidth)**scale), int(float64(screenHeight)**scale))
		ebiten.SetWindowTitle("blockfall")
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Starting blockfall (seed %d, save %s)", *seed, saveFile.Path())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Println("Bye")
}
