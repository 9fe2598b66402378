// Command blockfall-term plays blockfall in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/sim"
	"github.com/plus3/blockfall/store"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for piece selection")
	savePath := flag.String("save", store.DefaultPath(), "snapshot file")
	logPath := flag.String("log", "blockfall-term.log", "log file, the terminal is owned by the game")
	mute := flag.Bool("mute", false, "disable audio output")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 64)
	go pollEvents(ctx, screen, events)

	storage := sim.NewStorage()
	storage.AddSingleton(Terminal{
		Screen: screen,
		Events: events,
		Engine: engine,
		Keys:   standardKeys(),
		Stop:   cancel,
	})

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&KeyboardSystem{})
	scheduler.Register(&StepSystem{})
	scheduler.Register(&DrawSystem{})

	log.Printf("Starting blockfall-term (seed %d, save %s)", *seed, saveFile.Path())
	scheduler.Run(ctx, time.Second/time.Duration(cfg.TickRate))
	log.Printf("Stopped after %d frames", engine.Frame())
}

func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
