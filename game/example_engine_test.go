package game_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

func ExampleEngine() {
	engine := game.New(game.DefaultConfig(), rand.New(rand.NewPCG(1, 2)))

	engine.Subscribe(game.EventPauseToggled, func(ev game.Event) {
		fmt.Println("event:", ev)
	})

	engine.Apply(game.IntentTogglePause)
	engine.Tick()
	fmt.Println(engine.Session().State)

	engine.Apply(game.IntentTogglePause)
	engine.Tick()
	fmt.Println(engine.Session().State, engine.Frame())

	// Output:
	// event: PauseToggled(true)
	// Paused
	// event: PauseToggled(false)
	// Playing 2
}

func ExampleRotate() {
	var grid game.Grid
	piece := game.Spawn(game.ShapeI, game.Color{R: 200, G: 200, B: 200}, game.Point{X: 5, Y: 1})

	rotated, ok := game.Rotate(&grid, piece)
	fmt.Println(ok, rotated.Cells)

	// Output:
	// true [{4 1} {4 0} {4 2} {4 3}]
}
