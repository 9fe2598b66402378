package sim_test

import (
	"fmt"

	"github.com/plus3/blockfall/sim"
)

type Countdown struct {
	Remaining int
}

type CountdownSystem struct {
	Countdown sim.Singleton[Countdown]
}

func (s *CountdownSystem) Execute(frame *sim.UpdateFrame) {
	c := s.Countdown.Get()
	if c.Remaining == 0 {
		return
	}
	c.Remaining--
	if c.Remaining == 0 {
		frame.Commands.Emit(fmt.Sprintf("done at tick %d", frame.Tick))
	}
}

// ExampleScheduler shows systems sharing a singleton and emitting an event
// that is delivered once the tick has finished.
func ExampleScheduler() {
	storage := sim.NewStorage()
	storage.AddSingleton(Countdown{Remaining: 3})

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&CountdownSystem{})
	scheduler.OnEmit(func(event any) {
		fmt.Println(event)
	})

	for range 5 {
		scheduler.Once()
	}

	// Output:
	// done at tick 3
}

// ExampleNewSingleton demonstrates creating and sharing a singleton resource.
func ExampleNewSingleton() {
	storage := sim.NewStorage()

	counter := sim.NewSingleton[Counter](storage, Counter{Value: 1})
	counter.Get().Value++

	var same *Counter
	storage.ReadSingleton(&same)
	fmt.Println(same.Value)

	// Output:
	// 2
}
