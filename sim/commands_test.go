package sim_test

import (
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
)

type emitSystem struct {
	Trace sim.Singleton[Trace]
	name  string
}

func (s *emitSystem) Execute(frame *sim.UpdateFrame) {
	s.Trace.Get().Order = append(s.Trace.Get().Order, "exec:"+s.name)
	frame.Commands.Emit(s.name)
	frame.Commands.Defer(func() {
		s.Trace.Get().Order = append(s.Trace.Get().Order, "defer:"+s.name)
	})
}

func TestCommandsDeliverAfterAllSystems(t *testing.T) {
	storage := sim.NewStorage()
	trace := sim.NewSingleton[Trace](storage)

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&emitSystem{name: "a"})
	scheduler.Register(&emitSystem{name: "b"})

	scheduler.OnEmit(func(event any) {
		trace.Get().Order = append(trace.Get().Order, "emit:"+event.(string))
	})

	scheduler.Once()

	assert.Equal(t, []string{
		"exec:a", "exec:b",
		"emit:a", "emit:b",
		"defer:a", "defer:b",
	}, trace.Get().Order)
}

func TestCommandsResetAfterFlush(t *testing.T) {
	storage := sim.NewStorage()
	sim.NewSingleton[Trace](storage)

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&emitSystem{name: "only"})

	var delivered []any
	scheduler.OnEmit(func(event any) {
		delivered = append(delivered, event)
	})

	scheduler.Once()
	scheduler.Once()

	assert.Equal(t, []any{"only", "only"}, delivered)
}

func TestCommandsFlushWithoutReceiver(t *testing.T) {
	storage := sim.NewStorage()
	sim.NewSingleton[Trace](storage)

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&emitSystem{name: "x"})

	assert.NotPanics(t, scheduler.Once)
}
