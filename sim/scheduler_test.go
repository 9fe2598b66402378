package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type IncrementSystem struct {
	Counter      sim.Singleton[Counter]
	ExecuteCount int
}

func (s *IncrementSystem) Execute(frame *sim.UpdateFrame) {
	s.ExecuteCount++
	s.Counter.Get().Value++
}

type ClockSystem struct {
	Clock   sim.Singleton[Clock]
	Counter sim.Singleton[Counter]
	Seen    []int
}

func (s *ClockSystem) Execute(frame *sim.UpdateFrame) {
	s.Clock.Get().Ticks = frame.Tick
	s.Seen = append(s.Seen, s.Counter.Get().Value)
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order and singleton binding", func(t *testing.T) {
		storage := sim.NewStorage()
		storage.AddSingleton(Counter{})
		storage.AddSingleton(Clock{})

		scheduler := sim.NewScheduler(storage)
		increment := &IncrementSystem{}
		clock := &ClockSystem{}
		scheduler.Register(increment)
		scheduler.Register(clock)

		scheduler.Once()
		scheduler.Once()

		assert.Equal(t, 2, increment.ExecuteCount)
		assert.Equal(t, []int{1, 2}, clock.Seen, "later systems observe earlier writes in the same tick")
		assert.Equal(t, uint64(2), clock.Clock.Get().Ticks)
		assert.Equal(t, uint64(2), scheduler.Tick())
	})

	t.Run("singleton added after register", func(t *testing.T) {
		storage := sim.NewStorage()
		scheduler := sim.NewScheduler(storage)
		increment := &IncrementSystem{}
		scheduler.Register(increment)

		storage.AddSingleton(Counter{Value: 10})
		scheduler.Once()

		assert.Equal(t, 11, increment.Counter.Get().Value)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		storage := sim.NewStorage()
		storage.AddSingleton(Counter{})
		scheduler := sim.NewScheduler(storage)
		increment := &IncrementSystem{}
		scheduler.Register(increment)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}

		assert.Greater(t, increment.ExecuteCount, 0)
	})
}

func TestSchedulerStats(t *testing.T) {
	storage := sim.NewStorage()
	storage.AddSingleton(Counter{})
	storage.AddSingleton(Clock{})

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&IncrementSystem{})
	scheduler.Register(&ClockSystem{})

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	for range 5 {
		scheduler.Once()
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, uint64(5), stats.Ticks)
	assert.Equal(t, int64(10), stats.TotalExecutions)
	assert.Equal(t, "IncrementSystem", stats.Systems[0].Name)
	assert.Equal(t, "ClockSystem", stats.Systems[1].Name)

	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	storage := sim.NewStorage()
	storage.AddSingleton(Counter{})
	storage.AddSingleton(Clock{})

	scheduler := sim.NewScheduler(storage)
	scheduler.Register(&IncrementSystem{})
	scheduler.Register(&ClockSystem{})

	b.ResetTimer()
	for range b.N {
		scheduler.Once()
	}
}
