package game

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/bus"
	"github.com/plus3/blockfall/sim"
)

// Engine owns the game state and the tick pipeline. It is not safe for
// concurrent use; frontends call Apply and Tick from their update loop.
type Engine struct {
	scheduler *sim.Scheduler
	storage   *sim.Storage
	events    *bus.Bus[EventKind, Event]

	config     *sim.Singleton[Config]
	grid       *sim.Singleton[Grid]
	pieces     *sim.Singleton[Pieces]
	scoreboard *sim.Singleton[Scoreboard]
	session    *sim.Singleton[Session]
	clear      *sim.Singleton[Clear]
	settings   *sim.Singleton[Settings]
	controls   *sim.Singleton[Controls]
}

// New creates an engine with a fresh game in progress. All randomness is
// drawn from rng, so equal seeds and equal intent scripts give equal games.
func New(cfg Config, rng *rand.Rand) *Engine {
	storage := sim.NewStorage()
	storage.AddSingleton(cfg)
	storage.AddSingleton(*NewDealer(rng, cfg.SpawnAt))
	storage.AddSingleton(Settings{Sound: true, Music: true})
	newGame(storage)

	e := &Engine{
		scheduler: sim.NewScheduler(storage),
		storage:   storage,
		events:    bus.New[EventKind, Event](),

		config:     sim.NewSingleton[Config](storage),
		grid:       sim.NewSingleton[Grid](storage),
		pieces:     sim.NewSingleton[Pieces](storage),
		scoreboard: sim.NewSingleton[Scoreboard](storage),
		session:    sim.NewSingleton[Session](storage),
		clear:      sim.NewSingleton[Clear](storage),
		settings:   sim.NewSingleton[Settings](storage),
		controls:   sim.NewSingleton[Controls](storage),
	}

	e.scheduler.Register(&IntentSystem{})
	e.scheduler.Register(&ShiftSystem{})
	e.scheduler.Register(&RotateSystem{})
	e.scheduler.Register(&GravitySystem{})
	e.scheduler.Register(&LineClearSystem{})

	e.scheduler.OnEmit(func(ev any) {
		if event, ok := ev.(Event); ok {
			e.events.Publish(event.Kind, event)
		}
	})

	return e
}

// Apply queues intents for the next tick, in order.
func (e *Engine) Apply(intents ...Intent) {
	c := e.controls.Get()
	c.Queue = append(c.Queue, intents...)
}

// Tick advances the game by one frame and then publishes the events raised
// during it.
func (e *Engine) Tick() {
	e.scheduler.Once()
}

// Subscribe registers fn for events of one kind.
func (e *Engine) Subscribe(kind EventKind, fn func(Event)) bus.Subscription {
	return e.events.Subscribe(kind, fn)
}

// SubscribeAll registers fn for every event.
func (e *Engine) SubscribeAll(fn func(Event)) bus.Subscription {
	return e.events.SubscribeAll(fn)
}

// Unsubscribe removes a subscription made with Subscribe or SubscribeAll.
func (e *Engine) Unsubscribe(kind EventKind, id bus.Subscription) bool {
	return e.events.Unsubscribe(kind, id)
}

func (e *Engine) Config() Config         { return *e.config.Get() }
func (e *Engine) Grid() Grid             { return *e.grid.Get() }
func (e *Engine) Active() Piece          { return e.pieces.Get().Active }
func (e *Engine) Next() Piece            { return e.pieces.Get().Next }
func (e *Engine) Score() Scoreboard      { return *e.scoreboard.Get() }
func (e *Engine) Session() Session       { return *e.session.Get() }
func (e *Engine) ClearPhase() ClearPhase { return e.clear.Get().Phase }
func (e *Engine) Settings() Settings     { return *e.settings.Get() }
func (e *Engine) QuitRequested() bool    { return e.session.Get().Quit }

// Frame returns the number of completed ticks.
func (e *Engine) Frame() uint64 {
	return e.scheduler.Tick()
}

// Stats returns per-system execution statistics.
func (e *Engine) Stats() *sim.SchedulerStats {
	return e.scheduler.GetStats()
}

// Storage exposes the engine's resources for inspection tools.
func (e *Engine) Storage() *sim.Storage {
	return e.storage
}
