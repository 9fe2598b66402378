package sim

// Commands buffers work that must wait until every system of the tick has run:
// emitted events and deferred functions. This keeps observers from seeing a
// half-updated tick.
type Commands struct {
	events []any
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Emit queues an event for delivery after the tick.
func (c *Commands) Emit(event any) {
	c.events = append(c.events, event)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued events.
func (c *Commands) Pending() int {
	return len(c.events)
}

// Flush delivers queued events to emit in order, then runs deferred functions,
// and resets the buffer. A nil emit drops the events.
func (c *Commands) Flush(emit func(event any)) {
	for _, ev := range c.events {
		if emit != nil {
			emit(ev)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.events)
	c.events = c.events[:0]
	c.defers = c.defers[:0]
}
