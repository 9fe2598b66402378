// Package bus is a synchronous publish/subscribe hub keyed by integer event kinds.
package bus

import "github.com/kamstrup/intmap"

// Handler receives a published event.
type Handler[E any] func(E)

// Subscription identifies a registered handler so it can be removed.
type Subscription uint64

type entry[E any] struct {
	id Subscription
	fn Handler[E]
}

// Bus delivers events to the handlers registered for their kind, and to
// handlers registered for every kind. Delivery happens on the publishing
// goroutine, in subscription order. A Bus is not safe for concurrent use.
type Bus[K intmap.IntKey, E any] struct {
	handlers *intmap.Map[K, []entry[E]]
	all      []entry[E]
	next     Subscription
	count    int
}

// New creates an empty Bus.
func New[K intmap.IntKey, E any]() *Bus[K, E] {
	return &Bus[K, E]{
		handlers: intmap.New[K, []entry[E]](16),
	}
}

// Subscribe registers fn for events of the given kind.
func (b *Bus[K, E]) Subscribe(kind K, fn Handler[E]) Subscription {
	b.next++
	list, _ := b.handlers.Get(kind)
	b.handlers.Put(kind, append(list, entry[E]{id: b.next, fn: fn}))
	b.count++
	return b.next
}

// SubscribeAll registers fn for every published event.
func (b *Bus[K, E]) SubscribeAll(fn Handler[E]) Subscription {
	b.next++
	b.all = append(b.all, entry[E]{id: b.next, fn: fn})
	b.count++
	return b.next
}

// Unsubscribe removes the handler registered under kind with the given id.
// Handlers registered with SubscribeAll are removed by passing any kind.
func (b *Bus[K, E]) Unsubscribe(kind K, id Subscription) bool {
	if list, ok := b.handlers.Get(kind); ok {
		for i, e := range list {
			if e.id == id {
				b.handlers.Put(kind, append(list[:i:i], list[i+1:]...))
				b.count--
				return true
			}
		}
	}

	for i, e := range b.all {
		if e.id == id {
			b.all = append(b.all[:i:i], b.all[i+1:]...)
			b.count--
			return true
		}
	}

	return false
}

// Publish delivers ev to the kind's handlers, then to the catch-all handlers.
func (b *Bus[K, E]) Publish(kind K, ev E) {
	if list, ok := b.handlers.Get(kind); ok {
		for _, e := range list {
			e.fn(ev)
		}
	}

	for _, e := range b.all {
		e.fn(ev)
	}
}

// Len returns the number of registered handlers.
func (b *Bus[K, E]) Len() int {
	return b.count
}
