package bus_test

import (
	"testing"

	"github.com/plus3/blockfall/bus"
	"github.com/stretchr/testify/assert"
)

type kind int

const (
	kindA kind = iota
	kindB
)

func TestPublishRoutesByKind(t *testing.T) {
	b := bus.New[kind, string]()

	var got []string
	b.Subscribe(kindA, func(ev string) { got = append(got, "a:"+ev) })
	b.Subscribe(kindB, func(ev string) { got = append(got, "b:"+ev) })
	b.SubscribeAll(func(ev string) { got = append(got, "all:"+ev) })

	b.Publish(kindA, "1")
	b.Publish(kindB, "2")

	assert.Equal(t, []string{"a:1", "all:1", "b:2", "all:2"}, got)
	assert.Equal(t, 3, b.Len())
}

func TestPublishWithoutHandlers(t *testing.T) {
	b := bus.New[kind, int]()
	assert.NotPanics(t, func() { b.Publish(kindA, 1) })
}

func TestSubscriptionOrder(t *testing.T) {
	b := bus.New[kind, int]()

	var order []int
	for i := range 3 {
		b.Subscribe(kindA, func(int) { order = append(order, i) })
	}
	b.Publish(kindA, 0)

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestUnsubscribe(t *testing.T) {
	b := bus.New[kind, int]()

	calls := 0
	first := b.Subscribe(kindA, func(int) { calls++ })
	b.Subscribe(kindA, func(int) { calls += 10 })
	all := b.SubscribeAll(func(int) { calls += 100 })

	assert.True(t, b.Unsubscribe(kindA, first))
	assert.True(t, b.Unsubscribe(kindB, all))
	assert.False(t, b.Unsubscribe(kindA, first))

	b.Publish(kindA, 0)
	assert.Equal(t, 10, calls)
	assert.Equal(t, 1, b.Len())
}
