package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_DeliversInSubscriptionOrder(t *testing.T) {
	b := NewBroadcaster()

	var order []string
	b.Subscribe(func() { order = append(order, "first") })
	b.Subscribe(func() { order = append(order, "second") })

	b.Broadcast()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()

	var calls int
	unsubscribe := b.Subscribe(func() { calls++ })

	b.Broadcast()
	unsubscribe()
	b.Broadcast()

	assert.Equal(t, 1, calls)

	// unsubscribing twice is safe
	unsubscribe()
	b.Broadcast()
	assert.Equal(t, 1, calls)
}

func TestBroadcaster_NoRetroactiveDelivery(t *testing.T) {
	b := NewBroadcaster()
	b.Broadcast()

	var calls int
	b.Subscribe(func() { calls++ })
	assert.Equal(t, 0, calls)

	b.Broadcast()
	assert.Equal(t, 1, calls)
}

func TestBroadcaster_NoSubscribers(t *testing.T) {
	b := NewBroadcaster()
	assert.NotPanics(t, func() { b.Broadcast() })
}
