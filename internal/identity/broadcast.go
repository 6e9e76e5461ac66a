package identity

import "sync"

// Broadcaster delivers identity-changed notifications to subscribers.
// It replaces the web client's global "auth-change" event with explicit
// registration passed through construction.
//
// Delivery is synchronous and in subscription order. Subscribers added
// after a broadcast do not receive it retroactively.
type Broadcaster struct {
	mu   sync.Mutex
	next int
	subs []subscriber
}

type subscriber struct {
	id int
	fn func()
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers fn and returns a function that removes it.
// Unsubscribing twice is safe.
func (b *Broadcaster) Subscribe(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Broadcast invokes every current subscriber.
func (b *Broadcaster) Broadcast() {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}
