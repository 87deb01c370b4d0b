// Package live pushes collection snapshots to subscribers after every
// committed change, the way a live query re-delivers its result set.
package live

import (
	"sync"
)

// Hub fans out snapshots of one collection.
//
// Every subscriber owns a channel with room for exactly one snapshot. A newer
// snapshot replaces an unread older one, so Publish never blocks and a slow
// subscriber only ever sees the latest state.
type Hub[T any] struct {
	mu     sync.Mutex
	next   uint64
	subs   map[uint64]chan []T
	closed bool
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[uint64]chan []T)}
}

// Subscribe registers a new subscriber. The returned cancel func removes the
// subscription and closes the channel; it is safe to call more than once.
// Subscribing to a closed hub returns an already closed channel.
func (h *Hub[T]) Subscribe() (<-chan []T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan []T, 1)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.next
	h.next++
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
}

// Publish delivers snapshot to every subscriber.
func (h *Hub[T]) Publish(snapshot []T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	for _, ch := range h.subs {
		// drop a stale unread snapshot
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (h *Hub[T]) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

// Close ends every subscription. Later publishes are dropped.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
