// Package feed implements the live tracking feed as an in-process hub.
// Publishers fan events out to per-order subscriber channels; slow readers
// drop events rather than block the write path.
package feed

import (
	"sync"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

const subscriberBuffer = 16

var (
	_ ports.TrackingPublisher  = (*Hub)(nil)
	_ ports.TrackingSubscriber = (*Hub)(nil)
)

// Hub routes tracking events to subscribers keyed by order. Safe for
// concurrent use.
type Hub struct {
	mu     sync.RWMutex
	byID   map[kernel.UUID]map[int]chan ports.TrackingEvent
	nextID int
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		byID: make(map[kernel.UUID]map[int]chan ports.TrackingEvent),
	}
}

// Publish fans the event out to the order's subscribers. Never blocks: a
// subscriber whose buffer is full misses the event.
func (h *Hub) Publish(event ports.TrackingEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for _, ch := range h.byID[event.OrderID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers a reader for one order's events. The returned cancel
// function unregisters the reader and closes its channel; calling it more
// than once is safe.
func (h *Hub) Subscribe(orderID kernel.UUID) (<-chan ports.TrackingEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan ports.TrackingEvent, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++

	subscribers, ok := h.byID[orderID]
	if !ok {
		subscribers = make(map[int]chan ports.TrackingEvent)
		h.byID[orderID] = subscribers
	}
	subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if current, ok := h.byID[orderID]; ok {
				if sub, ok := current[id]; ok {
					delete(current, id)
					close(sub)
				}
				if len(current) == 0 {
					delete(h.byID, orderID)
				}
			}
		})
	}

	return ch, cancel
}

// Close shuts the hub down: all subscriber channels are closed and further
// Publish calls are dropped.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for orderID, subscribers := range h.byID {
		for id, ch := range subscribers {
			delete(subscribers, id)
			close(ch)
		}
		delete(h.byID, orderID)
	}
}
