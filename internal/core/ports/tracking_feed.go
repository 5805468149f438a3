package ports

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"
)

// TrackingEvent is a single update on an order's delivery progress published
// to live subscribers.
type TrackingEvent struct {
	OrderID    kernel.UUID
	TrackingID kernel.UUID
	Status     tracking.Status
	Location   *tracking.Snapshot
	OccurredAt time.Time
}

// TrackingPublisher pushes tracking updates into the live feed.
// Publishing never blocks the caller; slow subscribers miss events.
type TrackingPublisher interface {
	Publish(event TrackingEvent)
}

// TrackingSubscriber exposes the live feed to readers. Subscribe returns a
// channel of events for one order plus a cancel function the caller must
// invoke when done.
type TrackingSubscriber interface {
	Subscribe(orderID kernel.UUID) (<-chan TrackingEvent, func())
}
