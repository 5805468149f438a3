package services

import (
	"errors"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no driver is available to take an order.
// This occurs when either no drivers are provided or none of them is in the
// available status.
var ErrDriverNotFound = errors.New("driver not found")

// DriverDispatcher is a domain service that selects a driver for a confirmed
// order and marks the chosen driver busy.
//
// Selection takes the first driver in the provided slice that reports itself
// available. There is no ranking by distance, rating, or load; callers that
// want a particular ordering sort the slice before dispatch.
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch picks a driver for the given order and transitions the driver to
// the busy status. Returns ErrDriverNotFound when no candidate is available.
func (d DriverDispatcher) Dispatch(aggregate *order.Order, drivers []*driver.Driver) (*driver.Driver, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	selected, err := d.findAvailableDriver(drivers)
	if err != nil {
		return nil, err
	}

	selected.MarkBusy()

	return selected, nil
}

func (d DriverDispatcher) findAvailableDriver(drivers []*driver.Driver) (*driver.Driver, error) {
	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if candidate.IsAvailable() {
			return candidate, nil
		}
	}

	return nil, ErrDriverNotFound
}
