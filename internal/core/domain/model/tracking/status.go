package tracking

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the progress of a delivery run, as reported by the
// driver. It is deliberately a separate enum from the order status: the two
// are written by different call sites and no invariant keeps them aligned.
type Status string

const (
	// StatusAssigned is the initial status when a driver is assigned.
	StatusAssigned Status = "assigned"

	// StatusPickupStarted means the driver is heading to the pickup point.
	StatusPickupStarted Status = "pickup_started"

	// StatusPickedUp means the driver has collected the items.
	StatusPickedUp Status = "picked_up"

	// StatusDeliveryStarted means the driver is heading to the drop-off point.
	StatusDeliveryStarted Status = "delivery_started"

	// StatusDelivered means the items were handed over at the drop-off point.
	StatusDelivered Status = "delivered"
)

// Validate checks that the Status is one of the defined enum values.
func (s Status) Validate() error {
	switch s {
	case StatusAssigned, StatusPickupStarted, StatusPickedUp, StatusDeliveryStarted, StatusDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid tracking status", string(s)))
	}
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	return string(s)
}
