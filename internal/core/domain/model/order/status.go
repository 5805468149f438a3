package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// Statuses are persisted as strings and follow the intended progression
//
//	pending -> confirmed -> in-progress -> completed
//
// with cancelled reachable from pending in the customer flow. The progression
// is intended, not enforced: any caller with store access may write any valid
// status from any state, and ChangeStatus on the aggregate only checks enum
// membership. Terminal states are completed and cancelled.
type Status string

const (
	// StatusPending is the initial status of every new order.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the order was accepted and pickup is being arranged.
	StatusConfirmed Status = "confirmed"

	// StatusInProgress indicates the items were picked up and are being cleaned.
	StatusInProgress Status = "in-progress"

	// StatusCompleted indicates the cleaned items were delivered back.
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the order was cancelled before fulfilment.
	StatusCancelled Status = "cancelled"
)

// getValidStatuses returns the set of statuses accepted by Validate.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusConfirmed:  {},
		StatusInProgress: {},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// Validate checks that the Status is one of the defined enum values.
// Membership is the only rule: transitions between valid statuses are not
// restricted, matching the last-write-wins behavior of the store.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
