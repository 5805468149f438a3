package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"
	"laundry/internal/pkg/guard"
)

var ErrUpdateTrackingStatusCommandIsNotConstructed = errors.New(
	"UpdateTrackingStatusCommand must be created via NewUpdateTrackingStatusCommand constructor",
)

// UpdateTrackingStatusCommand represents a driver action on a delivery run,
// addressed by the tracked order.
type UpdateTrackingStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus tracking.Status

	guard guard.ConstructorGuard
}

// NewUpdateTrackingStatusCommand creates a command to advance an order's
// delivery tracking status.
func NewUpdateTrackingStatusCommand(orderID kernel.UUID, newStatus tracking.Status) (UpdateTrackingStatusCommand, error) {
	command := UpdateTrackingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateTrackingStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (c UpdateTrackingStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the target tracking status.
func (c UpdateTrackingStatusCommand) NewStatus() tracking.Status {
	return c.newStatus
}

func (c *UpdateTrackingStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateTrackingStatusCommand) setNewStatus(newStatus tracking.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
