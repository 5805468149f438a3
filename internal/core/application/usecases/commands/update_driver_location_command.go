package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a position report from a driver's
// device. When the driver is on a run, the order ID ties the report to that
// order's tracking record.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	point    kernel.GeoPoint
	orderID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to record a driver
// position. Order ID is optional.
func NewUpdateDriverLocationCommand(
	driverID kernel.UUID,
	point kernel.GeoPoint,
	orderID *kernel.UUID,
) (UpdateDriverLocationCommand, error) {
	command := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setPoint(point),
		command.setOrderID(orderID),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the identifier of the reporting driver.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Point returns the reported position.
func (c UpdateDriverLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// OrderID returns the order the report belongs to, or nil.
func (c UpdateDriverLocationCommand) OrderID() *kernel.UUID {
	if c.orderID == nil {
		return nil
	}
	id := *c.orderID
	return &id
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *UpdateDriverLocationCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	id := *orderID
	c.orderID = &id
	return nil
}
