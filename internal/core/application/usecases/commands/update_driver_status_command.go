package commands

import (
	"errors"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrUpdateDriverStatusCommandIsNotConstructed = errors.New(
	"UpdateDriverStatusCommand must be created via NewUpdateDriverStatusCommand constructor",
)

// UpdateDriverStatusCommand represents a driver toggling their availability.
type UpdateDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	newStatus driver.Status

	guard guard.ConstructorGuard
}

// NewUpdateDriverStatusCommand creates a command to change a driver's status.
func NewUpdateDriverStatusCommand(driverID kernel.UUID, newStatus driver.Status) (UpdateDriverStatusCommand, error) {
	command := UpdateDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateDriverStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverStatusCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c UpdateDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// NewStatus returns the target status.
func (c UpdateDriverStatusCommand) NewStatus() driver.Status {
	return c.newStatus
}

func (c *UpdateDriverStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverStatusCommand) setNewStatus(newStatus driver.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
