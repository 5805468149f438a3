package commands

import (
	"errors"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	phone         string
	email         string
	vehicleType   driver.VehicleType
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// Email is optional; everything else is required.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	phone string,
	email string,
	vehicleType driver.VehicleType,
	vehicleNumber string,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setPhone(phone),
		command.setVehicleType(vehicleType),
		command.setVehicleNumber(vehicleNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact number.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// Email returns the driver's email, possibly empty.
func (c CreateDriverCommand) Email() string {
	return c.email
}

// VehicleType returns the kind of vehicle the driver operates.
func (c CreateDriverCommand) VehicleType() driver.VehicleType {
	return c.vehicleType
}

// VehicleNumber returns the vehicle's registration plate.
func (c CreateDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType driver.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateDriverCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}

	c.vehicleNumber = vehicleNumber
	return nil
}
