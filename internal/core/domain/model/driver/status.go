package driver

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents a driver's availability for new assignments.
// Statuses are persisted as strings. Drivers become busy implicitly when a
// delivery is assigned to them; nothing flips them back to available when a
// delivery completes, that is an explicit admin or driver action.
type Status string

const (
	// StatusAvailable means the driver can be assigned new deliveries.
	StatusAvailable Status = "available"

	// StatusBusy means the driver has an active delivery.
	StatusBusy Status = "busy"

	// StatusOffline means the driver is not working.
	StatusOffline Status = "offline"
)

// Validate checks that the Status is one of the defined enum values.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid driver status", string(s)))
	}
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	return string(s)
}

// VehicleType represents the kind of vehicle a driver operates.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
)

// Validate checks that the VehicleType is one of the defined enum values.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleMotorcycle, VehicleCar, VehicleVan:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicle type",
			fmt.Errorf("%q is not a valid vehicle type", string(v)))
	}
}

// String returns the persisted string form of the vehicle type.
func (v VehicleType) String() string {
	return string(v)
}
