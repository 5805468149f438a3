package driver

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	// ratingMin and ratingMax bound the informational driver rating.
	ratingMin = 0.0
	ratingMax = 5.0
)

var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

// LocationSnapshot is a driver position report: where the driver was and when
// the report arrived.
type LocationSnapshot struct {
	Point      kernel.GeoPoint
	ReportedAt time.Time
}

// Driver represents a delivery agent who fulfils pickups and deliveries.
// It is the aggregate root for the driver fleet managed by admins.
//
// Drivers are created by admin action, updated through status and location
// calls, and never deleted. The rating is informational only; it is restored
// from storage but no call site recalculates it.
type Driver struct {
	id              kernel.UUID
	name            string
	phone           string
	email           string
	vehicleType     VehicleType
	vehicleNumber   string
	rating          float64
	totalDeliveries int
	status          Status
	lastLocation    *LocationSnapshot

	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver in StatusAvailable with no deliveries yet.
// Email is optional; every other attribute is required.
func NewDriver(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	vehicleType VehicleType,
	vehicleNumber string,
) (*Driver, error) {
	driver := &Driver{
		email:  email,
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicleType(vehicleType),
		driver.setVehicleNumber(vehicleNumber),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver from persistent storage, validating the
// stored status, rating, and counters.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	vehicleType VehicleType,
	vehicleNumber string,
	rating float64,
	totalDeliveries int,
	status Status,
	lastLocation *LocationSnapshot,
) (*Driver, error) {
	driver, err := NewDriver(id, name, phone, email, vehicleType, vehicleNumber)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if rating < ratingMin || rating > ratingMax {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("total deliveries")
	}
	if lastLocation != nil {
		if err = lastLocation.Point.Validate(); err != nil {
			return nil, err
		}
		snapshot := *lastLocation
		driver.lastLocation = &snapshot
	}

	driver.status = status
	driver.rating = rating
	driver.totalDeliveries = totalDeliveries
	return driver, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// Email returns the driver's email address, possibly empty.
func (d *Driver) Email() string {
	return d.email
}

// VehicleType returns the kind of vehicle the driver operates.
func (d *Driver) VehicleType() VehicleType {
	return d.vehicleType
}

// VehicleNumber returns the vehicle registration number.
func (d *Driver) VehicleNumber() string {
	return d.vehicleNumber
}

// Rating returns the informational driver rating.
func (d *Driver) Rating() float64 {
	return d.rating
}

// TotalDeliveries returns the lifetime delivery counter.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// LastLocation returns the most recent position report, or nil when the
// driver has never reported one. The returned snapshot is a copy.
func (d *Driver) LastLocation() *LocationSnapshot {
	if d.lastLocation == nil {
		return nil
	}
	snapshot := *d.lastLocation
	return &snapshot
}

// IsAvailable reports whether the driver can take a new assignment.
func (d *Driver) IsAvailable() bool {
	return d.status == StatusAvailable
}

// ChangeStatus writes a new availability status after checking enum membership.
func (d *Driver) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkBusy sets the driver busy. Called as a side effect of delivery
// assignment; completing a delivery does NOT revert it.
func (d *Driver) MarkBusy() {
	d.status = StatusBusy
}

// ReportLocation records a new position report with the given timestamp.
func (d *Driver) ReportLocation(point kernel.GeoPoint, reportedAt time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	d.lastLocation = &LocationSnapshot{
		Point:      point,
		ReportedAt: reportedAt.UTC(),
	}
	return nil
}

// RecordDelivery increments the lifetime delivery counter.
func (d *Driver) RecordDelivery() {
	d.totalDeliveries++
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	d.vehicleNumber = vehicleNumber
	return nil
}
