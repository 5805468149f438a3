package tracking

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrTrackingIsNotConstructed is returned when using an improperly
	// initialized DeliveryTracking.
	ErrTrackingIsNotConstructed = errors.New(
		"DeliveryTracking must be created via NewDeliveryTracking or RestoreDeliveryTracking constructor")
)

// Stop is a named point on the delivery run: validated coordinates plus the
// free-text address shown to the driver.
type Stop struct {
	Point   kernel.GeoPoint
	Address string
}

// Validate checks the stop's coordinates and address.
func (s Stop) Validate() error {
	if err := s.Point.Validate(); err != nil {
		return err
	}
	if s.Address == "" {
		return errs.NewValueIsRequiredError("stop address")
	}
	return nil
}

// Snapshot is a position report attached to the tracking record.
type Snapshot struct {
	Point      kernel.GeoPoint
	RecordedAt time.Time
}

// DeliveryTracking links one order to the driver assigned to fulfil it and
// records the run's progress. Exactly one order and one driver are referenced;
// there is no reassignment history, and records are never deleted.
//
// The record's status enum is independent of the order status. Transitioning
// to picked_up stamps the actual pickup time, and delivered stamps the actual
// delivery time; both stamps are write-once.
type DeliveryTracking struct {
	id       kernel.UUID
	orderID  kernel.UUID
	driverID kernel.UUID
	pickup   Stop
	dropoff  Stop
	status   Status

	currentLocation       *Snapshot
	estimatedPickupTime   *time.Time
	estimatedDeliveryTime *time.Time
	actualPickupTime      *time.Time
	actualDeliveryTime    *time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryTracking creates a tracking record in StatusAssigned for the
// given order/driver pair and pickup/drop-off stops.
func NewDeliveryTracking(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	pickup Stop,
	dropoff Stop,
) (*DeliveryTracking, error) {
	t := &DeliveryTracking{
		status: StatusAssigned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setDriverID(driverID),
		t.setPickup(pickup),
		t.setDropoff(dropoff),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreDeliveryTracking reconstructs a tracking record from persistent
// storage, validating the stored status and optional snapshots.
func RestoreDeliveryTracking(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	pickup Stop,
	dropoff Stop,
	status Status,
	currentLocation *Snapshot,
	estimatedPickupTime *time.Time,
	estimatedDeliveryTime *time.Time,
	actualPickupTime *time.Time,
	actualDeliveryTime *time.Time,
) (*DeliveryTracking, error) {
	t, err := NewDeliveryTracking(id, orderID, driverID, pickup, dropoff)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if currentLocation != nil {
		if err = currentLocation.Point.Validate(); err != nil {
			return nil, err
		}
		snapshot := *currentLocation
		t.currentLocation = &snapshot
	}

	t.status = status
	t.estimatedPickupTime = copyTime(estimatedPickupTime)
	t.estimatedDeliveryTime = copyTime(estimatedDeliveryTime)
	t.actualPickupTime = copyTime(actualPickupTime)
	t.actualDeliveryTime = copyTime(actualDeliveryTime)
	return t, nil
}

// Validate ensures the record was created through a constructor.
func (t *DeliveryTracking) Validate() error {
	if t == nil {
		return ErrTrackingIsNotConstructed
	}
	return t.guard.Validate(ErrTrackingIsNotConstructed)
}

// ID returns the tracking record's unique identifier.
func (t *DeliveryTracking) ID() kernel.UUID {
	return t.id
}

// OrderID returns the identifier of the tracked order.
func (t *DeliveryTracking) OrderID() kernel.UUID {
	return t.orderID
}

// DriverID returns the identifier of the assigned driver.
func (t *DeliveryTracking) DriverID() kernel.UUID {
	return t.driverID
}

// Pickup returns the pickup stop.
func (t *DeliveryTracking) Pickup() Stop {
	return t.pickup
}

// Dropoff returns the drop-off stop.
func (t *DeliveryTracking) Dropoff() Stop {
	return t.dropoff
}

// Status returns the current tracking status.
func (t *DeliveryTracking) Status() Status {
	return t.status
}

// CurrentLocation returns the latest position report, or nil.
// The returned snapshot is a copy.
func (t *DeliveryTracking) CurrentLocation() *Snapshot {
	if t.currentLocation == nil {
		return nil
	}
	snapshot := *t.currentLocation
	return &snapshot
}

// EstimatedPickupTime returns the expected pickup time, or nil.
func (t *DeliveryTracking) EstimatedPickupTime() *time.Time {
	return copyTime(t.estimatedPickupTime)
}

// EstimatedDeliveryTime returns the expected delivery time, or nil.
func (t *DeliveryTracking) EstimatedDeliveryTime() *time.Time {
	return copyTime(t.estimatedDeliveryTime)
}

// ActualPickupTime returns when the items were collected, or nil until the
// record reaches picked_up.
func (t *DeliveryTracking) ActualPickupTime() *time.Time {
	return copyTime(t.actualPickupTime)
}

// ActualDeliveryTime returns when the items were handed over, or nil until
// the record reaches delivered.
func (t *DeliveryTracking) ActualDeliveryTime() *time.Time {
	return copyTime(t.actualDeliveryTime)
}

// SetEstimates records the expected pickup and delivery times computed at
// assignment. Either value may be nil.
func (t *DeliveryTracking) SetEstimates(pickup, delivery *time.Time) {
	t.estimatedPickupTime = copyTime(pickup)
	t.estimatedDeliveryTime = copyTime(delivery)
}

// ChangeStatus writes a new status after checking enum membership and stamps
// the actual pickup/delivery time on the corresponding transition. Stamps are
// write-once: a repeated picked_up or delivered write keeps the original
// timestamp.
func (t *DeliveryTracking) ChangeStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	t.status = newStatus

	switch newStatus {
	case StatusPickedUp:
		if t.actualPickupTime == nil {
			stamp := at.UTC()
			t.actualPickupTime = &stamp
		}
	case StatusDelivered:
		if t.actualDeliveryTime == nil {
			stamp := at.UTC()
			t.actualDeliveryTime = &stamp
		}
	case StatusAssigned, StatusPickupStarted, StatusDeliveryStarted:
		// No timestamps for intermediate statuses.
	}
	return nil
}

// ReportLocation records the driver's current position on the run.
func (t *DeliveryTracking) ReportLocation(point kernel.GeoPoint, recordedAt time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	t.currentLocation = &Snapshot{
		Point:      point,
		RecordedAt: recordedAt.UTC(),
	}
	return nil
}

func (t *DeliveryTracking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *DeliveryTracking) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	t.orderID = orderID
	return nil
}

func (t *DeliveryTracking) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	t.driverID = driverID
	return nil
}

func (t *DeliveryTracking) setPickup(pickup Stop) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	t.pickup = pickup
	return nil
}

func (t *DeliveryTracking) setDropoff(dropoff Stop) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	t.dropoff = dropoff
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
