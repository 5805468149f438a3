package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the delivery tracking view for one order.
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for an order's tracking view.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTrackingQueryResponse is the customer-facing tracking view: run
// progress, driver contact details, and the latest reported position.
type GetOrderTrackingQueryResponse struct {
	TrackingID            kernel.UUID
	OrderID               kernel.UUID
	Status                string
	PickupAddress         string
	DropoffAddress        string
	DriverName            string
	DriverPhone           string
	DriverVehicleType     string
	DriverVehicleNumber   string
	DriverRating          float64
	CurrentLatitude       *float64
	CurrentLongitude      *float64
	LocationRecordedAt    *time.Time
	EstimatedPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time
	ActualPickupTime      *time.Time
	ActualDeliveryTime    *time.Time
}
