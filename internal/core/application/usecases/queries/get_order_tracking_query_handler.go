package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler retrieves the tracking view for one order,
// joining the run's record with the assigned driver's contact details.
//
// Multiple records for the same order are not rejected by storage; the
// oldest one wins here.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking view queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the order
// has no tracking record yet.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.status,
			t.pickup_address,
			t.dropoff_address,
			t.current_lat,
			t.current_lng,
			t.location_recorded_at,
			t.estimated_pickup_time,
			t.estimated_delivery_time,
			t.actual_pickup_time,
			t.actual_delivery_time,
			d.name,
			d.phone,
			d.vehicle_type,
			d.vehicle_number,
			d.rating
		FROM delivery_trackings t
		JOIN drivers d ON d.id = t.driver_id
		WHERE t.order_id = ?
		ORDER BY t.created_at
		LIMIT 1
	`, query.OrderID().String()).Row()

	var response GetOrderTrackingQueryResponse
	var trackingID uuid.UUID

	err := row.Scan(
		&trackingID,
		&response.Status,
		&response.PickupAddress,
		&response.DropoffAddress,
		&response.CurrentLatitude,
		&response.CurrentLongitude,
		&response.LocationRecordedAt,
		&response.EstimatedPickupTime,
		&response.EstimatedDeliveryTime,
		&response.ActualPickupTime,
		&response.ActualDeliveryTime,
		&response.DriverName,
		&response.DriverPhone,
		&response.DriverVehicleType,
		&response.DriverVehicleNumber,
		&response.DriverRating,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(trackingID[:])
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	response.TrackingID = id
	response.OrderID = query.OrderID()

	return response, nil
}
