package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for delivery tracking
// records.
type TrackingRepository interface {
	// Add persists a new tracking record to storage.
	Add(ctx context.Context, aggregate *tracking.DeliveryTracking) error

	// Update persists changes to an existing tracking record.
	Update(ctx context.Context, aggregate *tracking.DeliveryTracking) error

	// Get retrieves a tracking record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tracking.DeliveryTracking, error)

	// GetByOrder retrieves the tracking record for the given order.
	// Storage does not enforce one record per order; when duplicates exist
	// the first match is returned.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*tracking.DeliveryTracking, error)

	// ExistsForOrder reports whether a tracking record already references
	// the given order. The assignment sweep uses this to skip orders that
	// already have a driver.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
