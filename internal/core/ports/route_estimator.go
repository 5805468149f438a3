package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// RouteEstimate holds the predicted timings for a delivery run.
type RouteEstimate struct {
	DistanceKm     float64
	TimeToPickup   time.Duration
	TimeToDelivery time.Duration
}

// RouteEstimator predicts pickup and delivery timings for a run: the driver
// travels from origin to the pickup, then on to the dropoff. Implementations
// may be as simple as straight-line distance over an average speed.
type RouteEstimator interface {
	Estimate(ctx context.Context, origin, pickup, dropoff kernel.GeoPoint) (RouteEstimate, error)
}
