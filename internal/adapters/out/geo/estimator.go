// Package geo implements the route estimation port with a straight-line
// haversine model. Good enough for pickup windows in a single city; swap in
// a road-routing provider behind the same port when precision matters.
package geo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

const (
	// DefaultAverageSpeedKmh approximates city traffic on a motorcycle.
	DefaultAverageSpeedKmh = 25.0

	// DefaultHandlingTime covers parking, handover, and paperwork at each
	// stop.
	DefaultHandlingTime = 5 * time.Minute
)

var _ ports.RouteEstimator = (*HaversineEstimator)(nil)

// HaversineEstimator predicts run timings from straight-line distances over
// a configured average speed, plus a fixed handling time per stop.
type HaversineEstimator struct {
	averageSpeedKmh float64
	handlingTime    time.Duration
}

// NewHaversineEstimator creates an estimator with the given average speed in
// km/h and per-stop handling time. Speed must be positive.
func NewHaversineEstimator(averageSpeedKmh float64, handlingTime time.Duration) (*HaversineEstimator, error) {
	if averageSpeedKmh <= 0 {
		return nil, errs.NewValueIsOutOfRangeError(
			"averageSpeedKmh", averageSpeedKmh, 0, 1000)
	}
	if handlingTime < 0 {
		return nil, errs.NewValueIsRequiredError("handlingTime")
	}

	return &HaversineEstimator{
		averageSpeedKmh: averageSpeedKmh,
		handlingTime:    handlingTime,
	}, nil
}

// NewDefaultEstimator creates an estimator with city-traffic defaults.
func NewDefaultEstimator() *HaversineEstimator {
	estimator, err := NewHaversineEstimator(DefaultAverageSpeedKmh, DefaultHandlingTime)
	if err != nil {
		panic(err)
	}
	return estimator
}

// Estimate predicts timings for a run from origin through pickup to dropoff.
// TimeToDelivery includes TimeToPickup; DistanceKm covers both legs.
func (e *HaversineEstimator) Estimate(
	ctx context.Context,
	origin kernel.GeoPoint,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
) (ports.RouteEstimate, error) {
	if err := ctx.Err(); err != nil {
		return ports.RouteEstimate{}, err
	}
	if err := errors.Join(origin.Validate(), pickup.Validate(), dropoff.Validate()); err != nil {
		return ports.RouteEstimate{}, err
	}

	approachKm, err := origin.DistanceKm(pickup)
	if err != nil {
		return ports.RouteEstimate{}, err
	}
	deliveryKm, err := pickup.DistanceKm(dropoff)
	if err != nil {
		return ports.RouteEstimate{}, err
	}

	timeToPickup := e.travelTime(approachKm) + e.handlingTime
	timeToDelivery := timeToPickup + e.travelTime(deliveryKm) + e.handlingTime

	return ports.RouteEstimate{
		DistanceKm:     approachKm + deliveryKm,
		TimeToPickup:   timeToPickup,
		TimeToDelivery: timeToDelivery,
	}, nil
}

func (e *HaversineEstimator) travelTime(distanceKm float64) time.Duration {
	hours := distanceKm / e.averageSpeedKmh
	return time.Duration(hours * float64(time.Hour))
}
