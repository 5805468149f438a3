package kernel

import (
	"errors"
	"fmt"
	"math"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	// GeoPointMinLatitude is the minimum valid latitude in degrees.
	GeoPointMinLatitude = -90.0
	// GeoPointMaxLatitude is the maximum valid latitude in degrees.
	GeoPointMaxLatitude = 90.0
	// GeoPointMinLongitude is the minimum valid longitude in degrees.
	GeoPointMinLongitude = -180.0
	// GeoPointMaxLongitude is the maximum valid longitude in degrees.
	GeoPointMaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used for distance calculations.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate pair with validated bounds.
// It is an immutable value object; the zero value is invalid and fails
// validation, so instances must come from NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(-1.2921, 36.8219)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // GeoPoint(-1.292100,36.821900)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given latitude and longitude in
// degrees. Latitude must be within [-90, 90] and longitude within [-180, 180];
// both coordinates must be finite numbers.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(lat), point.setLongitude(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
// The zero value fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lng
}

// String returns "GeoPoint(lat,lng)" with six decimal places.
// Implements fmt.Stringer for logging and debugging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKm calculates the great-circle distance in kilometers between two
// points using the haversine formula. Both points must be properly
// constructed for the calculation to succeed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLatitude sets the latitude with range validation.
// Pointer receiver by design: private setters enable self-encapsulated
// validation during construction.
func (p *GeoPoint) setLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < GeoPointMinLatitude || lat > GeoPointMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoPointMinLatitude, GeoPointMaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLongitude sets the longitude with range validation.
func (p *GeoPoint) setLongitude(lng float64) error {
	if math.IsNaN(lng) || lng < GeoPointMinLongitude || lng > GeoPointMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, GeoPointMinLongitude, GeoPointMaxLongitude)
	}

	p.lng = lng
	return nil
}
