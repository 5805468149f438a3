package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves the driver roster, optionally narrowed to the
// drivers currently available for assignment.
type GetDriversQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query for the driver roster.
func NewGetDriversQuery(availableOnly bool) GetDriversQuery {
	return GetDriversQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// AvailableOnly reports whether busy and offline drivers are filtered out.
func (q GetDriversQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetDriversQueryResponse represents one driver in the roster read model.
type GetDriversQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	VehicleType     string
	VehicleNumber   string
	Rating          float64
	TotalDeliveries int
	Status          string
	LastLatitude    *float64
	LastLongitude   *float64
	LastReportedAt  *time.Time
}
