// Package driverrepo persists driver aggregates with GORM, mapping between
// the domain model and the drivers table.
package driverrepo

import (
	"time"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The last reported position is flattened into nullable columns so drivers
// who never reported one stay representable.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string
	Email           string
	VehicleType     string
	VehicleNumber   string
	Rating          float64
	TotalDeliveries int
	Status          string `gorm:"index"`
	LastLat         *float64
	LastLng         *float64
	LastReportedAt  *time.Time
	CreatedAt       time.Time
}

// TableName overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone(),
		Email:           aggregate.Email(),
		VehicleType:     aggregate.VehicleType().String(),
		VehicleNumber:   aggregate.VehicleNumber(),
		Rating:          aggregate.Rating(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		Status:          aggregate.Status().String(),
	}

	if last := aggregate.LastLocation(); last != nil {
		lat := last.Point.Latitude()
		lng := last.Point.Longitude()
		reportedAt := last.ReportedAt
		dto.LastLat = &lat
		dto.LastLng = &lng
		dto.LastReportedAt = &reportedAt
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lastLocation *driver.LocationSnapshot
	if dto.LastLat != nil && dto.LastLng != nil && dto.LastReportedAt != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LastLat, *dto.LastLng)
		if pointErr != nil {
			return nil, pointErr
		}
		lastLocation = &driver.LocationSnapshot{
			Point:      point,
			ReportedAt: *dto.LastReportedAt,
		}
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		driver.VehicleType(dto.VehicleType),
		dto.VehicleNumber,
		dto.Rating,
		dto.TotalDeliveries,
		driver.Status(dto.Status),
		lastLocation,
	)
}
